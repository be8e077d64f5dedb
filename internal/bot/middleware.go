// Package bot provides middleware for the Telegram bot.
package bot

import (
	"sync"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/config"
)

// ChatAccess decides which chats may use the bot. Group chats must be whitelisted;
// private chats are open to players who have been seen in a whitelisted group, since
// turn notifications are delivered privately.
type ChatAccess struct {
	cfg *config.Config

	mu   sync.RWMutex
	seen map[int64]bool
}

// NewChatAccess creates a ChatAccess for the configured whitelist.
func NewChatAccess(cfg *config.Config) *ChatAccess {
	return &ChatAccess{cfg: cfg, seen: make(map[int64]bool)}
}

// Remember marks a player as allowed in private chat.
func (a *ChatAccess) Remember(playerID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seen[playerID] = true
}

// Allowed reports whether a message from sender in chat should be handled.
// A successful group check remembers the sender.
func (a *ChatAccess) Allowed(chat *tele.Chat, sender *tele.User) bool {
	if chat == nil || sender == nil {
		return false
	}

	if chat.Type == tele.ChatPrivate {
		if len(a.cfg.Whitelist.Chats) == 0 {
			return true
		}
		a.mu.RLock()
		defer a.mu.RUnlock()
		return a.seen[sender.ID]
	}

	if !a.cfg.IsChatAllowed(chat.ID) {
		return false
	}
	a.Remember(sender.ID)
	return true
}

// WhitelistMiddleware drops updates from chats that are not allowed.
func WhitelistMiddleware(access *ChatAccess) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !access.Allowed(c.Chat(), c.Sender()) {
				ev := log.Debug()
				if chat := c.Chat(); chat != nil {
					ev = ev.Int64("chat_id", chat.ID).Str("chat_type", string(chat.Type))
				}
				ev.Msg("Ignoring update from non-whitelisted chat")
				return nil
			}
			return next(c)
		}
	}
}

// AdminMiddleware rejects commands from users that are not configured admins.
func AdminMiddleware(cfg *config.Config) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !cfg.IsAdmin(sender.ID) {
				log.Warn().
					Int64("player_id", sender.ID).
					Str("command", c.Text()).
					Msg("Non-admin attempted admin command")
				return c.Reply("❌ 权限不足：需要管理员权限")
			}

			return next(c)
		}
	}
}

// LoggingMiddleware logs every incoming update at debug level.
func LoggingMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			ev := log.Debug()
			if sender := c.Sender(); sender != nil {
				ev = ev.Int64("player_id", sender.ID).Str("username", sender.Username)
			}
			if chat := c.Chat(); chat != nil {
				ev = ev.Int64("chat_id", chat.ID).Str("chat_type", string(chat.Type))
			}
			if cb := c.Callback(); cb != nil {
				ev = ev.Str("callback", cb.Data)
			}
			ev.Str("text", c.Text()).Msg("Received update")

			return next(c)
		}
	}
}

// RecoveryMiddleware recovers from handler panics and tells the user.
func RecoveryMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Str("text", c.Text()).
						Msg("Recovered from panic in handler")
					if c.Callback() != nil {
						err = c.Respond(&tele.CallbackResponse{Text: "❌ 发生内部错误，请稍后重试", ShowAlert: true})
						return
					}
					err = c.Reply("❌ 发生内部错误，请稍后重试")
				}
			}()
			return next(c)
		}
	}
}
