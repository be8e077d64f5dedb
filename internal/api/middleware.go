package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// PlayerHeader carries the authenticated player id set by the fronting gateway.
	PlayerHeader = "X-Player-ID"
	playerIDKey  = "playerID"
)

// PlayerMiddleware requires a positive numeric player id header and stores it in the context.
func PlayerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader(PlayerHeader), 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid " + PlayerHeader + " header"})
			return
		}
		c.Set(playerIDKey, id)
		c.Next()
	}
}

func playerID(c *gin.Context) int64 {
	return c.GetInt64(playerIDKey)
}

// RequestLogger logs each request at info level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int64("player_id", playerID(c)).
			Msg("HTTP request")
	}
}
