// Package lock provides per-player locking. Pulls read the pity window and then
// write it, and settlement reads both standings; both hold the player's lock so
// two requests of one player never interleave inside this process.
package lock

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

// playerMutex is a channel-based mutex so acquisition can be abandoned on timeout.
type playerMutex struct {
	ch   chan struct{}
	refs int
}

// PlayerLock hands out one mutex per player id and frees it once unused.
type PlayerLock struct {
	mu    sync.Mutex
	locks map[int64]*playerMutex
}

// NewPlayerLock creates a new PlayerLock instance.
func NewPlayerLock() *PlayerLock {
	return &PlayerLock{locks: make(map[int64]*playerMutex)}
}

func (l *PlayerLock) acquire(playerID int64) *playerMutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[playerID]
	if !ok {
		m = &playerMutex{ch: make(chan struct{}, 1)}
		l.locks[playerID] = m
	}
	m.refs++
	return m
}

func (l *PlayerLock) release(playerID int64, m *playerMutex) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m.refs--
	if m.refs == 0 {
		delete(l.locks, playerID)
	}
}

// Lock blocks until the player's lock is held or ctx is done.
func (l *PlayerLock) Lock(ctx context.Context, playerID int64) error {
	m := l.acquire(playerID)
	select {
	case m.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.release(playerID, m)
		return ctx.Err()
	}
}

// Unlock releases the player's lock. Unlocking a lock that is not held is a no-op.
func (l *PlayerLock) Unlock(playerID int64) {
	l.mu.Lock()
	m, ok := l.locks[playerID]
	l.mu.Unlock()
	if !ok {
		return
	}
	select {
	case <-m.ch:
		l.release(playerID, m)
	default:
	}
}

// TryLock acquires the lock without blocking.
func (l *PlayerLock) TryLock(playerID int64) bool {
	m := l.acquire(playerID)
	select {
	case m.ch <- struct{}{}:
		return true
	default:
		l.release(playerID, m)
		return false
	}
}

// IsLocked is a point-in-time check.
func (l *PlayerLock) IsLocked(playerID int64) bool {
	l.mu.Lock()
	m, ok := l.locks[playerID]
	l.mu.Unlock()
	return ok && len(m.ch) == 1
}

// WithLock runs fn while holding the locks of every given player. Locks are taken in
// ascending id order so two callers locking the same pair cannot deadlock. A timeout
// of zero waits until ctx is done.
func (l *PlayerLock) WithLock(ctx context.Context, timeout time.Duration, fn func() error, playerIDs ...int64) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ids := slices.Clone(playerIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	held := make([]int64, 0, len(ids))
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.Unlock(held[i])
		}
	}()

	for _, id := range ids {
		if err := l.Lock(ctx, id); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrLockTimeout
			}
			return err
		}
		held = append(held, id)
	}
	return fn()
}
