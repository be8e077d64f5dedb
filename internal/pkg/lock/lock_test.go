package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLock_Timeout(t *testing.T) {
	l := NewPlayerLock()
	require.True(t, l.TryLock(7))

	called := false
	err := l.WithLock(context.Background(), 20*time.Millisecond, func() error {
		called = true
		return nil
	}, 7)
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, called)

	// the abandoned waiter must not leave the lock taken once released
	l.Unlock(7)
	assert.False(t, l.IsLocked(7))
	assert.True(t, l.TryLock(7))
	l.Unlock(7)
}

func TestWithLock_Cancelled(t *testing.T) {
	l := NewPlayerLock()
	require.True(t, l.TryLock(1))
	defer l.Unlock(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.WithLock(ctx, 0, func() error { return nil }, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithLock_ReleasesOnError(t *testing.T) {
	l := NewPlayerLock()
	boom := assert.AnError

	err := l.WithLock(context.Background(), time.Second, func() error { return boom }, 2, 1, 2)
	assert.ErrorIs(t, err, boom)
	assert.False(t, l.IsLocked(1))
	assert.False(t, l.IsLocked(2))
}

func TestUnlock_NotHeld(t *testing.T) {
	l := NewPlayerLock()
	l.Unlock(42)
	assert.False(t, l.IsLocked(42))
}
