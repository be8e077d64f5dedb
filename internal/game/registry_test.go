package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-arena/internal/game/battle"
)

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, 4, r.Count())
	assert.Equal(t, []string{"healer", "knight", "mage", "ranger"}, r.Names())

	mage, ok := r.Get(battle.ClassMage)
	require.True(t, ok)
	assert.Equal(t, battle.ElementFire, mage.Element)

	_, ok = r.Get("bard")
	assert.False(t, ok)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(battle.ClassDef{}))
	assert.Error(t, r.Register(battle.ClassDef{Name: "empty"}))

	require.NoError(t, r.Register(battle.ClassDef{Name: "bard", Skills: []battle.Skill{{ID: "song"}}}))
	assert.True(t, r.Unregister("bard"))
	assert.False(t, r.Unregister("bard"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewDefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.Get(battle.ClassKnight)
		}()
		go func() {
			defer wg.Done()
			_ = r.Register(battle.DefaultClasses()[1])
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, r.Count())
}
