// Package game holds the registry of playable classes used to validate and build avatars.
package game

import (
	"fmt"
	"sort"
	"sync"

	"pixel-arena/internal/game/battle"
)

// Registry manages class registration and lookup.
// It is safe for concurrent use.
type Registry struct {
	classes map[string]battle.ClassDef
	mu      sync.RWMutex
}

// NewRegistry creates an empty class registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]battle.ClassDef),
	}
}

// NewDefaultRegistry creates a registry holding the built-in classes.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range battle.DefaultClasses() {
		_ = r.Register(c)
	}
	return r
}

// Register adds a class to the registry.
// If a class with the same name already exists, it will be replaced.
func (r *Registry) Register(c battle.ClassDef) error {
	if c.Name == "" {
		return fmt.Errorf("class name cannot be empty")
	}
	if len(c.Skills) == 0 {
		return fmt.Errorf("class %q has no skills", c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.Name] = c
	return nil
}

// Get retrieves a class by name.
func (r *Registry) Get(name string) (battle.ClassDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Names returns all registered class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered classes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Unregister removes a class by name.
// Returns true if the class was found and removed, false otherwise.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.classes[name]; ok {
		delete(r.classes, name)
		return true
	}
	return false
}
