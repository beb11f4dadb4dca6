package errcode

import (
	"testing"
)

// TestRegistry_Register tests registering error codes
func TestRegistry_Register(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}

	err1 := New(10, 1, "settings", "source not found")
	err2 := New(11, 1, "validator", "validation failed")

	registry.Register(err1)
	registry.Register(err2)

	if registry.Count() != 2 {
		t.Errorf("expected 2 registered codes, got %d", registry.Count())
	}

	codes := registry.GetAll()
	if codes[100001] != "settings:source not found" {
		t.Errorf("expected 'settings:source not found', got %s", codes[100001])
	}
	if codes[110001] != "validator:validation failed" {
		t.Errorf("expected 'validator:validation failed', got %s", codes[110001])
	}
}

// TestRegistry_Register_Duplicate tests idempotent re-registration
func TestRegistry_Register_Duplicate(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}

	err1 := New(10, 1, "settings", "source not found")
	err2 := New(10, 1, "settings", "source not found")

	registry.Register(err1)
	registry.Register(err2) // idempotent, must not panic

	if registry.Count() != 1 {
		t.Errorf("expected 1 registered code, got %d", registry.Count())
	}
}

// TestRegistry_Register_Conflict tests code conflicts (panic)
func TestRegistry_Register_Conflict(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}

	err1 := New(10, 1, "settings", "source not found")
	err2 := New(10, 1, "settings", "parse failed") // same code, different identity

	registry.Register(err1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on conflicting registration")
		}
	}()
	registry.Register(err2)
}

// TestRegistry_Lock tests that a locked registry rejects registrations
func TestRegistry_Lock(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}
	registry.Register(New(10, 1, "settings", "source not found"))

	registry.Lock()
	if !registry.IsLocked() {
		t.Error("registry should report locked")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when registering into a locked registry")
		}
	}()
	registry.Register(New(10, 2, "settings", "parse failed"))
}

// TestRegistry_Unlock tests re-opening a locked registry
func TestRegistry_Unlock(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}
	registry.Lock()
	registry.Unlock()

	if registry.IsLocked() {
		t.Error("registry should be unlocked")
	}

	registry.Register(New(10, 2, "settings", "parse failed"))
	if registry.Count() != 1 {
		t.Errorf("expected 1 registered code, got %d", registry.Count())
	}
}

// TestRegistry_Clear tests test-only reset
func TestRegistry_Clear(t *testing.T) {
	registry := &Registry{codes: make(map[int]string)}
	registry.Register(New(10, 1, "settings", "source not found"))
	registry.Lock()

	registry.Clear()

	if registry.Count() != 0 {
		t.Errorf("expected empty registry, got %d entries", registry.Count())
	}
	if registry.IsLocked() {
		t.Error("cleared registry should be unlocked")
	}
}
