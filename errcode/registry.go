package errcode

import (
	"fmt"
	"sync"
)

// Registry is an error code registry (prevents code conflicts across modules)
type Registry struct {
	mu     sync.RWMutex
	codes  map[int]string // code -> module:message
	locked bool           // once locked, no new registrations are allowed
}

// globalRegistry is the process-wide error code registry
var globalRegistry = &Registry{
	codes: make(map[int]string),
}

// Register registers an error code in the global registry.
// Panics if the code is already registered under a different identity.
func Register(err *Error) *Error {
	return globalRegistry.Register(err)
}

// Register registers an error code in this registry
func (r *Registry) Register(err *Error) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.locked {
		panic(fmt.Sprintf("registry is locked, cannot register error code: %d", err.Code()))
	}

	code := err.Code()
	key := fmt.Sprintf("%s:%s", err.Module(), err.Message())

	if existingKey, exists := r.codes[code]; exists {
		if existingKey != key {
			panic(fmt.Sprintf(
				"error code conflict: code %d is already registered as %s, cannot register as %s",
				code, existingKey, key,
			))
		}
		// Same code and identity: idempotent re-registration
		return err
	}

	r.codes[code] = key
	return err
}

// Lock locks the registry, blocking new registrations.
// Typically called after package init is complete.
func (r *Registry) Lock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked = true
}

// Unlock re-opens the registry for registrations
func (r *Registry) Unlock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked = false
}

// IsLocked reports whether the registry is locked
func (r *Registry) IsLocked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked
}

// GetAll returns all registered error codes
func (r *Registry) GetAll() map[int]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make(map[int]string, len(r.codes))
	for k, v := range r.codes {
		codes[k] = v
	}
	return codes
}

// Count returns the number of registered error codes
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codes)
}

// Clear empties the registry (tests only)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = make(map[int]string)
	r.locked = false
}

// LockGlobalRegistry locks the global registry
func LockGlobalRegistry() {
	globalRegistry.Lock()
}

// UnlockGlobalRegistry unlocks the global registry
func UnlockGlobalRegistry() {
	globalRegistry.Unlock()
}

// IsGlobalRegistryLocked reports whether the global registry is locked
func IsGlobalRegistryLocked() bool {
	return globalRegistry.IsLocked()
}

// GetAllRegisteredCodes returns all codes in the global registry
func GetAllRegisteredCodes() map[int]string {
	return globalRegistry.GetAll()
}
