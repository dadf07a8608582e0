package registry

import "sync/atomic"

// Holder gives concurrent readers a consistent view of the registry while
// allowing the whole registry to be replaced at runtime. Loads are
// wait-free; a Swap never disturbs in-flight resolutions, which keep the
// registry they loaded.
type Holder struct {
	current atomic.Pointer[Registry]
}

// NewHolder wraps an initial registry.
func NewHolder(reg *Registry) *Holder {
	h := &Holder{}
	h.current.Store(reg)
	return h
}

// Load returns the current registry.
func (h *Holder) Load() *Registry {
	return h.current.Load()
}

// Swap atomically replaces the current registry.
func (h *Holder) Swap(reg *Registry) {
	h.current.Store(reg)
}
