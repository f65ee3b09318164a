package prefab

import "log"

// FloorName is the reserved prefab name that supplies the floor asset
const FloorName = "floor"

// Registry maps object type names to prefabs. It is built once from a
// configured entry list and is read-only afterwards, so it is safe to
// share across lookups without locking.
type Registry struct {
	prefabs map[string]*Prefab
	names   []string
}

// NewRegistry builds a registry from entries. Duplicate names keep the
// first mapping; later duplicates are logged and ignored.
func NewRegistry(entries []Prefab) *Registry {
	r := &Registry{
		prefabs: make(map[string]*Prefab, len(entries)),
	}

	for i := range entries {
		p := entries[i]
		if _, exists := r.prefabs[p.Name]; exists {
			log.Printf("Duplicate prefab %q ignored, keeping first mapping", p.Name)
			continue
		}
		r.prefabs[p.Name] = &p
		r.names = append(r.names, p.Name)
	}

	return r
}

// Lookup returns the prefab registered under name
func (r *Registry) Lookup(name string) (*Prefab, bool) {
	p, ok := r.prefabs[name]
	return p, ok
}

// Floor returns the floor prefab, or nil if none is configured
func (r *Registry) Floor() *Prefab {
	return r.prefabs[FloorName]
}

// Names returns the registered prefab names in registration order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered prefabs
func (r *Registry) Len() int {
	return len(r.prefabs)
}
