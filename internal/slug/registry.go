package slug

import "fmt"

// Registry is a collision table of identifiers already used in one scope
type Registry struct {
	used map[string]struct{}
}

// NewRegistry creates empty collision table
func NewRegistry() *Registry {
	return &Registry{used: map[string]struct{}{}}
}

// Claim registers base or the first free base-2, base-3, ... and returns it
func (r *Registry) Claim(base string) string {
	candidate := base
	for i := 2; r.Has(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	r.used[candidate] = struct{}{}
	return candidate
}

// Has reports whether id is already claimed
func (r *Registry) Has(id string) bool {
	_, ok := r.used[id]
	return ok
}

// Len returns count of claimed identifiers
func (r *Registry) Len() int {
	return len(r.used)
}
