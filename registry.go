package viewstash

import "sort"

// Cloner is implemented by state values whose internals alias mutable
// memory, such as snapshots carrying slices or maps. The registry stores
// and returns clones of such values, so a saved snapshot cannot change
// through the view that produced it. Plain value snapshots do not need it.
type Cloner interface {
	Clone() any
}

// Registry holds saved view state keyed by string. It lives for the whole
// program run and knows nothing about views, containers, or who owns which
// key. There is no locking: all access must happen on the program's update
// goroutine.
//
// The zero value is ready to use.
type Registry struct {
	entries map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Save stores value under key, replacing any existing entry. Values
// implementing Cloner are cloned before storing.
func (r *Registry) Save(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return ErrNilValue
	}
	if c, ok := value.(Cloner); ok {
		value = c.Clone()
	}
	if r.entries == nil {
		r.entries = make(map[string]any)
	}
	r.entries[key] = value
	return nil
}

// Get returns the value stored under key. The second result is false when
// nothing is stored under key; an absent entry is a normal outcome, not an
// error. Values implementing Cloner are cloned on the way out.
func (r *Registry) Get(key string) (any, bool) {
	v, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	if c, ok := v.(Cloner); ok {
		return c.Clone(), true
	}
	return v, true
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (r *Registry) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	delete(r.entries, key)
	return nil
}

// Has reports whether an entry exists under key.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of stored entries.
func (r *Registry) Len() int { return len(r.entries) }

// Keys returns every stored key in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
