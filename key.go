package viewstash

// Key pairs a registry key string with the Go type stored under it.
// Hosts that declare their keys up front get compile-time agreement
// between what a view saves and what a later instance loads, instead of a
// bare type assertion at the read site.
//
// The zero Key has an empty name and is rejected by the registry;
// construct keys with NewKey.
type Key[T any] struct {
	name string
}

// NewKey returns a typed key for name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the underlying registry key string.
func (k Key[T]) Name() string { return k.name }

// Store saves v under k.
func Store[T any](r *Registry, k Key[T], v T) error {
	return r.Save(k.name, v)
}

// Load returns the value saved under k. A missing entry reads as absent,
// and so does an entry of a different type: a view whose key collided with
// foreign state falls back to its defaults rather than panicking on the
// assertion.
func Load[T any](r *Registry, k Key[T]) (T, bool) {
	var zero T
	v, ok := r.Get(k.name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Drop removes the entry under k.
func Drop[T any](r *Registry, k Key[T]) error {
	return r.Remove(k.name)
}
