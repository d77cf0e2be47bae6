package viewstash

import "sort"

// Scope tracks the state keys one host hands to its manager, so the host
// can purge exactly its own entries when it is torn down for good. The
// registry never learns about ownership; a scope is bookkeeping on top of
// it, and hosts that enumerate their keys by hand do not need one.
type Scope struct {
	reg  *Registry
	keys map[string]struct{}
}

// NewScope returns an empty scope over reg.
func NewScope(reg *Registry) *Scope {
	return &Scope{reg: reg, keys: make(map[string]struct{})}
}

// Claim records keys as owned by this scope. Empty keys are ignored and
// claiming a key twice is harmless.
func (s *Scope) Claim(keys ...string) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		s.keys[k] = struct{}{}
	}
}

// Keys returns the claimed keys in sorted order.
func (s *Scope) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Teardown ends the scope's life. With retaining true the registry entries
// stay put, ready for a recreated host claiming the same keys. With
// retaining false every claimed key is removed from the registry and the
// claim set is emptied.
func (s *Scope) Teardown(retaining bool) error {
	if retaining {
		return nil
	}
	for _, k := range s.Keys() {
		if err := s.reg.Remove(k); err != nil {
			return err
		}
	}
	s.keys = make(map[string]struct{})
	return nil
}
