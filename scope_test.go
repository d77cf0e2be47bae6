package viewstash

import "testing"

func TestScopeClaimDeduplicates(t *testing.T) {
	s := NewScope(NewRegistry())
	s.Claim("k1", "k2", "k1", "")
	keys := s.Keys()
	if len(keys) != 2 || keys[0] != "k1" || keys[1] != "k2" {
		t.Fatalf("expected deduplicated sorted keys, got %v", keys)
	}
}

func TestScopeTeardownRetainingKeepsEntries(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Save("k1", "draft"); err != nil {
		t.Fatalf("save: %v", err)
	}
	s := NewScope(reg)
	s.Claim("k1")

	if err := s.Teardown(true); err != nil {
		t.Fatalf("teardown: %v", err)
	}
	if v, ok := reg.Get("k1"); !ok || v.(string) != "draft" {
		t.Fatalf("expected entry retained, got %v", v)
	}
	if len(s.Keys()) != 1 {
		t.Fatalf("retaining teardown must keep the claim set for reuse")
	}
}

func TestScopeTeardownPurgesOwnedKeys(t *testing.T) {
	reg := NewRegistry()
	for _, k := range []string{"k1", "k2", "other"} {
		if err := reg.Save(k, "v"); err != nil {
			t.Fatalf("save %s: %v", k, err)
		}
	}
	s := NewScope(reg)
	s.Claim("k1", "k2")

	if err := s.Teardown(false); err != nil {
		t.Fatalf("teardown: %v", err)
	}
	if reg.Has("k1") || reg.Has("k2") {
		t.Fatalf("expected owned keys purged")
	}
	if !reg.Has("other") {
		t.Fatalf("teardown must not touch keys the scope never claimed")
	}
	if len(s.Keys()) != 0 {
		t.Fatalf("expected claim set emptied after purge")
	}
}
