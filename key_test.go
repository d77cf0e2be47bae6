package viewstash

import "testing"

type draft struct {
	Subject string
	Body    string
}

func TestTypedStoreLoadRoundTrip(t *testing.T) {
	r := NewRegistry()
	k := NewKey[draft]("form.feedback")
	if k.Name() != "form.feedback" {
		t.Fatalf("unexpected key name %q", k.Name())
	}
	if err := Store(r, k, draft{Subject: "hi", Body: "text"}); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, ok := Load(r, k)
	if !ok {
		t.Fatalf("expected entry under %s", k.Name())
	}
	if got.Subject != "hi" || got.Body != "text" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestTypedLoadAbsent(t *testing.T) {
	r := NewRegistry()
	if got, ok := Load(r, NewKey[draft]("missing")); ok {
		t.Fatalf("expected absent, got %+v", got)
	}
}

func TestTypedLoadMismatchReadsAbsent(t *testing.T) {
	r := NewRegistry()
	if err := r.Save("shared", 42); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := Load(r, NewKey[draft]("shared"))
	if ok {
		t.Fatalf("expected type mismatch to read as absent, got %+v", got)
	}
	if got.Subject != "" || got.Body != "" {
		t.Fatalf("expected zero snapshot on mismatch, got %+v", got)
	}
}

func TestTypedDrop(t *testing.T) {
	r := NewRegistry()
	k := NewKey[draft]("form.feedback")
	if err := Store(r, k, draft{Subject: "hi"}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := Drop(r, k); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, ok := Load(r, k); ok {
		t.Fatalf("expected entry gone after drop")
	}
}

func TestTypedStoreEmptyKeyRejected(t *testing.T) {
	r := NewRegistry()
	var k Key[draft]
	if err := Store(r, k, draft{}); err == nil {
		t.Fatalf("expected zero key to be rejected")
	}
}
