// Package forms holds the stateful views the formpad host mounts in its
// container. Every form implements viewstash.Stateful, snapshotting its
// fields into the shared registry on detach and applying them back on
// attach, so nothing typed is lost when forms swap.
package forms

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/viewstash"
)

// Submitter is implemented by forms whose contents can be submitted as a
// record. The second Payload result is false while required fields are
// still empty.
type Submitter interface {
	FormID() string
	Payload() (map[string]string, bool)
}

// Form describes one mountable form: a stable ID, a tab title, and a
// constructor for fresh instances.
type Form struct {
	ID    string
	Title string
	New   func() viewstash.Stateful
}

// All returns the available forms in display order.
func All() []Form {
	return []Form{
		{ID: "profile", Title: "Profile", New: func() viewstash.Stateful { return NewProfileForm() }},
		{ID: "feedback", Title: "Feedback", New: func() viewstash.Stateful { return NewFeedbackForm() }},
		{ID: "shipping", Title: "Shipping", New: func() viewstash.Stateful { return NewShippingForm() }},
	}
}

// Lookup returns the form with the given ID.
func Lookup(id string) (Form, bool) {
	for _, f := range All() {
		if f.ID == id {
			return f, true
		}
	}
	return Form{}, false
}

// Nearest returns the known form ID closest to the given one, for "did
// you mean" hints after a typo. The bool is false when nothing is close
// enough to suggest.
func Nearest(id string) (string, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	best, bestDist := "", -1
	for _, f := range All() {
		dist := levenshtein.ComputeDistance(id, f.ID)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = f.ID, dist
		}
	}
	if bestDist < 0 || bestDist > 3 {
		return "", false
	}
	return best, true
}
