package viewstash

import "errors"

// Sentinel errors for invalid calls. All of them indicate a bug in the
// calling host, not a runtime condition to retry; match with errors.Is.
var (
	// ErrEmptyKey is returned when a state key is the empty string.
	ErrEmptyKey = errors.New("viewstash: empty state key")

	// ErrNilValue is returned by Registry.Save for a nil value. Saving
	// nothing and removing the entry are different operations.
	ErrNilValue = errors.New("viewstash: nil state value")

	// ErrNilView is returned by Manager.Display for a nil view.
	ErrNilView = errors.New("viewstash: nil view")

	// ErrReleased is returned by Manager.Display after Clear has run.
	ErrReleased = errors.New("viewstash: manager released")
)
