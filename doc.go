// Package viewstash preserves the in-progress state of bubbletea views
// that are created and destroyed as they move in and out of a shared
// container region.
//
// A Registry holds saved state keyed by string for the life of the
// program. Views that implement Stateful snapshot their editable fields
// into the registry when they leave the screen and apply the snapshot back
// when an instance returns under the same key, so a half-filled form
// survives being swapped out even though the view value itself is thrown
// away.
//
// A Manager owns one Container and drives the protocol: Display evicts
// whatever is showing, saving each view's state, before the incoming view
// is attached and restored. The ordering is guaranteed, which makes
// replacing a view with a fresh instance of itself under the same key a
// seamless handoff. Clear shuts a manager down, saving everything first.
//
// Everything in this package runs on the program's update goroutine.
// There is no locking; hosts that want concurrency put it elsewhere.
package viewstash
