package core

import "context"

// StateStore defines the contract for persisting the application state.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem today, anything that can hold one JSON
// document tomorrow).
type StateStore interface {
	// Load returns the persisted state if present and well-formed, otherwise
	// a freshly seeded default state that has been persisted. Corrupt or
	// missing data never surfaces as an error; only real storage failures do.
	Load() (AppState, error)

	// Save serializes and persists the full state, overwriting any prior
	// value atomically. There is no partial-write visibility.
	Save(state AppState) error
}

// Watchable defines an interface for stores that can report external changes
// to the persisted state, e.g. another process rewriting the document.
type Watchable interface {
	// Watch emits an Event whenever the persisted state changes. The channel
	// is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
