package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// options holds the internal configuration for opening a vault.
type options struct {
	store     core.StateStore
	logger    *slog.Logger
	seed      []core.Chapter
	clock     func() time.Time
	debounce  time.Duration
	mustExist bool
	forceTemp bool
	devSafety bool
}

// Option defines a functional option for configuring a vault session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the store and session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom state store (e.g. an in-memory mock).
// If provided, the default filesystem store is skipped.
func WithStore(store core.StateStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSeed overrides the chapter list seeded on first load.
func WithSeed(chapters []core.Chapter) Option {
	return func(o *options) {
		o.seed = chapters
	}
}

// WithClock overrides the time source used for UpdatedAt stamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDebounceInterval sets the watcher coalescing interval.
func WithDebounceInterval(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), the vault is re-rooted into a temporary directory to
// prevent accidental data loss during development.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
