package quire

import (
	"log/slog"
	"time"

	"github.com/aretw0/quire/internal/platform"
	"github.com/aretw0/quire/pkg/core"
)

// --- Types ---

// Chapter is a public alias for the domain chapter.
type Chapter = core.Chapter

// Question is a public alias for the domain question.
type Question = core.Question

// QuestionDraft is a public alias for the upsert intent.
type QuestionDraft = core.QuestionDraft

// Session is a public alias for the state container.
type Session = core.Session

// --- Configuration ---

// Option defines a functional option for opening a vault.
type Option = platform.Option

// WithLogger sets the logger for the store and session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom state store.
func WithStore(store core.StateStore) Option {
	return platform.WithStore(store)
}

// WithSeed overrides the chapter list seeded on first load.
func WithSeed(chapters []core.Chapter) Option {
	return platform.WithSeed(chapters)
}

// WithClock overrides the time source used for UpdatedAt stamps.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDebounceInterval sets the watcher coalescing interval.
func WithDebounceInterval(d time.Duration) Option {
	return platform.WithDebounceInterval(d)
}

// WithDevSafety controls the `go run` sandbox mechanism.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open initializes the vault's state store and loads a Session over it.
func Open(path string, opts ...Option) (*core.Session, error) {
	return platform.Open(path, opts...)
}

// Init initializes a state store explicitly without loading a session.
func Init(path string, opts ...Option) (core.StateStore, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveVaultPath determines the actual path for the vault based on safety
// rules.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	return platform.ResolveVaultPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
