// Package store persists the application state as a single JSON document
// inside a vault directory, with atomic whole-document replacement and
// optional change notification via fsnotify.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/quire/pkg/core"
)

const (
	// StateFileName is the fixed name of the state document inside the vault,
	// the analog of a single persistent storage key.
	StateFileName = "quire.json"

	// BackupDirName is the default directory for exported snapshots.
	BackupDirName = "backups"
)

// Config holds the configuration for the filesystem-backed store.
type Config struct {
	Path      string // vault directory
	MustExist bool
	Logger    *slog.Logger
	// Seed is the chapter list used when no state document exists yet.
	// Nil means DefaultChapters().
	Seed []core.Chapter
	// Debounce is the watcher coalescing interval. Zero means 50ms.
	Debounce time.Duration
	// ErrorHandler receives runtime watcher failures. Optional.
	ErrorHandler func(error)
}

// Store implements core.StateStore on top of a single JSON file.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
}

// New creates a new filesystem-backed store. Call Initialize before use.
func New(config Config) *Store {
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup for the vault (mkdir or existence
// check).
func (s *Store) Initialize() error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat vault path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

// StatePath returns the absolute location of the state document.
func (s *Store) StatePath() string {
	return filepath.Join(s.Path, StateFileName)
}

// Load returns the persisted state. A missing or corrupt document never
// surfaces as an error: the seeded default state is persisted and returned
// instead. Only real storage failures (permissions, I/O) are errors.
func (s *Store) Load() (core.AppState, error) {
	data, err := os.ReadFile(s.StatePath())
	if os.IsNotExist(err) {
		return s.seedAndSave("state document missing")
	}
	if err != nil {
		return core.AppState{}, fmt.Errorf("failed to read state document: %w", err)
	}

	var state core.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		if s.config.Logger != nil {
			s.config.Logger.Warn("state document corrupt, reseeding", "error", err)
		}
		return s.seedAndSave("state document corrupt")
	}

	state.Chapters = core.NormalizeChapters(state.Chapters)

	now := time.Now()
	s.mu.Lock()
	s.lastLoad = &now
	s.mu.Unlock()

	return state, nil
}

// Save serializes and persists the full state, overwriting any prior value.
// The write is atomic (temp file + rename): readers observe either the old or
// the new document, never a partial one.
func (s *Store) Save(state core.AppState) error {
	state.Chapters = core.NormalizeChapters(state.Chapters)
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := writeFileAtomic(s.StatePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (s *Store) seedAndSave(reason string) (core.AppState, error) {
	seed := s.config.Seed
	if seed == nil {
		seed = DefaultChapters()
	}
	state := core.AppState{
		Chapters: core.NormalizeChapters(seed),
		DarkMode: false,
	}
	if s.config.Logger != nil {
		s.config.Logger.Info("seeding default state", "reason", reason, "chapters", len(state.Chapters))
	}
	if err := s.Save(state); err != nil {
		return core.AppState{}, err
	}

	now := time.Now()
	s.mu.Lock()
	s.lastLoad = &now
	s.mu.Unlock()

	return state, nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	s.watcherActive = active
	s.mu.Unlock()
}

var _ core.StateStore = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
