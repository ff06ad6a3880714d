package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Session is the explicit state container for one reader/admin session. It
// owns the canonical chapter collection; callers hold only the copies handed
// out by its accessors and every change round-trips through a mutation
// method, which persists the whole snapshot before returning.
type Session struct {
	mu     sync.RWMutex
	store  StateStore
	state  AppState
	clock  func() time.Time
	logger *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the time source used for UpdatedAt stamps.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithSessionLogger sets the logger for the session.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession loads the persisted state through store and returns a ready
// session.
func NewSession(store StateStore, opts ...SessionOption) (*Session, error) {
	s := &Session{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// Chapters returns a deep copy of the canonical chapter collection.
func (s *Session) Chapters() []Chapter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneChapters(s.state.Chapters)
}

// DarkMode returns the persisted UI preference.
func (s *Session) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DarkMode
}

// SetDarkMode persists the UI preference. Content is untouched.
func (s *Session) SetDarkMode(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DarkMode = on
	return s.persistLocked()
}

// RenameChapter renames a chapter and persists the result. Unknown chapter
// IDs are a silent no-op, matching the rest of the mutation layer.
func (s *Session) RenameChapter(chapterID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chapters = RenameChapter(s.state.Chapters, chapterID, newName)
	return s.persistLocked()
}

// UpsertQuestion creates or replaces a question in the given chapter and
// persists the result. A draft with an empty title is rejected here, before
// the data transform runs; the returned error wraps nothing and is intended
// for direct user display.
func (s *Session) UpsertQuestion(chapterID string, draft QuestionDraft) error {
	if draft.Title == "" {
		return errors.New("question title cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock().UnixMilli()
	s.state.Chapters = UpsertQuestion(s.state.Chapters, chapterID, draft, now)
	if s.logger != nil {
		s.logger.Debug("question saved", "chapter", chapterID, "title", draft.Title)
	}
	return s.persistLocked()
}

// DeleteQuestion removes a question and persists the result. Absent IDs are
// a silent no-op.
func (s *Session) DeleteQuestion(chapterID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chapters = DeleteQuestion(s.state.Chapters, chapterID, questionID)
	return s.persistLocked()
}

// ToggleBookmark flips a question's bookmark flag, searching every chapter,
// and persists the result.
func (s *Session) ToggleBookmark(questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chapters = ToggleBookmark(s.state.Chapters, questionID)
	return s.persistLocked()
}

// Export serializes the current chapter collection to a snapshot document.
// DarkMode is not part of a snapshot.
func (s *Session) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ExportSnapshot(s.state.Chapters)
}

// Import replaces the entire chapter collection with the parsed snapshot and
// persists it. On validation failure the existing state is left untouched and
// the error wraps ErrInvalidSnapshot.
func (s *Session) Import(data []byte) error {
	chapters, err := ImportSnapshot(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Chapters = chapters
	if s.logger != nil {
		s.logger.Info("snapshot imported", "chapters", len(chapters))
	}
	return s.persistLocked()
}

// Reload discards the in-memory state and re-reads the persisted snapshot.
// Watch consumers call this when another process rewrites the document.
func (s *Session) Reload() error {
	state, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}

// Watch observes external changes to the persisted state if the store
// supports it.
func (s *Session) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}

// persistLocked saves the full state. Callers hold s.mu.
func (s *Session) persistLocked() error {
	return s.store.Save(s.state)
}
