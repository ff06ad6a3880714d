package core

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	Chapters  int    `json:"chapters"`
	Questions int    `json:"questions"`
	DarkMode  bool   `json:"dark_mode"`
	StoreType string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := 0
	for _, ch := range s.state.Chapters {
		questions += len(ch.Questions)
	}

	storeType := "store"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return SessionState{
		Chapters:  len(s.state.Chapters),
		Questions: questions,
		DarkMode:  s.state.DarkMode,
		StoreType: storeType,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
