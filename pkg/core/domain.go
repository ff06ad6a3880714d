// Chapter and Question are the central entities of the domain.
package core

import "fmt"

// QuestionType partitions questions into the two display categories.
type QuestionType string

const (
	TypeShort QuestionType = "short"
	TypeEssay QuestionType = "essay"
)

// Valid reports whether t is a member of the closed type enumeration.
func (t QuestionType) Valid() bool {
	return t == TypeShort || t == TypeEssay
}

// Question is a single study item. AnswerHTML is serialized rich-text markup
// supplied by the editing surface; the core stores it verbatim and never
// parses it.
type Question struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       QuestionType `json:"type"`
	AnswerHTML string       `json:"answerHTML"`
	Tags       []string     `json:"tags"`
	Bookmarked bool         `json:"bookmarked"`
	// UpdatedAt is epoch milliseconds, set on create and on every edit.
	UpdatedAt int64 `json:"updatedAt"`
}

// Chapter is a named, ordered collection of questions. Insertion order of
// Questions is display order.
type Chapter struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// AppState is the full persisted document: the canonical chapter collection
// plus the one UI preference that rides along with it.
type AppState struct {
	Chapters []Chapter `json:"chapters"`
	DarkMode bool      `json:"darkMode"`
}

// QuestionRef addresses a question within the chapter collection.
type QuestionRef struct {
	ChapterID  string
	QuestionID string
}

// EventType represents the kind of change observed on the persisted state.
type EventType string

const (
	// EventSaved means the state document was rewritten by some writer.
	EventSaved EventType = "SAVED"
	// EventReset means the state document was removed (storage cleared).
	EventReset EventType = "RESET"
)

// Event represents an observed change of the persisted state.
type Event struct {
	Type      EventType
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so watch streams can be bridged into a
// lifecycle runtime.
func (e Event) String() string {
	return fmt.Sprintf("%s@%d", e.Type, e.Timestamp)
}

// CloneChapters returns a deep copy of the chapter collection. Mutation
// operations copy before transforming so callers never observe shared slices.
func CloneChapters(chapters []Chapter) []Chapter {
	if chapters == nil {
		return nil
	}
	out := make([]Chapter, len(chapters))
	for i, ch := range chapters {
		out[i] = ch
		if ch.Questions != nil {
			qs := make([]Question, len(ch.Questions))
			copy(qs, ch.Questions)
			for j := range qs {
				if qs[j].Tags != nil {
					tags := make([]string, len(qs[j].Tags))
					copy(tags, qs[j].Tags)
					qs[j].Tags = tags
				}
			}
			out[i].Questions = qs
		}
	}
	return out
}
