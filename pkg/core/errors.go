package core

import "errors"

// Common errors.
var (
	// ErrInvalidSnapshot means an imported document failed shape validation.
	// The caller's existing state must be left untouched.
	ErrInvalidSnapshot = errors.New("snapshot is not a valid chapter collection")

	// ErrNoQuestions means a random pick was requested with zero questions
	// anywhere in the collection.
	ErrNoQuestions = errors.New("no questions available")

	// ErrChapterNotFound is returned by lookup helpers only. Mutation
	// operations degrade to no-ops instead.
	ErrChapterNotFound = errors.New("chapter not found")

	// ErrQuestionNotFound is returned by lookup helpers only.
	ErrQuestionNotFound = errors.New("question not found")
)
