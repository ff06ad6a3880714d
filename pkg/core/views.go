package core

import (
	"math/rand/v2"
	"strings"
)

// Derived views are computed fresh from the chapter collection on every call,
// never cached or persisted, so they are always consistent with the latest
// mutation.

// BookmarkedQuestion pairs a question with the chapter it lives in, for views
// that render bookmarks outside their chapter context.
type BookmarkedQuestion struct {
	ChapterID   string
	ChapterName string
	Question    Question
}

// BookmarkedQuestions flattens all chapters and returns the bookmarked
// questions, preserving chapter order then question order.
func BookmarkedQuestions(chapters []Chapter) []BookmarkedQuestion {
	var out []BookmarkedQuestion
	for _, ch := range chapters {
		for _, q := range ch.Questions {
			if q.Bookmarked {
				out = append(out, BookmarkedQuestion{
					ChapterID:   ch.ID,
					ChapterName: ch.Name,
					Question:    q,
				})
			}
		}
	}
	return out
}

// QuestionsByType filters a single chapter's questions by type, preserving
// order.
func QuestionsByType(ch Chapter, t QuestionType) []Question {
	var out []Question
	for _, q := range ch.Questions {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}

// Search returns the chapters whose name contains query, or that contain at
// least one question whose title or any tag contains query. Matching is a
// case-sensitive substring check on the literal text, no normalization or
// tokenization. The empty query matches everything. Chapter order is
// preserved.
func Search(chapters []Chapter, query string) []Chapter {
	if query == "" {
		return chapters
	}
	var out []Chapter
	for _, ch := range chapters {
		if chapterMatches(ch, query) {
			out = append(out, ch)
		}
	}
	return out
}

func chapterMatches(ch Chapter, query string) bool {
	if strings.Contains(ch.Name, query) {
		return true
	}
	for _, q := range ch.Questions {
		if strings.Contains(q.Title, query) {
			return true
		}
		for _, tag := range q.Tags {
			if strings.Contains(tag, query) {
				return true
			}
		}
	}
	return false
}

// PickRandom selects one question uniformly at random across every chapter.
// The (chapter, question) pairs are flattened into a single index space
// before drawing; picking a chapter first and then a question would bias
// toward chapters with fewer questions. Returns ErrNoQuestions when the
// collection holds no questions at all.
func PickRandom(chapters []Chapter) (QuestionRef, error) {
	total := 0
	for _, ch := range chapters {
		total += len(ch.Questions)
	}
	if total == 0 {
		return QuestionRef{}, ErrNoQuestions
	}

	n := rand.IntN(total)
	for _, ch := range chapters {
		if n < len(ch.Questions) {
			return QuestionRef{ChapterID: ch.ID, QuestionID: ch.Questions[n].ID}, nil
		}
		n -= len(ch.Questions)
	}
	// Unreachable: n < total and the loop consumes exactly total slots.
	return QuestionRef{}, ErrNoQuestions
}
