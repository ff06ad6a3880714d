package core

import "github.com/google/uuid"

// QuestionDraft carries caller intent for an upsert. An empty ID requests a
// new question; a populated ID replaces the matching question in place.
type QuestionDraft struct {
	ID         string
	Title      string
	Type       QuestionType
	AnswerHTML string
	Tags       []string
	Bookmarked bool
}

// RenameChapter replaces the name of the chapter matching chapterID.
// No-op if no chapter matches. The input collection is never mutated.
func RenameChapter(chapters []Chapter, chapterID, newName string) []Chapter {
	out := CloneChapters(chapters)
	for i := range out {
		if out[i].ID == chapterID {
			out[i].Name = newName
		}
	}
	return out
}

// UpsertQuestion saves a question into the chapter matching chapterID. If the
// draft ID matches an existing question it is replaced in place, preserving
// its position; otherwise a new question is appended with a freshly generated
// ID. UpdatedAt is set to now (epoch milliseconds) in both cases.
//
// UpsertQuestion is a data transform, not a validator: callers are responsible
// for rejecting empty titles before invoking it. No-op if no chapter matches.
func UpsertQuestion(chapters []Chapter, chapterID string, draft QuestionDraft, now int64) []Chapter {
	q := Question{
		ID:         draft.ID,
		Title:      draft.Title,
		Type:       draft.Type,
		AnswerHTML: draft.AnswerHTML,
		Tags:       draft.Tags,
		Bookmarked: draft.Bookmarked,
		UpdatedAt:  now,
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}

	out := CloneChapters(chapters)
	for i := range out {
		if out[i].ID != chapterID {
			continue
		}
		replaced := false
		if draft.ID != "" {
			for j := range out[i].Questions {
				if out[i].Questions[j].ID == draft.ID {
					out[i].Questions[j] = q
					replaced = true
					break
				}
			}
		}
		if !replaced {
			out[i].Questions = append(out[i].Questions, q)
		}
	}
	return out
}

// DeleteQuestion removes the matching question from the chapter's sequence.
// No-op if the chapter or question is absent; repeating a delete is a no-op.
func DeleteQuestion(chapters []Chapter, chapterID, questionID string) []Chapter {
	out := CloneChapters(chapters)
	for i := range out {
		if out[i].ID != chapterID {
			continue
		}
		kept := out[i].Questions[:0]
		for _, q := range out[i].Questions {
			if q.ID != questionID {
				kept = append(kept, q)
			}
		}
		out[i].Questions = kept
	}
	return out
}

// ToggleBookmark flips the bookmarked flag of the question matching
// questionID, searching the entire chapter collection. Bookmarking is invoked
// from contexts that only hold a question reference, so the chapter is not a
// parameter. UpdatedAt is deliberately untouched: toggling is not an edit.
// No-op if the question is not found.
func ToggleBookmark(chapters []Chapter, questionID string) []Chapter {
	out := CloneChapters(chapters)
	for i := range out {
		for j := range out[i].Questions {
			if out[i].Questions[j].ID == questionID {
				out[i].Questions[j].Bookmarked = !out[i].Questions[j].Bookmarked
				return out
			}
		}
	}
	return out
}

// FindChapter retrieves a chapter by ID.
func FindChapter(chapters []Chapter, chapterID string) (Chapter, error) {
	for _, ch := range chapters {
		if ch.ID == chapterID {
			return ch, nil
		}
	}
	return Chapter{}, ErrChapterNotFound
}

// FindQuestion retrieves a question by ID from a specific chapter.
func FindQuestion(chapters []Chapter, chapterID, questionID string) (Question, error) {
	ch, err := FindChapter(chapters, chapterID)
	if err != nil {
		return Question{}, err
	}
	for _, q := range ch.Questions {
		if q.ID == questionID {
			return q, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}
