package core

import (
	"encoding/json"
	"fmt"
)

// ExportSnapshot serializes the chapter collection to a pretty-printed,
// self-describing JSON document with full fidelity for every field, suitable
// for backup and later reconstruction via ImportSnapshot.
func ExportSnapshot(chapters []Chapter) ([]byte, error) {
	data, err := json.MarshalIndent(chapters, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// ImportSnapshot parses a snapshot document. It succeeds only if the
// top-level value is an array of chapters that passes ValidateChapters;
// anything else yields an error wrapping ErrInvalidSnapshot and the caller's
// existing state must be left untouched.
func ImportSnapshot(data []byte) ([]Chapter, error) {
	var chapters []Chapter
	if err := json.Unmarshal(data, &chapters); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	// A top-level null unmarshals into a nil slice without error; the
	// contract requires an actual array.
	if chapters == nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrInvalidSnapshot)
	}
	if err := ValidateChapters(chapters); err != nil {
		return nil, err
	}
	return NormalizeChapters(chapters), nil
}

// ValidateChapters checks the structural invariants of an imported chapter
// collection: non-empty chapter and question IDs, question IDs unique within
// their chapter, non-empty question titles, and type membership in the closed
// enumeration. Violations are reported as ErrInvalidSnapshot.
func ValidateChapters(chapters []Chapter) error {
	for _, ch := range chapters {
		if ch.ID == "" {
			return fmt.Errorf("%w: chapter with empty id", ErrInvalidSnapshot)
		}
		seen := make(map[string]struct{}, len(ch.Questions))
		for _, q := range ch.Questions {
			if q.ID == "" {
				return fmt.Errorf("%w: question with empty id in chapter %q", ErrInvalidSnapshot, ch.ID)
			}
			if _, dup := seen[q.ID]; dup {
				return fmt.Errorf("%w: duplicate question id %q in chapter %q", ErrInvalidSnapshot, q.ID, ch.ID)
			}
			seen[q.ID] = struct{}{}
			if q.Title == "" {
				return fmt.Errorf("%w: question %q has an empty title", ErrInvalidSnapshot, q.ID)
			}
			if !q.Type.Valid() {
				return fmt.Errorf("%w: question %q has unknown type %q", ErrInvalidSnapshot, q.ID, q.Type)
			}
		}
	}
	return nil
}

// NormalizeChapters replaces nil chapter, question, and tag slices with empty
// ones so downstream consumers and serialization always see arrays, never
// null.
func NormalizeChapters(chapters []Chapter) []Chapter {
	out := CloneChapters(chapters)
	if out == nil {
		out = []Chapter{}
	}
	for i := range out {
		if out[i].Questions == nil {
			out[i].Questions = []Question{}
		}
		for j := range out[i].Questions {
			if out[i].Questions[j].Tags == nil {
				out[i].Questions[j].Tags = []string{}
			}
		}
	}
	return out
}
