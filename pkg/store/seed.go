package store

import (
	"fmt"

	"github.com/aretw0/quire/pkg/core"
)

// defaultChapterCount matches the fixed chapter set of the shipped study
// book. Chapters can be renamed but not added or removed, so the seed defines
// the collection for the vault's lifetime.
const defaultChapterCount = 7

// DefaultChapters returns the fixed seed chapter list used on first load:
// numbered chapters with empty question sequences.
func DefaultChapters() []core.Chapter {
	chapters := make([]core.Chapter, 0, defaultChapterCount)
	for i := 1; i <= defaultChapterCount; i++ {
		chapters = append(chapters, core.Chapter{
			ID:        fmt.Sprintf("%d", i),
			Name:      fmt.Sprintf("Chapter %d", i),
			Questions: []core.Question{},
		})
	}
	return chapters
}
