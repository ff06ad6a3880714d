package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/store"
)

// setupStore helps create an initialized store for testing.
func setupStore(t *testing.T, opts ...func(*store.Config)) (*store.Store, string) {
	t.Helper()

	vaultPath := filepath.Join(t.TempDir(), "vault")

	cfg := store.Config{
		Path: vaultPath,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	st := store.New(cfg)
	if !cfg.MustExist {
		if err := st.Initialize(); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
	}
	return st, vaultPath
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory If Missing", func(t *testing.T) {
		_, path := setupStore(t)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("expected directory to be created at %s", path)
		}
	})

	t.Run("Fails If MustExist And Missing", func(t *testing.T) {
		st, _ := setupStore(t, func(c *store.Config) {
			c.MustExist = true
		})
		if err := st.Initialize(); err == nil {
			t.Error("expected Initialize to fail when directory is missing and MustExist=true")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Seeds Default State On First Load", func(t *testing.T) {
		st, _ := setupStore(t)

		state, err := st.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(state.Chapters) != len(store.DefaultChapters()) {
			t.Errorf("expected default seed, got %d chapters", len(state.Chapters))
		}
		if state.DarkMode {
			t.Error("expected darkMode false in seeded state")
		}

		// The seed must be persisted, not just returned.
		if _, err := os.Stat(st.StatePath()); err != nil {
			t.Errorf("expected state document written: %v", err)
		}
	})

	t.Run("Uses Custom Seed", func(t *testing.T) {
		seed := []core.Chapter{{ID: "intro", Name: "Introduction"}}
		st, _ := setupStore(t, func(c *store.Config) {
			c.Seed = seed
		})

		state, err := st.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(state.Chapters) != 1 || state.Chapters[0].ID != "intro" {
			t.Errorf("expected custom seed, got %+v", state.Chapters)
		}
		if state.Chapters[0].Questions == nil {
			t.Error("expected question sequence normalized to empty slice")
		}
	})

	t.Run("Reseeds On Corrupt Document", func(t *testing.T) {
		st, _ := setupStore(t)
		if err := os.WriteFile(st.StatePath(), []byte("{ not json"), 0644); err != nil {
			t.Fatalf("failed to plant corrupt document: %v", err)
		}

		state, err := st.Load()
		if err != nil {
			t.Fatalf("Load must not fail on corrupt data: %v", err)
		}
		if len(state.Chapters) != len(store.DefaultChapters()) {
			t.Errorf("expected reseeded default state, got %+v", state.Chapters)
		}

		// Subsequent loads see the repaired document.
		again, err := st.Load()
		if err != nil {
			t.Fatalf("second Load failed: %v", err)
		}
		if !reflect.DeepEqual(state, again) {
			t.Error("expected repaired document to persist")
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, _ := setupStore(t)

	state := core.AppState{
		Chapters: []core.Chapter{
			{ID: "1", Name: "Ch1", Questions: []core.Question{
				{ID: "q1", Title: "T", Type: core.TypeEssay, AnswerHTML: "<b>x</b>", Tags: []string{"a", "b"}, Bookmarked: true, UpdatedAt: 42},
			}},
		},
		DarkMode: true,
	}
	if err := st.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", state, loaded)
	}
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	st, _ := setupStore(t)

	first := core.AppState{Chapters: []core.Chapter{{ID: "1", Name: "A", Questions: []core.Question{}}}}
	second := core.AppState{Chapters: []core.Chapter{{ID: "2", Name: "B", Questions: []core.Question{}}}}
	if err := st.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Chapters) != 1 || loaded.Chapters[0].ID != "2" {
		t.Errorf("expected whole-document replacement, got %+v", loaded.Chapters)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	st, path := setupStore(t)
	if err := st.Save(core.AppState{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if e.Name() != store.StateFileName {
			t.Errorf("unexpected leftover file: %s", e.Name())
		}
	}
}

func TestStateDocumentShape(t *testing.T) {
	// The persisted document is one JSON object under the fixed filename,
	// holding chapters plus the darkMode preference.
	st, _ := setupStore(t)
	if err := st.Save(core.AppState{DarkMode: true}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(st.StatePath())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("state document is not a JSON object: %v", err)
	}
	for _, key := range []string{"chapters", "darkMode"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("expected key %q in state document", key)
		}
	}
}
