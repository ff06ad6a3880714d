package store_test

import (
	"path/filepath"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/store"
)

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	got := store.BackupFileName(ts)
	want := "ebook_backup_20240301T150405Z.json"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestWriteBackup(t *testing.T) {
	st, path := setupStore(t)
	chapters := []core.Chapter{{ID: "1", Name: "Ch1", Questions: []core.Question{
		{ID: "q1", Title: "T", Type: core.TypeShort, Tags: []string{}},
	}}}

	out, err := st.WriteBackup(chapters, "")
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	if filepath.Dir(out) != filepath.Join(path, store.BackupDirName) {
		t.Errorf("expected backup under the vault backups dir, got %s", out)
	}
	pattern := regexp.MustCompile(`^ebook_backup_\d{8}T\d{6}Z\.json$`)
	if !pattern.MatchString(filepath.Base(out)) {
		t.Errorf("unexpected backup filename: %s", filepath.Base(out))
	}
}

func TestBackupRoundTrip(t *testing.T) {
	st, _ := setupStore(t)
	chapters := core.NormalizeChapters([]core.Chapter{
		{ID: "1", Name: "Ch1", Questions: []core.Question{
			{ID: "q1", Title: "T", Type: core.TypeEssay, AnswerHTML: "<i>x</i>", Tags: []string{"a"}, Bookmarked: true, UpdatedAt: 9},
		}},
	})

	path, err := st.WriteBackup(chapters, "")
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	restored, err := store.ReadBackup(path)
	if err != nil {
		t.Fatalf("ReadBackup failed: %v", err)
	}
	if !reflect.DeepEqual(chapters, restored) {
		t.Errorf("round trip mismatch:\nwrote:    %+v\nrestored: %+v", chapters, restored)
	}
}

func TestFindBackups(t *testing.T) {
	st, _ := setupStore(t)
	chapters := []core.Chapter{{ID: "1", Name: "Ch1"}}

	if _, err := st.FindBackups(""); err != nil {
		t.Fatalf("FindBackups on empty vault failed: %v", err)
	}

	first, err := st.WriteBackup(chapters, "")
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	found, err := st.FindBackups("")
	if err != nil {
		t.Fatalf("FindBackups failed: %v", err)
	}
	if len(found) != 1 || found[0] != first {
		t.Errorf("expected [%s], got %v", first, found)
	}

	latest, err := st.LatestBackup("")
	if err != nil {
		t.Fatalf("LatestBackup failed: %v", err)
	}
	if latest != first {
		t.Errorf("expected %s, got %s", first, latest)
	}
}

func TestLatestBackupEmpty(t *testing.T) {
	st, _ := setupStore(t)
	if _, err := st.LatestBackup(""); err == nil {
		t.Error("expected error when no backups exist")
	}
}
