package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/store"
)

// TestVaultLifecycle drives the full flow through the public facade: seed,
// edit, bookmark, export, and restore into a second vault.
func TestVaultLifecycle(t *testing.T) {
	// t.TempDir is inside the system temp root, so the dev-safety sandbox
	// trusts it as-is.
	vaultDir := t.TempDir()

	sess, err := quire.Open(vaultDir)
	require.NoError(t, err)

	// First load seeds the default chapter set.
	chapters := sess.Chapters()
	require.Len(t, chapters, len(store.DefaultChapters()))
	assert.False(t, sess.DarkMode())

	// Author a question.
	err = sess.UpsertQuestion("1", quire.QuestionDraft{
		Title:      "What distinguishes a theory from a paradigm?",
		Type:       core.TypeEssay,
		AnswerHTML: "<p>A theory explains; a paradigm frames.</p>",
		Tags:       []string{"theory", "basics"},
	})
	require.NoError(t, err)

	chapters = sess.Chapters()
	require.Len(t, chapters[0].Questions, 1)
	q := chapters[0].Questions[0]
	assert.NotEmpty(t, q.ID)
	assert.NotZero(t, q.UpdatedAt)

	// Bookmark it from a context that only knows the question id.
	require.NoError(t, sess.ToggleBookmark(q.ID))
	marked := core.BookmarkedQuestions(sess.Chapters())
	require.Len(t, marked, 1)
	assert.Equal(t, q.ID, marked[0].Question.ID)

	// Export a snapshot, then restore it into a fresh vault.
	snapshot, err := sess.Export()
	require.NoError(t, err)

	otherDir := t.TempDir()
	other, err := quire.Open(otherDir)
	require.NoError(t, err)
	require.NoError(t, other.Import(snapshot))
	assert.Equal(t, sess.Chapters(), other.Chapters())
}

// TestVaultReopen ensures state survives across sessions of the same vault.
func TestVaultReopen(t *testing.T) {
	vaultDir := t.TempDir()

	sess, err := quire.Open(vaultDir)
	require.NoError(t, err)
	require.NoError(t, sess.RenameChapter("1", "Renamed Chapter"))
	require.NoError(t, sess.SetDarkMode(true))

	reopened, err := quire.Open(vaultDir)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Chapter", reopened.Chapters()[0].Name)
	assert.True(t, reopened.DarkMode())
}

// TestLastWriteWins documents the concurrency contract: two sessions over the
// same vault overwrite each other wholesale, no merging.
func TestLastWriteWins(t *testing.T) {
	vaultDir := t.TempDir()

	a, err := quire.Open(vaultDir)
	require.NoError(t, err)
	b, err := quire.Open(vaultDir)
	require.NoError(t, err)

	require.NoError(t, a.RenameChapter("1", "From A"))
	require.NoError(t, b.RenameChapter("2", "From B"))

	// B saved last; its snapshot (which never saw A's rename) is canonical.
	fresh, err := quire.Open(vaultDir)
	require.NoError(t, err)
	assert.NotEqual(t, "From A", fresh.Chapters()[0].Name)
	assert.Equal(t, "From B", fresh.Chapters()[1].Name)
}

// TestImportRejectionLeavesVaultIntact exercises the validation boundary
// end-to-end, including the on-disk document.
func TestImportRejectionLeavesVaultIntact(t *testing.T) {
	vaultDir := t.TempDir()

	sess, err := quire.Open(vaultDir)
	require.NoError(t, err)
	require.NoError(t, sess.UpsertQuestion("1", quire.QuestionDraft{Title: "Keep me", Type: core.TypeShort}))

	err = sess.Import([]byte(`{"chapters": []}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidSnapshot))

	reopened, err := quire.Open(vaultDir)
	require.NoError(t, err)
	require.Len(t, reopened.Chapters()[0].Questions, 1)
	assert.Equal(t, "Keep me", reopened.Chapters()[0].Questions[0].Title)
}

// TestBackupDiscovery writes snapshots through the store and finds them again.
func TestBackupDiscovery(t *testing.T) {
	vaultDir := t.TempDir()

	sess, err := quire.Open(vaultDir)
	require.NoError(t, err)

	st := store.New(store.Config{Path: vaultDir})
	require.NoError(t, st.Initialize())

	path, err := st.WriteBackup(sess.Chapters(), "")
	require.NoError(t, err)
	assert.FileExists(t, path)

	latest, err := st.LatestBackup("")
	require.NoError(t, err)
	assert.Equal(t, path, latest)

	restored, err := store.ReadBackup(latest)
	require.NoError(t, err)
	assert.Equal(t, sess.Chapters(), restored)

	// Backups live outside the state document; the vault root holds both.
	_, err = os.Stat(filepath.Join(vaultDir, store.StateFileName))
	assert.NoError(t, err)
}
