package store

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/quire/pkg/core"
)

// backupTimeLayout is ISO 8601 basic format. The extended format's colons are
// not legal in filenames on every platform.
const backupTimeLayout = "20060102T150405Z"

// backupPattern matches exported snapshot files at any depth.
const backupPattern = "**/ebook_backup_*.json"

// BackupFileName returns the export filename for the given moment.
func BackupFileName(t time.Time) string {
	return fmt.Sprintf("ebook_backup_%s.json", t.UTC().Format(backupTimeLayout))
}

// WriteBackup exports the chapter collection as a snapshot document into dir,
// creating it if needed. An empty dir defaults to the vault's backups
// directory. Returns the path of the written file.
func (s *Store) WriteBackup(chapters []core.Chapter, dir string) (string, error) {
	if dir == "" {
		dir = filepath.Join(s.Path, BackupDirName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := core.ExportSnapshot(chapters)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, BackupFileName(time.Now()))
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if s.config.Logger != nil {
		s.config.Logger.Info("snapshot exported", "path", path)
	}
	return path, nil
}

// ReadBackup parses and validates a snapshot file.
func ReadBackup(path string) ([]core.Chapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return core.ImportSnapshot(data)
}

// FindBackups returns the snapshot files under root (the vault directory when
// empty), sorted oldest first. The timestamped filenames sort
// chronologically.
func (s *Store) FindBackups(root string) ([]string, error) {
	if root == "" {
		root = s.Path
	}
	matches, err := doublestar.Glob(os.DirFS(root), backupPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for backups: %w", err)
	}
	slices.Sort(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	return paths, nil
}

// LatestBackup returns the most recent snapshot file under root.
func (s *Store) LatestBackup(root string) (string, error) {
	paths, err := s.FindBackups(root)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no backups found")
	}
	return paths[len(paths)-1], nil
}
