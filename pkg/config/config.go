// Package config loads the optional vault configuration file (quire.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/core"
)

// FileName is the fixed name of the vault configuration file.
const FileName = "quire.yaml"

// SeedChapter describes one chapter of a custom seed list.
type SeedChapter struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Config is the vault configuration. Everything is optional: a missing file
// means defaults throughout.
type Config struct {
	// AdminPassword gates mutating CLI commands. Compared in plaintext; this
	// is a UI gate, not a security boundary. Empty disables the gate.
	AdminPassword string `yaml:"admin_password"`

	// Chapters overrides the default seed chapter list used on first load.
	Chapters []SeedChapter `yaml:"chapters"`
}

// Load reads the configuration file inside dir. A missing file yields the
// zero Config with no error; a malformed file is an error.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// SeedChapters converts the configured seed list to domain chapters. Returns
// nil when no custom seed is configured, letting the store fall back to its
// default.
func (c Config) SeedChapters() []core.Chapter {
	if len(c.Chapters) == 0 {
		return nil
	}
	chapters := make([]core.Chapter, 0, len(c.Chapters))
	for i, sc := range c.Chapters {
		id := sc.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		chapters = append(chapters, core.Chapter{
			ID:        id,
			Name:      sc.Name,
			Questions: []core.Question{},
		})
	}
	return chapters
}
