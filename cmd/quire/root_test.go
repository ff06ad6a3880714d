package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withVault(t *testing.T, dir string) {
	t.Helper()
	origVault, origPassword := vaultPath, password
	t.Cleanup(func() { vaultPath, password = origVault, origPassword })
	vaultPath = dir
}

func TestRequireAdmin(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte("admin_password: secret\n")
	if err := os.WriteFile(filepath.Join(dir, "quire.yaml"), cfg, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	withVault(t, dir)

	t.Run("Missing Password Rejected", func(t *testing.T) {
		password = ""
		if err := requireAdmin(); err == nil {
			t.Error("expected the gate to reject a missing password")
		}
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		password = "guess"
		if err := requireAdmin(); err == nil {
			t.Error("expected the gate to reject a wrong password")
		}
	})

	t.Run("Flag Password Accepted", func(t *testing.T) {
		password = "secret"
		if err := requireAdmin(); err != nil {
			t.Errorf("unexpected rejection: %v", err)
		}
	})

	t.Run("Env Password Accepted", func(t *testing.T) {
		password = ""
		t.Setenv("QUIRE_ADMIN_PASSWORD", "secret")
		if err := requireAdmin(); err != nil {
			t.Errorf("unexpected rejection: %v", err)
		}
	})

	t.Run("No Configured Password Opens Gate", func(t *testing.T) {
		withVault(t, t.TempDir())
		password = ""
		if err := requireAdmin(); err != nil {
			t.Errorf("unexpected rejection: %v", err)
		}
	})
}

// Export runs behind the same gate as the other admin panel commands; with
// the right password it must still produce a snapshot file.
func TestExportCommandPassesAdminGate(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte("admin_password: secret\n")
	if err := os.WriteFile(filepath.Join(dir, "quire.yaml"), cfg, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	rootCmd.SetArgs([]string{"export", "--vault", dir, "--password", "secret"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "backups", "ebook_backup_*.json"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one snapshot file, found %d", len(matches))
	}
}
