package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/config"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/store"
)

var (
	verbose   bool
	vaultPath string
	password  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "A study-book content store: chapters, questions, bookmarks, backups",
	Long: `Quire manages the content of a single-user study book.
All state lives in one JSON document inside the vault directory; chapters are
a fixed seeded set, questions are created and edited within them, and derived
views (search, bookmarks, random pick) are always computed from the latest
snapshot.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", ".", "Vault directory")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Admin password (or QUIRE_ADMIN_PASSWORD)")
}

// openSession opens the vault through the library facade, honoring any custom
// seed from quire.yaml.
func openSession(mustExist bool) (*core.Session, error) {
	cfg, err := config.Load(vaultPath)
	if err != nil {
		return nil, err
	}
	return quire.Open(vaultPath,
		quire.WithLogger(slog.Default()),
		quire.WithMustExist(mustExist),
		quire.WithSeed(cfg.SeedChapters()),
	)
}

// openStore builds the raw store for commands that operate on backup files.
func openStore() (*store.Store, error) {
	cfg, err := config.Load(vaultPath)
	if err != nil {
		return nil, err
	}
	st := store.New(store.Config{
		Path:   vaultPath,
		Logger: slog.Default(),
		Seed:   cfg.SeedChapters(),
	})
	if err := st.Initialize(); err != nil {
		return nil, err
	}
	return st, nil
}

// requireAdmin enforces the shared static password gate on mutating commands.
// This mirrors the original admin panel: a plaintext comparison, a UI gate
// rather than a security boundary. An empty configured password disables it.
func requireAdmin() error {
	cfg, err := config.Load(vaultPath)
	if err != nil {
		return err
	}
	if cfg.AdminPassword == "" {
		return nil
	}

	supplied := password
	if supplied == "" {
		supplied = os.Getenv("QUIRE_ADMIN_PASSWORD")
	}
	if supplied != cfg.AdminPassword {
		return fmt.Errorf("wrong password")
	}
	return nil
}
