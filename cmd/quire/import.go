package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var importLatest bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the chapter collection from a snapshot file",
	Long: `Parse a snapshot document and replace the entire chapter collection.
A document that is not a valid chapter array is rejected and the existing
state is left untouched. With --latest the newest backup under the vault is
used instead of an explicit file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := requireAdmin(); err != nil {
			fatal("Admin gate", err)
		}

		if importLatest == (len(args) == 1) {
			fatal("Invalid arguments", fmt.Errorf("provide either a snapshot file or --latest"))
		}

		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		path := ""
		if importLatest {
			st, err := openStore()
			if err != nil {
				fatal("Failed to open vault", err)
			}
			path, err = st.LatestBackup("")
			if err != nil {
				fatal("Failed to locate backup", err)
			}
		} else {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fatal("Failed to read snapshot file", err)
		}

		if err := sess.Import(data); err != nil {
			if errors.Is(err, core.ErrInvalidSnapshot) {
				fmt.Fprintf(os.Stderr, "Snapshot rejected: %v\nExisting state is unchanged.\n", err)
				os.Exit(1)
			}
			fatal("Failed to import snapshot", err)
		}
		fmt.Printf("Snapshot imported from %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importLatest, "latest", false, "Import the newest backup under the vault")
}
