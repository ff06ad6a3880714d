package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chapter collection as a snapshot backup",
	Long: `Write the full chapter collection to a timestamped snapshot file
(ebook_backup_<timestamp>.json). DarkMode and other preferences are not part
of a snapshot.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := requireAdmin(); err != nil {
			fatal("Admin gate", err)
		}
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}
		st, err := openStore()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		path, err := st.WriteBackup(sess.Chapters(), exportDir)
		if err != nil {
			fatal("Failed to export snapshot", err)
		}
		fmt.Printf("Snapshot written to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (default <vault>/backups)")
}
