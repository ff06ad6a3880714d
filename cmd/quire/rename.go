package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [chapterID] [name]",
	Short: "Rename a chapter",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := requireAdmin(); err != nil {
			fatal("Admin gate", err)
		}

		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := sess.RenameChapter(args[0], args[1]); err != nil {
			fatal("Failed to rename chapter", err)
		}
		fmt.Printf("Chapter '%s' renamed.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
