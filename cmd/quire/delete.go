package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [chapterID] [questionID]",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := requireAdmin(); err != nil {
			fatal("Admin gate", err)
		}

		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := sess.DeleteQuestion(args[0], args[1]); err != nil {
			fatal("Failed to delete question", err)
		}
		fmt.Printf("Question '%s' deleted from chapter '%s'.\n", args[1], args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
