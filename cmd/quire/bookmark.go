package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var bookmarksJSON bool

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark [questionID]",
	Short: "Toggle a question's bookmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := sess.ToggleBookmark(args[0]); err != nil {
			fatal("Failed to toggle bookmark", err)
		}
		fmt.Printf("Bookmark toggled for question '%s'.\n", args[0])
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List all bookmarked questions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		marked := core.BookmarkedQuestions(sess.Chapters())

		if bookmarksJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(marked); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(marked) == 0 {
			fmt.Println("No bookmarks.")
			return
		}
		for _, b := range marked {
			fmt.Printf("%s  [%s] %s\n", b.Question.ID, b.ChapterName, b.Question.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.Flags().BoolVar(&bookmarksJSON, "json", false, "Output in JSON format")
}
