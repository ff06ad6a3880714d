package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick one question uniformly at random",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		chapters := sess.Chapters()
		ref, err := core.PickRandom(chapters)
		if errors.Is(err, core.ErrNoQuestions) {
			fmt.Println("The book has no questions yet.")
			os.Exit(0)
		}
		if err != nil {
			fatal("Failed to pick a question", err)
		}

		q, err := core.FindQuestion(chapters, ref.ChapterID, ref.QuestionID)
		if err != nil {
			fatal("Failed to resolve picked question", err)
		}
		ch, _ := core.FindChapter(chapters, ref.ChapterID)
		fmt.Printf("[%s] %s\n\n%s\n", ch.Name, q.Title, q.AnswerHTML)
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
