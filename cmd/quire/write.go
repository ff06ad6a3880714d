package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var (
	writeChapter    string
	writeID         string
	writeTitle      string
	writeType       string
	writeAnswer     string
	writeAnswerFile string
	writeTags       []string
	writeBookmarked bool
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create or update a question",
	Long: `Save a question into a chapter. Without --id a new question is appended;
with --id the matching question is replaced in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := requireAdmin(); err != nil {
			fatal("Admin gate", err)
		}

		qType := core.QuestionType(writeType)
		if !qType.Valid() {
			fatal("Invalid type", fmt.Errorf("%q is not one of short, essay", writeType))
		}

		answer := writeAnswer
		if writeAnswerFile != "" {
			data, err := os.ReadFile(writeAnswerFile)
			if err != nil {
				fatal("Failed to read answer file", err)
			}
			answer = string(data)
		}

		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		draft := core.QuestionDraft{
			ID:         writeID,
			Title:      writeTitle,
			Type:       qType,
			AnswerHTML: answer,
			Tags:       writeTags,
			Bookmarked: writeBookmarked,
		}
		if err := sess.UpsertQuestion(writeChapter, draft); err != nil {
			fatal("Failed to save question", err)
		}

		fmt.Printf("Question saved into chapter '%s'.\n", writeChapter)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeChapter, "chapter", "", "Chapter ID")
	writeCmd.Flags().StringVar(&writeID, "id", "", "Question ID (empty appends a new question)")
	writeCmd.Flags().StringVar(&writeTitle, "title", "", "Question title")
	writeCmd.Flags().StringVarP(&writeType, "type", "t", "short", "Question type (short, essay)")
	writeCmd.Flags().StringVar(&writeAnswer, "answer", "", "Answer markup")
	writeCmd.Flags().StringVar(&writeAnswerFile, "answer-file", "", "Read answer markup from a file")
	writeCmd.Flags().StringSliceVar(&writeTags, "tag", nil, "Tag (repeatable)")
	writeCmd.Flags().BoolVar(&writeBookmarked, "bookmarked", false, "Mark as bookmarked")
	writeCmd.MarkFlagRequired("chapter")
	writeCmd.MarkFlagRequired("title")
}
