package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var (
	readJSON bool
	readType string
)

var readCmd = &cobra.Command{
	Use:   "read [chapterID] [questionID]",
	Short: "Read a chapter or a single question",
	Long: `With one argument, list the chapter's questions (optionally filtered by
--type). With two arguments, print a single question's answer markup.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}
		chapters := sess.Chapters()

		if len(args) == 2 {
			q, err := core.FindQuestion(chapters, args[0], args[1])
			if err != nil {
				fatal("Failed to read question", err)
			}
			if readJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(q); err != nil {
					fatal("Failed to encode JSON", err)
				}
				return
			}
			fmt.Printf("%s\n\n%s\n", q.Title, q.AnswerHTML)
			return
		}

		ch, err := core.FindChapter(chapters, args[0])
		if err != nil {
			fatal("Failed to read chapter", err)
		}

		questions := ch.Questions
		if readType != "" {
			t := core.QuestionType(readType)
			if !t.Valid() {
				fatal("Invalid type", fmt.Errorf("%q is not one of short, essay", readType))
			}
			questions = core.QuestionsByType(ch, t)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(questions); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("%s\n", ch.Name)
		for _, q := range questions {
			marker := " "
			if q.Bookmarked {
				marker = "*"
			}
			fmt.Printf("%s %s  [%s] %s\n", marker, q.ID, q.Type, q.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
	readCmd.Flags().StringVar(&readType, "type", "", "Filter questions by type (short, essay)")
}
