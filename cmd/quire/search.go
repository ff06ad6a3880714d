package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/core"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search chapters by name, question title, or tag",
	Long: `Find chapters whose name contains the query, or that contain at least one
question whose title or any tag contains it. Matching is a case-sensitive
substring check; an empty query matches everything.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		results := core.Search(sess.Chapters(), query)
		if len(results) == 0 {
			fmt.Println("No matching chapters.")
			return
		}
		for _, ch := range results {
			fmt.Printf("%s  %s (%d questions)\n", ch.ID, ch.Name, len(ch.Questions))
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
