package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var chaptersJSON bool

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List all chapters in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		chapters := sess.Chapters()

		if chaptersJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(chapters); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, ch := range chapters {
			fmt.Printf("%s  %s (%d questions)\n", ch.ID, ch.Name, len(ch.Questions))
		}
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
	chaptersCmd.Flags().BoolVar(&chaptersJSON, "json", false, "Output in JSON format")
}
