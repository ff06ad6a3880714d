package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var darkCmd = &cobra.Command{
	Use:   "dark",
	Short: "Toggle the dark-mode preference",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		next := !sess.DarkMode()
		if err := sess.SetDarkMode(next); err != nil {
			fatal("Failed to save preference", err)
		}
		if next {
			fmt.Println("Dark mode on.")
		} else {
			fmt.Println("Dark mode off.")
		}
	},
}

func init() {
	rootCmd.AddCommand(darkCmd)
}
