package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a vault",
	Long: `Create the vault directory and seed the state document with the default
chapter list (or the chapters configured in quire.yaml).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(false)
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		chapters := sess.Chapters()
		fmt.Printf("Vault ready with %d chapters.\n", len(chapters))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
