package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream state-change events from the vault",
	Long: `Watch the vault's state document and print an event whenever another
process saves. Useful to drive live-reloading readers. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := openSession(true)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := sess.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		for event := range events {
			if err := sess.Reload(); err != nil {
				fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
				continue
			}
			fmt.Printf("%s  chapters=%d\n", event, len(sess.Chapters()))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
