package cmd

import (
	"fmt"

	"github.com/abhisek/shizi/internal/app"
	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	offline, _ := cmd.Flags().GetBool("offline")
	gen, err := newGenerator(ctx, st.EventRepo(), offline)
	if err != nil {
		return fmt.Errorf("content source: %w", err)
	}

	mute, _ := cmd.Flags().GetBool("mute")
	skipSplash, _ := cmd.Flags().GetBool("skip-splash")
	cues := newCuePlayer(mute)

	return app.Run(app.Options{
		Session:    session.New(gen, cues),
		Cues:       cues,
		SkipSplash: skipSplash,
	})
}
