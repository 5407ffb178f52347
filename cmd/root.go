package cmd

import (
	"github.com/abhisek/shizi/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shizi",
	Short: "Chinese character quiz for kids",
	Long:  "Shizi (萌萌识字) is a terminal quiz that helps children (grades 1-3) learn Chinese characters and their pinyin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SHIZI_DB env var)")
	rootCmd.PersistentFlags().Bool("offline", false, "Use the built-in word bank instead of an LLM")
	rootCmd.Flags().Bool("mute", false, "Disable sound effects (same as SHIZI_SOUND=off)")
	rootCmd.Flags().Bool("skip-splash", false, "Open the game menu directly")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(soundsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SHIZI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
