package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wortschatz",
	Short: "German vocabulary trainer",
	Long:  "Wortschatz: a terminal app for learning German vocabulary with flashcards, quizzes, typing drills and speed rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORTSCHATZ_DB_PATH)")
	rootCmd.PersistentFlags().String("progress", "", "Path to the JSON progress file (overrides WORTSCHATZ_PROGRESS_PATH)")
	rootCmd.PersistentFlags().String("data", "", "Directory with vocabulary JSON files that override the built-in lists")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
