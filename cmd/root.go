// Package cmd holds the drillcore CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schoolofai/drillcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "drillcore",
	Short: "Adaptive practice drills in the terminal",
	Long: "Drillcore runs adaptive practice sessions: questions get harder as\n" +
		"mastery grows, blocks complete when you prove yourself on hard\n" +
		"questions, and every session can be resumed where you left off.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DRILLCORE_DB)")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath applies the --db flag over DRILLCORE_DB over the
// default XDG location.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the store for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
