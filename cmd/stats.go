package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolofai/drillcore/internal/difficulty"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics across all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.TotalAnswered == 0 {
			fmt.Println("No answers recorded yet. Run `drillcore drill` to practice.")
			return nil
		}

		fmt.Printf("Sessions:  %d\n", stats.Sessions)
		fmt.Printf("Answered:  %d\n", stats.TotalAnswered)
		fmt.Printf("Correct:   %d (%.0f%%)\n\n",
			stats.TotalCorrect,
			float64(stats.TotalCorrect)/float64(stats.TotalAnswered)*100)

		fmt.Println("By Difficulty")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-10s  %9s  %9s  %9s\n", "Level", "Attempted", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 44))

		for _, lvl := range difficulty.Ascending() {
			tally, ok := stats.ByDifficulty[string(lvl)]
			if !ok || tally.Attempted == 0 {
				continue
			}
			fmt.Printf("%-10s  %9d  %9d  %8.0f%%\n",
				string(lvl), tally.Attempted, tally.Correct,
				float64(tally.Correct)/float64(tally.Attempted)*100)
		}
		return nil
	},
}
