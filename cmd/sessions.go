package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		recs, err := s.SessionRepo().List(ctx, !all)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(recs) == 0 {
			if all {
				fmt.Println("No sessions found.")
			} else {
				fmt.Println("No open sessions. Use --all to include completed ones.")
			}
			return nil
		}

		fmt.Printf("%-36s  %-12s  %-16s  %-8s  %s\n",
			"Session", "Lesson", "Updated", "Mastery", "Progress")
		fmt.Println(strings.Repeat("─", 92))

		for _, rec := range recs {
			progress := fmt.Sprintf("block %d of %d",
				rec.State.CurrentBlockIndex+1, rec.State.TotalBlocks)
			if rec.Complete {
				progress = "complete"
			}
			fmt.Printf("%-36s  %-12s  %-16s  %7.0f%%  %s\n",
				rec.SessionID,
				truncate(rec.LessonID, 12),
				rec.UpdatedAt.Local().Format("2006-01-02 15:04"),
				rec.State.OverallMastery*100,
				progress,
			)
		}

		fmt.Printf("\nResume with: drillcore drill --session <id>\n")
		return nil
	},
}

func init() {
	sessionsCmd.Flags().BoolP("all", "a", false, "Include completed sessions")
}
