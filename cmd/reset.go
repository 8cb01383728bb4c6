package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [session-id]",
	Short: "Delete saved sessions",
	Long: "With a session ID, deletes that session. With no arguments,\n" +
		"deletes every saved session after confirmation. The event log is\n" +
		"kept either way.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.SessionRepo()

		if len(args) == 1 {
			rec, err := repo.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}
			if rec == nil {
				return fmt.Errorf("session %s not found", args[0])
			}
			if err := repo.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
			fmt.Println("Deleted session", args[0])
			return nil
		}

		recs, err := repo.List(ctx, false)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No sessions to delete.")
			return nil
		}

		if !force {
			fmt.Printf("Delete all %d sessions? [y/N] ", len(recs))
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		for _, rec := range recs {
			if err := repo.Delete(ctx, rec.SessionID); err != nil {
				return fmt.Errorf("delete session %s: %w", rec.SessionID, err)
			}
		}
		fmt.Printf("Deleted %d sessions.\n", len(recs))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
