package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolofai/drillcore/internal/app"
	"github.com/schoolofai/drillcore/internal/llm"
	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/runner"
	"github.com/schoolofai/drillcore/internal/session"
	"github.com/schoolofai/drillcore/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Start or resume a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

// runDrill opens the store, builds dependencies, and launches the TUI.
// Shared by the bare `drillcore` invocation and `drillcore drill`.
func runDrill(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	source := buildSource(cmd, st.EventRepo())

	opts := runner.Options{
		Source:   source,
		Sessions: st.SessionRepo(),
		Events:   st.EventRepo(),
	}

	sessionID, _ := cmd.Flags().GetString("session")

	var r *runner.Runner
	if sessionID != "" {
		r, err = runner.Resume(ctx, sessionID, opts)
		if err != nil {
			return fmt.Errorf("resume session: %w", err)
		}
	} else {
		lessonID, _ := cmd.Flags().GetString("lesson")
		topics, _ := cmd.Flags().GetString("topics")
		r, err = runner.Start(ctx, lessonID, parseBlocks(topics), opts)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
	}

	return app.Run(r)
}

// buildSource picks the question source. The LLM source is preferred;
// when no provider is configured (or --source=static) the built-in
// question banks are used instead.
func buildSource(cmd *cobra.Command, events store.EventRepo) questiongen.Source {
	kind, _ := cmd.Flags().GetString("source")
	if kind == "static" {
		return questiongen.NewStaticSource(questiongen.DemoBanks())
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "LLM provider not configured; using built-in question banks.")
			fmt.Fprintln(os.Stderr, "Set DRILLCORE_LLM_PROVIDER and DRILLCORE_LLM_API_KEY for generated questions.")
			return questiongen.NewStaticSource(questiongen.DemoBanks())
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in question banks.")
		return questiongen.NewStaticSource(questiongen.DemoBanks())
	}
	return questiongen.NewLLMSource(provider, questiongen.DefaultGenConfig())
}

// parseBlocks turns a comma-separated topic list into block specs.
func parseBlocks(topics string) []session.BlockSpec {
	var specs []session.BlockSpec
	for _, t := range strings.Split(topics, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		specs = append(specs, session.BlockSpec{
			BlockID: fmt.Sprintf("b%d", len(specs)+1),
			Topic:   t,
		})
	}
	return specs
}

func addDrillFlags(cmd *cobra.Command) {
	cmd.Flags().String("lesson", "default", "Lesson identifier recorded on the session")
	cmd.Flags().String("topics", "Fractions,Decimals,Percentages", "Comma-separated block topics")
	cmd.Flags().String("session", "", "Resume the session with this ID")
	cmd.Flags().String("source", "llm", "Question source: llm or static")
}

func init() {
	addDrillFlags(drillCmd)
	addDrillFlags(rootCmd)
}
