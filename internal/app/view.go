package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/schoolofai/drillcore/internal/mastery"
	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/session"
	"github.com/schoolofai/drillcore/internal/ui/components"
	"github.com/schoolofai/drillcore/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var body string
	state := m.runner.State()

	switch {
	case m.errMsg != "":
		body = theme.Incorrect.Render("Error: "+m.errMsg) + "\n\n" +
			theme.Hint.Render("Press Esc to quit. Your progress is saved.")
	case state.Stage == session.StageComplete:
		body = m.renderSummary()
	case m.outcome != nil:
		body = m.renderFeedback()
	case m.outOfContent:
		body = theme.Body.Render("No more questions available for this block.") + "\n\n" +
			theme.Hint.Render("Press A to move on to the next block, Esc to quit.")
	case m.loading || m.question == nil:
		body = theme.Subtitle.Render("Preparing the next question...")
	default:
		body = m.renderQuestion()
	}

	v.SetContent(m.renderHeader() + "\n\n" + body + "\n\n" + m.renderFooter())
	return v
}

func (m Model) renderHeader() string {
	state := m.runner.State()
	block := state.CurrentBlock()

	title := theme.Title.Render("drillcore")
	if block == nil {
		return title
	}

	info := fmt.Sprintf("Block %d of %d: %s", state.CurrentBlockIndex+1, state.TotalBlocks(), block.Topic)
	band := mastery.ResolveBand(block.MasteryScore)
	masteryLine := fmt.Sprintf("Mastery %s (%s)", mastery.FormatPercent(block.MasteryScore), band)

	bar := components.ProgressBar{
		Label:   "Block progress",
		Percent: float64(session.CompletionProgress(block)) / 100,
		Width:   min(m.width-4, 48),
	}

	return title + "\n" +
		theme.Body.Render(info) + "\n" +
		theme.Subtitle.Render(masteryLine) + "\n" +
		bar.View()
}

func (m Model) renderQuestion() string {
	q := m.question

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("[%s]", q.Difficulty)) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Text) + "\n\n")

	if q.Format == questiongen.FormatMultipleChoice {
		b.WriteString(m.choice.View())
	} else {
		b.WriteString(m.input.View())
	}

	return theme.Card.Width(min(m.width-2, 72)).Render(b.String())
}

func (m Model) renderFeedback() string {
	out := m.outcome
	q := out.Question

	var b strings.Builder
	if out.Correct {
		b.WriteString(theme.Correct.Render("Correct!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite.") + "\n")
		b.WriteString(theme.Body.Render("The answer is "+q.Answer+".") + "\n\n")
	}

	if q.Explanation != "" {
		b.WriteString(theme.Body.Render(q.Explanation) + "\n\n")
	}

	comp := out.Progression.Completion
	if out.Progression.ShouldProgress {
		if out.Progression.SessionComplete {
			b.WriteString(theme.Correct.Render("Block complete! That was the last block.") + "\n")
		} else {
			b.WriteString(theme.Correct.Render("Block complete! Moving to the next block.") + "\n")
		}
	} else if comp.Remaining != nil {
		b.WriteString(theme.Hint.Render(remainingHint(comp)) + "\n")
	}

	return theme.Card.Width(min(m.width-2, 72)).Render(b.String())
}

// remainingHint phrases the outstanding completion work.
func remainingHint(comp session.CompletionResult) string {
	rem := comp.Remaining
	var parts []string
	if rem.MasteryNeeded > 0 {
		parts = append(parts, fmt.Sprintf("%s more mastery needed", mastery.FormatPercent(rem.MasteryNeeded)))
	}
	if rem.HardQuestionsNeeded > 0 {
		noun := "questions"
		if rem.HardQuestionsNeeded == 1 {
			noun = "question"
		}
		parts = append(parts, fmt.Sprintf("%d more hard %s", rem.HardQuestionsNeeded, noun))
	}
	return "To finish this block: " + strings.Join(parts, ", ")
}

func (m Model) renderSummary() string {
	sum := m.runner.Summary()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete!") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%d questions answered, %d correct", sum.TotalQuestions, sum.TotalCorrect)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Overall mastery: %s", mastery.FormatPercent(sum.OverallMastery))) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"Time: %s", sum.Duration.Round(time.Second))) + "\n\n")

	for _, blk := range sum.Blocks {
		line := fmt.Sprintf("%-20s %s  (%d/%d)", blk.Topic, mastery.FormatPercent(blk.Mastery), blk.Correct, blk.Attempted)
		if blk.ManualAdvance {
			line += "  skipped ahead"
		}
		b.WriteString(theme.Body.Render(line) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("Press Enter to exit."))
	return theme.Card.Width(min(m.width-2, 72)).Render(b.String())
}

func (m Model) renderFooter() string {
	state := m.runner.State()
	switch {
	case state.Stage == session.StageComplete:
		return theme.Footer.Render("Enter exit")
	case m.outcome != nil:
		return theme.Footer.Render("any key continue · Esc quit")
	case m.question != nil && m.question.Format == questiongen.FormatMultipleChoice:
		return theme.Footer.Render("↑↓ choose · Enter submit · Ctrl+A skip block · Esc quit")
	default:
		return theme.Footer.Render("Enter submit · Ctrl+A skip block · Esc quit")
	}
}
