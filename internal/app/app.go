// Package app is the interactive drill TUI: one question on screen at a
// time, feedback after each answer, and a summary when the session
// completes.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/runner"
	"github.com/schoolofai/drillcore/internal/session"
	"github.com/schoolofai/drillcore/internal/ui/components"
)

// Model is the root Bubble Tea model for a drill session.
type Model struct {
	runner *runner.Runner

	question *questiongen.Question
	outcome  *runner.Outcome

	input  components.AnswerInput
	choice components.MultiChoice

	loading      bool
	outOfContent bool
	errMsg       string

	width  int
	height int
}

// New builds the model around a started or resumed runner.
func New(r *runner.Runner) Model {
	return Model{runner: r, loading: true}
}

func (m Model) Init() tea.Cmd {
	if m.runner.State().SessionComplete {
		return nil
	}
	return m.fetchQuestion()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case answerJudgedMsg:
		return m.handleAnswerJudged(msg)

	case advanceDoneMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		return m.afterProgression()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		// State is persisted after every answer, quitting is safe.
		return m, tea.Quit
	}

	state := m.runner.State()

	if state.Stage == session.StageComplete {
		if key == "enter" || key == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.outcome != nil {
		// Feedback showing. Any key continues.
		return m.afterProgression()
	}

	if m.outOfContent {
		if key == "a" {
			m.outOfContent = false
			return m, m.requestAdvance()
		}
		return m, nil
	}

	if m.loading || m.question == nil {
		return m, nil
	}

	if key == "ctrl+a" {
		return m, m.requestAdvance()
	}

	if m.question.Format == questiongen.FormatMultipleChoice {
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			return m, m.submitAnswer(m.choice.Value())
		}
		return m, cmd
	}

	if key == "enter" {
		if m.input.Value() == "" {
			return m, nil
		}
		return m, m.submitAnswer(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	if msg.Question == nil {
		m.outOfContent = true
		return m, nil
	}

	m.question = msg.Question
	m.outcome = nil
	m.errMsg = ""

	if msg.Question.Format == questiongen.FormatMultipleChoice {
		correct := 0
		for i, c := range msg.Question.Choices {
			if c == msg.Question.Answer {
				correct = i
			}
		}
		m.choice = components.NewMultiChoice(msg.Question.Choices, correct)
		return m, nil
	}

	m.input = components.NewAnswerInput("Type your answer...")
	return m, m.input.Init()
}

func (m Model) handleAnswerJudged(msg answerJudgedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.outcome = msg.Outcome
	m.question = nil
	return m, nil
}

// afterProgression moves past the feedback (or advance) pause: fetch
// the next question unless the session just finished.
func (m Model) afterProgression() (tea.Model, tea.Cmd) {
	m.outcome = nil
	m.question = nil
	if m.runner.State().SessionComplete {
		return m, nil
	}
	m.loading = true
	return m, m.fetchQuestion()
}

func (m Model) fetchQuestion() tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		q, err := r.NextQuestion(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (m Model) submitAnswer(input string) tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		out, err := r.SubmitAnswer(context.Background(), input)
		return answerJudgedMsg{Outcome: out, Err: err}
	}
}

func (m Model) requestAdvance() tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		_, err := r.RequestAdvance(context.Background())
		return advanceDoneMsg{Err: err}
	}
}

// Run starts the Bubble Tea program for the given runner.
func Run(r *runner.Runner) error {
	p := tea.NewProgram(New(r))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running drill:", err)
		return err
	}
	return nil
}
