package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/schoolofai/drillcore/internal/ui/theme"
)

// AnswerInput is a text field for numeric drill answers. It accepts
// digits, sign, decimal point and the fraction slash.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput builds a focused input with the given placeholder.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 20
	ti.Focus()
	return AnswerInput{Model: ti}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update filters keystrokes to the answer alphabet, then defers to the
// wrapped text input.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !strings.ContainsAny(key, "0123456789.-/") {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the typed answer.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit freezes the input with a correctness mark.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
	a.Model.Blur()
}
