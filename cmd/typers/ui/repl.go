package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Evaluator evaluates one REPL line and returns its rendered result.
type Evaluator func(line string) (string, error)

type replEntry struct {
	input  string
	output string
	failed bool
}

// maxHistory bounds the number of entries kept on screen.
const maxHistory = 200

// ReplModel is the bubbletea model of the interactive evaluator.
type ReplModel struct {
	input    textinput.Model
	history  []replEntry
	eval     Evaluator
	styles   Styles
	height   int
	quitting bool
}

// NewReplModel creates a REPL model backed by eval.
func NewReplModel(eval Evaluator, styles Styles) ReplModel {
	ti := textinput.New()
	ti.Placeholder = "1 + 2, dec(0), if(3 < 5, bsl(4), 0) ..."
	ti.Prompt = styles.Prompt.Render("» ")
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return ReplModel{
		input:  ti,
		eval:   eval,
		styles: styles,
	}
}

// Init initializes the model.
func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			switch line {
			case "":
				return m, nil
			case ":q", "quit", "exit":
				m.quitting = true
				return m, tea.Quit
			case ":clear":
				m.history = nil
				return m, nil
			}
			m.submit(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) submit(line string) {
	out, err := m.eval(line)
	e := replEntry{input: line, output: out}
	if err != nil {
		e.output = err.Error()
		e.failed = true
	}
	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// View renders the history followed by the prompt.
func (m ReplModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("typers repl") + " " +
		m.styles.Muted.Render("(:clear, :q to quit)") + "\n\n")

	entries := m.history
	// Each entry takes two lines; keep the prompt on screen.
	if m.height > 0 {
		if fit := (m.height - 4) / 2; fit >= 0 && len(entries) > fit {
			entries = entries[len(entries)-fit:]
		}
	}
	for _, e := range entries {
		sb.WriteString(m.styles.Muted.Render("» "+e.input) + "\n")
		if e.failed {
			sb.WriteString(m.styles.Error.Render(e.output) + "\n")
		} else {
			sb.WriteString(m.styles.Result.Render(e.output) + "\n")
		}
	}
	sb.WriteString(m.input.View())
	return sb.String()
}

// Quitting reports whether the user asked to leave.
func (m ReplModel) Quitting() bool { return m.quitting }
