package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Truth table: and", "a", "b", "out")
	table.AddRow("0", "0", "0")
	table.AddRow("1", "1")
	table.Footer = "2 rows"

	view := table.View(PlainStyles())
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "Truth table: and", lines[0])
	assert.Equal(t, " a | b | out ", lines[1])
	assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[2])
	assert.Equal(t, " 1 | 1 |     ", lines[4])
	assert.Equal(t, "2 rows", lines[5])
}

func TestStyles(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	t.Setenv("TYPERS_DARK_MODE", "")
	assert.False(t, DetectTheme().IsDark)

	assert.True(t, ForColorMode("never").Plain)
	assert.Equal(t, "0101", PlainStyles().Digits("0101"))
}

func TestReplModel(t *testing.T) {
	eval := func(line string) (string, error) {
		if line == "bad" {
			return "", errors.New("boom")
		}
		return "= " + line, nil
	}
	var m tea.Model = NewReplModel(eval, PlainStyles())

	typeLine := func(s string) {
		rm := m.(ReplModel)
		rm.input.SetValue(s)
		m, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	typeLine("1 + 2")
	typeLine("bad")
	typeLine("   ")

	rm := m.(ReplModel)
	require.Len(t, rm.history, 2)
	assert.Equal(t, "= 1 + 2", rm.history[0].output)
	assert.True(t, rm.history[1].failed)
	assert.Empty(t, rm.input.Value())

	view := rm.View()
	assert.Contains(t, view, "» 1 + 2")
	assert.Contains(t, view, "boom")

	typeLine(":clear")
	assert.Empty(t, m.(ReplModel).history)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, m.(ReplModel).Quitting())
	assert.Empty(t, m.View())
}
