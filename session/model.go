// SPDX-License-Identifier: MIT

package session

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is the bubbletea model behind InteractiveReader.
type inputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int    // -1 while editing a fresh line
	draft        string // fresh line saved while browsing history
	done         bool
	cancelled    bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyCtrlC:
		m.textInput.SetValue("")
		m.done = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.textInput.Value() != "" {
			return m, nil
		}
		m.cancelled = true
		m.done = true
		return m, tea.Quit

	case tea.KeyUp:
		if len(m.history) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.draft = m.textInput.Value()
			m.historyIndex = len(m.history) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.textInput.SetValue(m.history[m.historyIndex])
		m.textInput.CursorEnd()
		return m, nil

	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
			m.textInput.SetValue(m.history[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.textInput.SetValue(m.draft)
		}
		m.textInput.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.textInput.View()
}
