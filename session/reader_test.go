// SPDX-License-Identifier: MIT

package session

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m inputModel, msg tea.Msg) inputModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(inputModel)
	require.True(t, ok)

	return got
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestModelHistoryNavigation(t *testing.T) {
	r := NewInteractiveReader(10, io.Discard)
	r.addToHistory("create A 1 1")
	r.addToHistory("display A")

	m := r.newModel()
	m.textInput.SetValue("draft")

	m = update(t, m, key(tea.KeyUp))
	require.Equal(t, "display A", m.textInput.Value())
	m = update(t, m, key(tea.KeyUp))
	require.Equal(t, "create A 1 1", m.textInput.Value())
	m = update(t, m, key(tea.KeyUp))
	require.Equal(t, "create A 1 1", m.textInput.Value(), "stops at oldest")

	m = update(t, m, key(tea.KeyDown))
	require.Equal(t, "display A", m.textInput.Value())
	m = update(t, m, key(tea.KeyDown))
	require.Equal(t, "draft", m.textInput.Value(), "restores the fresh line")
	require.Equal(t, -1, m.historyIndex)
}

func TestModelEmptyHistory(t *testing.T) {
	m := NewInteractiveReader(10, io.Discard).newModel()

	m = update(t, m, key(tea.KeyUp))
	require.Equal(t, -1, m.historyIndex)
	m = update(t, m, key(tea.KeyDown))
	require.Equal(t, -1, m.historyIndex)
}

func TestModelEnterSubmits(t *testing.T) {
	r := NewInteractiveReader(10, io.Discard)
	m := r.newModel()
	m.textInput.SetValue("  display A ")
	m = update(t, m, key(tea.KeyEnter))
	require.True(t, m.done)
	require.Empty(t, m.View())

	line, err := r.finish(m)
	require.NoError(t, err)
	require.Equal(t, "display A", line)
	require.Equal(t, []string{"display A"}, r.History())
}

func TestModelCtrlCClearsLine(t *testing.T) {
	r := NewInteractiveReader(10, io.Discard)
	m := r.newModel()
	m.textInput.SetValue("half typed")
	m = update(t, m, key(tea.KeyCtrlC))

	line, err := r.finish(m)
	require.NoError(t, err)
	require.Empty(t, line)
	require.Empty(t, r.History())
}

func TestModelCtrlDOnEmptyLineIsEOF(t *testing.T) {
	r := NewInteractiveReader(10, io.Discard)
	m := update(t, r.newModel(), key(tea.KeyCtrlD))

	_, err := r.finish(m)
	require.ErrorIs(t, err, io.EOF)
}

func TestModelCtrlDWithTextIsIgnored(t *testing.T) {
	m := NewInteractiveReader(10, io.Discard).newModel()
	m.textInput.SetValue("abc")
	m = update(t, m, key(tea.KeyCtrlD))
	require.False(t, m.done)
	require.Equal(t, "abc", m.textInput.Value())
}

func TestFinishRejectsForeignModel(t *testing.T) {
	r := NewInteractiveReader(10, io.Discard)
	_, err := r.finish(nil)
	require.Error(t, err)
}

func TestHistoryBounds(t *testing.T) {
	r := NewInteractiveReader(2, io.Discard)
	r.addToHistory("a")
	r.addToHistory("a")
	r.addToHistory("b")
	r.addToHistory("c")
	require.Equal(t, []string{"b", "c"}, r.History())

	off := NewInteractiveReader(0, io.Discard)
	off.addToHistory("a")
	require.Empty(t, off.History())
}

func TestSetPrompt(t *testing.T) {
	r := NewInteractiveReader(1, io.Discard)
	r.SetPrompt("lv> ")
	require.Equal(t, "lv> ", r.newModel().textInput.Prompt)
}
