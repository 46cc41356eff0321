// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// InputReader yields one line of user input per call.
// It returns io.EOF when the input is exhausted.
type InputReader interface {
	ReadLine() (string, error)
}

// PromptingReader is implemented by readers that draw their own prompt.
type PromptingReader interface {
	InputReader
	SetPrompt(prompt string)
}

// LineReader reads newline-terminated lines from any io.Reader.
// It has no line editing.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line with surrounding whitespace trimmed.
// A final line without a newline is returned before io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// InteractiveReader reads lines through a bubbletea text input with
// Up/Down history navigation.
type InteractiveReader struct {
	history    []string
	maxHistory int
	prompt     string
	output     io.Writer
}

// NewReader returns an InteractiveReader when stdin is a terminal and a
// LineReader over stdin otherwise (pipes, CI).
func NewReader(maxHistory int) InputReader {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewLineReader(os.Stdin)
	}

	return NewInteractiveReader(maxHistory, os.Stderr)
}

// NewInteractiveReader creates a reader that renders its editor on output.
func NewInteractiveReader(maxHistory int, output io.Writer) *InteractiveReader {
	if maxHistory < 0 {
		maxHistory = 0
	}

	return &InteractiveReader{
		history:    make([]string, 0, maxHistory),
		maxHistory: maxHistory,
		prompt:     "> ",
		output:     output,
	}
}

// SetPrompt sets the prompt drawn by the text input.
func (r *InteractiveReader) SetPrompt(prompt string) { r.prompt = prompt }

// History returns a copy of the remembered lines, oldest first.
func (r *InteractiveReader) History() []string {
	return append([]string(nil), r.history...)
}

// ReadLine runs one editor round. Ctrl+D on an empty line yields io.EOF;
// Ctrl+C discards the line and yields "".
func (r *InteractiveReader) ReadLine() (string, error) {
	p := tea.NewProgram(r.newModel(), tea.WithOutput(r.output))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	return r.finish(final)
}

func (r *InteractiveReader) newModel() inputModel {
	ti := textinput.New()
	ti.Prompt = r.prompt
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 80

	return inputModel{
		textInput:    ti,
		history:      r.history,
		historyIndex: -1,
	}
}

// finish turns the final model state into a ReadLine result.
func (r *InteractiveReader) finish(final tea.Model) (string, error) {
	m, ok := final.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.cancelled {
		return "", io.EOF
	}

	line := strings.TrimSpace(m.textInput.Value())
	if line != "" {
		r.addToHistory(line)
	}

	return line, nil
}

// addToHistory appends line, skipping an immediate repeat and keeping at
// most maxHistory entries.
func (r *InteractiveReader) addToHistory(line string) {
	if r.maxHistory == 0 {
		return
	}
	if n := len(r.history); n > 0 && r.history[n-1] == line {
		return
	}
	r.history = append(r.history, line)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}
