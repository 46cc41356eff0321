// SPDX-License-Identifier: MIT

// Package session runs the read-dispatch loop of an lvmat process.
//
// A Session prints a prompt, reads one line, skips it when blank, stops on the
// literal "exit" or at end of input, and otherwise hands the line to a
// Dispatcher. Dispatch failures are the dispatcher's business: they are
// printed there and never end the loop. Only a failing InputReader does.
// Every resident matrix is released when the loop ends, however it ends.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitCommand ends a session.
const ExitCommand = "exit"

// Dispatcher executes one input line.
type Dispatcher interface {
	Dispatch(line string) error
}

// Releaser frees every resident matrix at the end of a session.
type Releaser interface {
	DestroyAll()
}

// Session couples an input source with a dispatcher.
type Session struct {
	in     InputReader
	d      Dispatcher
	rel    Releaser
	out    io.Writer
	prompt string
	log    *slog.Logger
}

// Option configures a Session.
type Option func(s *Session)

// WithPrompt sets the prompt. The default is "> ".
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithOutput sets where the prompt is printed for readers that do not draw
// their own. The default discards it.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Session. rel may be nil.
func New(in InputReader, d Dispatcher, rel Releaser, opts ...Option) *Session {
	s := &Session{
		in:     in,
		d:      d,
		rel:    rel,
		out:    io.Discard,
		prompt: "> ",
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if p, ok := in.(PromptingReader); ok {
		p.SetPrompt(s.prompt)
	}

	return s
}

// Run loops until "exit", end of input or a read error.
// Returns nil on "exit" and end of input.
func (s *Session) Run() error {
	if s.rel != nil {
		defer s.rel.DestroyAll()
	}

	_, prompting := s.in.(PromptingReader)
	lines := 0
	for {
		if !prompting {
			fmt.Fprint(s.out, s.prompt)
		}

		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			s.log.Info("session ended", "reason", "eof", "lines", lines)
			return nil
		}
		if err != nil {
			s.log.Error("read input", "err", err)
			return fmt.Errorf("read line: %w", err)
		}

		switch line = strings.TrimSpace(line); line {
		case "":
			continue
		case ExitCommand:
			s.log.Info("session ended", "reason", ExitCommand, "lines", lines)
			return nil
		}

		lines++
		_ = s.d.Dispatch(line)
	}
}
