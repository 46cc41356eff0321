// SPDX-License-Identifier: MIT

// Package command turns one line of user input into a matrix operation.
//
// A line is split on whitespace (see Tokenize) and routed by its first token
// and exact token count to one verb of the table in verbs.go. Operands are
// resolved by name through a registry.Registry; results are inserted into the
// registry only after the whole verb succeeded, so a failing line never leaves
// a half-built matrix behind.
//
// Every outcome is reported to the output writer as one status line (or a
// matrix listing for display), logged through slog and counted in metrics.
// A failing line is never fatal: Dispatch returns the error for callers that
// care, and the session simply reads the next line.
//
// A Dispatcher is not safe for concurrent use.
package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/metrics"
	"github.com/katalvlaran/lvmat/registry"
)

// Dispatcher executes command lines against a registry.
type Dispatcher struct {
	reg     *registry.Registry
	out     io.Writer
	style   styles
	log     *slog.Logger
	metrics *metrics.Metrics
	rng     matrix.Source
	dataDir string
	verbs   map[string]verb
}

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithLogger sets the structured logger. The default discards records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMetrics sets the collector set. Nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithSource sets the generator used by the random verb.
func WithSource(src matrix.Source) Option {
	return func(d *Dispatcher) {
		if src != nil {
			d.rng = src
		}
	}
}

// WithDataDir sets the directory that write stores into and that relative
// read paths resolve against. The default is the working directory.
func WithDataDir(dir string) Option {
	return func(d *Dispatcher) {
		if dir != "" {
			d.dataDir = dir
		}
	}
}

// New creates a Dispatcher that resolves names in reg and prints to out.
func New(reg *registry.Registry, out io.Writer, opts ...Option) (*Dispatcher, error) {
	if reg == nil {
		return nil, fmt.Errorf("command.New: nil registry: %w", matrix.ErrInvalidArgument)
	}
	if out == nil {
		out = io.Discard
	}

	d := &Dispatcher{
		reg:     reg,
		out:     out,
		style:   newStyles(out),
		log:     slog.New(slog.DiscardHandler),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		dataDir: ".",
		verbs:   make(map[string]verb, len(verbTable)),
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, v := range verbTable {
		d.verbs[v.Name] = v
	}

	return d, nil
}

// Dispatch tokenizes line and runs the matching verb.
// A blank line is a no-op. Any failure has already been printed and logged
// when Dispatch returns it.
func (d *Dispatcher) Dispatch(line string) error {
	args, err := Tokenize(line)
	if err != nil {
		d.printFail("Failed at parsing command")
		d.log.Warn("parse failed", "err", err)
		d.metrics.ObserveCommand("unknown", metrics.OutcomeError)
		return err
	}
	if len(args) == 0 {
		return nil
	}

	v, ok := d.verbs[args[0]]
	if !ok || v.Arity != len(args) {
		d.printFail("Not a command in this application")
		d.log.Info("unknown command", "verb", args[0], "tokens", len(args))
		d.metrics.ObserveCommand("unknown", metrics.OutcomeUnknown)
		return fmt.Errorf("%q with %d tokens: %w", args[0], len(args), ErrUnknownCommand)
	}

	start := time.Now()
	err = v.Run(d, args)
	d.metrics.SetResident(d.reg.Len())
	if err != nil {
		d.report(v, err)
		d.log.Warn("command failed", "verb", v.Name, "args", args[1:], "err", err)
		d.metrics.ObserveCommand(v.Name, metrics.OutcomeError)
		return err
	}
	d.log.Debug("command done", "verb", v.Name, "args", args[1:], "elapsed", time.Since(start))
	d.metrics.ObserveCommand(v.Name, metrics.OutcomeOK)

	return nil
}

// report prints the diagnostic for a failed verb.
func (d *Dispatcher) report(v verb, err error) {
	var missing *missingError
	if errors.As(err, &missing) {
		d.printFail("%s", missing.Error())
		return
	}
	d.printFail("%s: %v", v.Fail, err)
}

// lookup resolves name or returns a *missingError.
func (d *Dispatcher) lookup(name string) (*matrix.Matrix, error) {
	m, err := d.reg.Lookup(name)
	if err != nil {
		return nil, &missingError{name: name, err: err}
	}

	return m, nil
}

// insert stores m and logs the slot it landed in.
func (d *Dispatcher) insert(m *matrix.Matrix) error {
	slot, err := d.reg.Insert(m)
	if err != nil {
		return err
	}
	d.log.Debug("matrix stored", "matrix", m.Name(), "slot", slot)

	return nil
}

// Usage returns one usage line per verb, in table order.
func Usage() []string {
	lines := make([]string, 0, len(verbTable))
	for _, v := range verbTable {
		lines = append(lines, fmt.Sprintf("%-32s %s", v.Usage, v.Desc))
	}

	return lines
}
