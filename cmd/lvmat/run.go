// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmat/codec"
	"github.com/katalvlaran/lvmat/command"
	"github.com/katalvlaran/lvmat/config"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/metrics"
	"github.com/katalvlaran/lvmat/random"
	"github.com/katalvlaran/lvmat/registry"
	"github.com/katalvlaran/lvmat/session"
)

// Bootstrap fixture written at startup when enabled.
const (
	fixtureName = "temp_mat"
	fixtureDim  = 5
	fixtureLo   = 10
	fixtureHi   = 15
)

// run wires one session from a validated configuration and blocks until it ends.
func run(cfg config.Config, in session.InputReader, out, logOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString())

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return err
	}
	logger.Debug("generator seeded", "seed", seed)

	met := metrics.New()
	reg, err := registry.New(cfg.Capacity, registry.WithEvictHook(func(slot int, m *matrix.Matrix) {
		logger.Debug("matrix released", "matrix", m.Name(), "slot", slot)
		met.ObserveEviction()
	}))
	if err != nil {
		return err
	}

	if cfg.Bootstrap {
		if err = bootstrap(reg, rng, cfg.DataDir); err != nil {
			return fmt.Errorf("bootstrap %s: %w", fixtureName, err)
		}
		logger.Info("fixture written", "matrix", fixtureName, "dir", cfg.DataDir)
	}

	d, err := command.New(reg, out,
		command.WithLogger(logger),
		command.WithMetrics(met),
		command.WithSource(rng),
		command.WithDataDir(cfg.DataDir),
	)
	if err != nil {
		return err
	}

	logger.Info("session started", "capacity", cfg.Capacity, "data_dir", cfg.DataDir)
	runErr := session.New(in, d, reg,
		session.WithPrompt(cfg.Prompt),
		session.WithOutput(out),
		session.WithLogger(logger),
	).Run()
	met.SetResident(reg.Len())

	if cfg.MetricsFile != "" {
		if err = met.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics not written", "err", err)
		}
	}

	return runErr
}

// bootstrap creates the fixture matrix, fills it from rng and writes it to dir.
func bootstrap(reg *registry.Registry, rng matrix.Source, dir string) error {
	m, err := matrix.New(fixtureName, fixtureDim, fixtureDim)
	if err != nil {
		return err
	}
	if err = matrix.Randomize(m, fixtureLo, fixtureHi, rng); err != nil {
		return err
	}
	if _, err = codec.WriteMatrix(filepath.Join(dir, fixtureName), m); err != nil {
		return err
	}
	_, err = reg.Insert(m)

	return err
}
