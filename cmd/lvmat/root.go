// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strings"

	"github.com/katalvlaran/lvmat/command"
	"github.com/katalvlaran/lvmat/config"
	"github.com/katalvlaran/lvmat/session"
	"github.com/spf13/cobra"
)

// flagValues mirrors the command-line flags. Only flags the user set
// override the loaded configuration.
type flagValues struct {
	configPath  string
	dataDir     string
	capacity    int
	seed        int64
	logLevel    string
	bootstrap   bool
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "lvmat",
		Short: "Interactive shell for named uint32 matrices",
		Long: "lvmat reads one command per line and keeps up to --capacity matrices in memory,\n" +
			"evicting the oldest slot when full.\n\nCommands:\n  " +
			strings.Join(command.Usage(), "\n  ") + "\n  exit",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}

			return run(cfg, session.NewReader(cfg.History), os.Stdout, os.Stderr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "lvmat.yaml", "YAML config file (ignored when missing)")
	f.StringVarP(&fv.dataDir, "data-dir", "d", "", "directory for matrix files")
	f.IntVar(&fv.capacity, "capacity", 0, "number of registry slots")
	f.Int64Var(&fv.seed, "seed", 0, "random seed (0 draws one)")
	f.StringVar(&fv.logLevel, "log-level", "", "debug, info, warn or error")
	f.BoolVar(&fv.bootstrap, "bootstrap", false, "create, randomize and write temp_mat at startup")
	f.StringVar(&fv.metricsFile, "metrics-file", "", "write Prometheus metrics to this file at exit")

	return cmd
}

// resolveConfig loads file and environment layers, then applies set flags.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("data-dir") {
		cfg.DataDir = fv.dataDir
	}
	if f.Changed("capacity") {
		cfg.Capacity = fv.capacity
	}
	if f.Changed("seed") {
		cfg.Seed = fv.seed
	}
	if f.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if f.Changed("bootstrap") {
		cfg.Bootstrap = fv.bootstrap
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = fv.metricsFile
	}

	return cfg, cfg.Validate()
}
