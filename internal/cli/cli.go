// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the axisplot command-line interface.
//
// Commands:
//   - ticks: plan the ticks of a value range and print them as a table
//   - layout: lay out a configured chart and print it as JSON
//   - svg: lay out a configured chart and draw it
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// in the command context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kofi-q/axis-go/config"
)

const appName = "axisplot"

var version = "dev"

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing results to out and logs to
// errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Plan chart axis ticks and label layouts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTicksCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newSVGCmd())

	return root
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("using default config")
		cfg := config.Default()
		return &cfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}
