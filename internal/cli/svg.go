// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kofi-q/axis-go/internal/svg"
)

func newSVGCmd() *cobra.Command {
	var (
		configPath string
		output     string
		basicFont  bool
	)

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Lay out a chart's axes and draw them as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx, configPath)
			if err != nil {
				return err
			}
			plan := planChart(ctx, cfg, newMeasurer(basicFont))

			if output == "" || output == "-" {
				return writeFrame(cmd.OutOrStdout(), plan.frame())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := writeFrameFile(f, plan.frame()); err != nil {
				return err
			}
			loggerFromContext(ctx).Info("wrote chart", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "chart config file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	cmd.Flags().BoolVar(&basicFont, "basic-font", false, "measure with the fixed 7x13 bitmap font")
	return cmd
}

func writeFrame(w io.Writer, f *svg.Frame) error {
	if err := svg.Write(w, f); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// writeFrameFile writes f to wc and closes it. Close errors are returned.
func writeFrameFile(wc io.WriteCloser, f *svg.Frame) error {
	if err := writeFrame(wc, f); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
