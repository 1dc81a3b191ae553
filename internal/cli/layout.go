// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var defaultLanguage = language.English

func newLayoutCmd() *cobra.Command {
	var (
		configPath string
		basicFont  bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out a chart's axes and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			plan := planChart(cmd.Context(), cfg, newMeasurer(basicFont))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "chart config file (TOML)")
	cmd.Flags().BoolVar(&basicFont, "basic-font", false, "measure with the fixed 7x13 bitmap font")
	return cmd
}
