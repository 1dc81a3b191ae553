// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kofi-q/axis-go"
)

type ticksOptions struct {
	min, max    float64
	labeling    axis.Labeling
	granularity float64
}

func newTicksCmd() *cobra.Command {
	opts := ticksOptions{
		labeling: axis.Labeling{LabelCount: 6},
	}

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Plan the ticks of a value range",
		Example: `  axisplot ticks --min 0 --max 100 --count 6
  axisplot ticks --min 0.03 --max 0.97 --count 4 --center`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.granularity > 0 {
				opts.labeling.GranularityEnabled = true
				opts.labeling.Granularity = float32(opts.granularity)
			}
			r := axis.Range{Min: float32(opts.min), Max: float32(opts.max)}
			if !r.Valid() {
				return fmt.Errorf("invalid range [%g, %g]", opts.min, opts.max)
			}

			ts := axis.ComputeTicks(r, opts.labeling)
			loggerFromContext(cmd.Context()).Debug("planned ticks",
				"min", r.Min,
				"max", r.Max,
				"count", ts.Len(),
				"interval", ts.Interval,
			)

			fmt.Fprintln(cmd.OutOrStdout(), renderTicks(ts, nil))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.min, "min", 0, "range minimum")
	f.Float64Var(&opts.max, "max", 100, "range maximum")
	f.IntVarP(&opts.labeling.LabelCount, "count", "n", opts.labeling.LabelCount, "desired label count")
	f.Float64Var(&opts.granularity, "granularity", 0, "smallest interval, 0 to disable")
	f.BoolVar(&opts.labeling.ForceLabels, "force", false, "emit exactly count evenly spaced ticks")
	f.BoolVar(&opts.labeling.CenterLabels, "center", false, "center labels between grid lines")
	f.BoolVar(&opts.labeling.AnchorAtMin, "anchor-min", false, "step from min instead of interval multiples")
	f.BoolVar(&opts.labeling.ExtendPastMax, "extend", false, "add the first tick past max")

	return cmd
}

// renderTicks formats ts as a table. A nil formatter uses the default
// grouping formatter.
func renderTicks(ts axis.TickSet, fm axis.ValueFormatter) string {
	if ts.Empty() {
		return styleDim.Render("no ticks")
	}
	if fm == nil {
		fm = axis.NewGroupingFormatter(defaultLanguage)
	}

	headers := []string{"#", "value", "label"}
	centered := len(ts.Centered) == ts.Len()
	if centered {
		headers = append(headers, "centered")
	}

	rows := make([][]string, ts.Len())
	for i, v := range ts.Entries {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(v), 'g', -1, 32),
			fm.FormatValue(v, ts.Decimals),
		}
		if centered {
			row = append(row, fm.FormatValue(ts.Centered[i], ts.Decimals))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleCell
			}
			return styleNumber.Padding(0, 1)
		})

	summary := styleDim.Render(fmt.Sprintf(
		"interval %s, %d decimals",
		strconv.FormatFloat(ts.Interval, 'g', -1, 64),
		ts.Decimals,
	))
	return t.String() + "\n" + summary
}
