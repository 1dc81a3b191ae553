// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"

	"github.com/kofi-q/axis-go"
	"github.com/kofi-q/axis-go/config"
	"github.com/kofi-q/axis-go/internal/svg"
	"github.com/kofi-q/axis-go/metrics"
)

type axisPlan struct {
	Ticks   axis.TickSet      `json:"ticks"`
	Metrics axis.LabelMetrics `json:"metrics"`
	svg.AxisFrame
}

type chartPlan struct {
	Width   float32       `json:"width"`
	Height  float32       `json:"height"`
	Content axis.RectType `json:"content"`
	X       axisPlan      `json:"x"`
	Y       axisPlan      `json:"y"`
}

func (p *chartPlan) frame() *svg.Frame {
	return &svg.Frame{
		Width:   p.Width,
		Height:  p.Height,
		Content: p.Content,
		Axes:    []svg.AxisFrame{p.X.AxisFrame, p.Y.AxisFrame},
	}
}

// newMeasurer returns the Go fonts, or the fixed 7x13 bitmap face when
// basic is set.
func newMeasurer(basic bool) axis.Measurer {
	if basic {
		return metrics.NewFaceSet()
	}
	return metrics.NewGoFaceSet()
}

// planChart lays out both axes of cfg.
func planChart(ctx context.Context, cfg *config.Config, m axis.Measurer) *chartPlan {
	logger := loggerFromContext(ctx)

	vp, trans := cfg.Viewport()
	xa, ya := cfg.XAxis(), cfg.YAxis()

	xr := axis.NewXRenderer(vp, trans, m, xa)
	xr.ComputeAxis(cfg.X.Min, cfg.X.Max, false)
	yr := axis.NewYRenderer(vp, trans, m, ya)
	yr.ComputeAxis(cfg.Y.Min, cfg.Y.Max, cfg.Y.Inverted)

	hs := make([]axis.Highlight, len(cfg.Highlights))
	for i, h := range cfg.Highlights {
		p := trans.PixelForValues(h.X, h.Y)
		hs[i] = axis.Highlight{X: h.X, Y: h.Y, DrawX: p.X, DrawY: p.Y}
	}

	plan := &chartPlan{
		Width:   vp.ChartWidth(),
		Height:  vp.ChartHeight(),
		Content: vp.ContentRect(),
		X: axisPlan{
			Ticks:   xr.Ticks(),
			Metrics: xr.LabelMetrics(),
			AxisFrame: svg.AxisFrame{
				Font:          xa.Font,
				Labels:        xr.LayoutLabels(),
				Grid:          xr.LayoutGridLines(),
				AxisLines:     xr.LayoutAxisLine(),
				AxisLineWidth: xa.AxisLineWidth,
				LimitLines:    xr.LayoutLimitLines(),
				Highlights:    xr.LayoutHighlights(hs),
			},
		},
		Y: axisPlan{
			Ticks:   yr.Ticks(),
			Metrics: yr.LabelMetrics(),
			AxisFrame: svg.AxisFrame{
				Font:          ya.Font,
				Labels:        yr.LayoutLabels(),
				Grid:          yr.LayoutGridLines(),
				AxisLines:     yr.LayoutAxisLine(),
				AxisLineWidth: ya.AxisLineWidth,
				LimitLines:    yr.LayoutLimitLines(),
				Highlights:    yr.LayoutHighlights(hs),
			},
		},
	}
	if line, clip, ok := yr.LayoutZeroLine(); ok {
		plan.Y.ZeroLine = &line
		plan.Y.ZeroLineClip = clip
		plan.Y.ZeroLineWidth = ya.ZeroLineWidth
	}

	for _, a := range []struct {
		name string
		plan *axisPlan
		rng  config.Axis
	}{
		{"x", &plan.X, cfg.X},
		{"y", &plan.Y, cfg.Y},
	} {
		if a.plan.Ticks.Empty() {
			logger.Debug("no ticks", "axis", a.name, "min", a.rng.Min, "max", a.rng.Max)
			continue
		}
		logger.Debug("laid out axis",
			"axis", a.name,
			"ticks", a.plan.Ticks.Len(),
			"interval", a.plan.Ticks.Interval,
			"labels", len(a.plan.Labels),
		)
	}
	return plan
}
