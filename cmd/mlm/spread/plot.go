// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package spread

import (
	"fmt"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/mlm/migration"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MakePlot saves a stacked bar chart
// with the local weight,
// the root weight,
// and the weight from each source region.
func makePlot(s migration.Stats) error {
	p := plot.New()
	p.Y.Label.Text = "weight"
	p.Legend.Top = true

	regions := s.Regions()
	p.NominalX(regions...)

	w := vg.Points(20)
	var prev *plotter.BarChart
	add := func(vals plotter.Values, c color.Color, label string) error {
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = c
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(label, bars)
		prev = bars
		return nil
	}

	local := make(plotter.Values, len(regions))
	origin := make(plotter.Values, len(regions))
	for i, r := range regions {
		local[i] = s[r].Local
		origin[i] = s[r].Origin
	}
	if err := add(local, color.Gray{160}, "local"); err != nil {
		return err
	}
	if err := add(origin, color.Gray{80}, "root"); err != nil {
		return err
	}

	for i, src := range regions {
		vals := make(plotter.Values, len(regions))
		var sum float64
		for j, r := range regions {
			vals[j] = s[r].Sources[src]
			sum += vals[j]
		}
		if sum == 0 {
			continue
		}
		v := 0.0
		if len(regions) > 1 {
			v = float64(i) / float64(len(regions)-1)
		}
		if err := add(vals, blind.Sequential(blind.Iridescent, v), "from "+src); err != nil {
			return err
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
