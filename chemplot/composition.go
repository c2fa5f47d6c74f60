/*
 * composition.go, part of gomol2.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemplot draws plots of the molecules read with gomol2.
package chemplot

import (
	"fmt"
	"sort"

	chem "github.com/rmera/gomol2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ElementCounts returns the element symbols present in mols, sorted, and the
// number of atoms of each element. Atoms without a symbol are counted as "?".
func ElementCounts(mols []*chem.Molecule) ([]string, plotter.Values) {
	counts := make(map[string]float64)
	for _, m := range mols {
		for _, at := range m.Atoms {
			s := at.Symbol
			if s == "" {
				s = "?"
			}
			counts[s]++
		}
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	values := make(plotter.Values, 0, len(symbols))
	for _, s := range symbols {
		values = append(values, counts[s])
	}
	return symbols, values
}

// CompositionPlot draws a bar chart with the number of atoms of each element
// in mols, and saves it to plotname. The format is given by the extension
// of plotname (png, svg, pdf...).
func CompositionPlot(mols []*chem.Molecule, title, plotname string) error {
	symbols, values := ElementCounts(mols)
	if len(values) == 0 {
		return fmt.Errorf("CompositionPlot: no atoms to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("CompositionPlot: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars, plotter.NewGrid())
	p.NominalX(symbols...)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return fmt.Errorf("CompositionPlot: %w", err)
	}
	return nil
}
