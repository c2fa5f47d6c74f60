/*
 * formula.go, part of gomol2.
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

package chem

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Formula returns the formula for the atoms in ats, in Hill order (C, then H,
// then the rest alphabetically; all alphabetically if there is no carbon).
// It also returns the number of atoms considered and their total charge,
// which is the sum of the atomic (partial) charges, rounded to the nearest integer.
// Atoms without a symbol count for the number of atoms and the charge, but
// don't appear in the formula.
func Formula(ats []*Atom) (string, int, int) {
	counts := make(map[string]int)
	var charge float64
	for _, at := range ats {
		charge += at.Charge
		if at.Symbol == "" {
			continue
		}
		counts[at.Symbol]++
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	_, hasC := counts["C"]
	sort.Slice(symbols, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(symbols[i]), hillRank(symbols[j])
			if ri != rj {
				return ri < rj
			}
		}
		return symbols[i] < symbols[j]
	})
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return b.String(), len(ats), int(math.Round(charge))
}

func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}
