/*
 * atomicdata.go, part of gomol2.
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
	"strings"
	"unicode"
)

// A map for assigning mass to elements.
// Note that just common "bio-elements" and the elements usual in
// drug-like MOL2 files are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"Li": 6.94,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"Mo": 95.95,
	"Sn": 118.71,
	"I":  126.90,
	"Be": 9.012,
}

// SYBYL types that don't correspond to an element.
var nonElementTypes = map[string]bool{
	"Du":  true, //dummy
	"LP":  true, //lone pair
	"Any": true,
	"Hal": true,
	"Het": true,
	"Hev": true,
}

// SymbolMass returns the mass for the element symbol, or 0 if the
// element is not in the table.
func SymbolMass(symbol string) float64 {
	return symbolMass[symbol]
}

// SymbolFromType guesses a chemical element symbol from a SYBYL atom type
// (the part before the dot, i.e. C.ar gives C). If the type is not an element,
// it tries the atom name. Returns the empty string if both fail.
func SymbolFromType(sybyl, name string) string {
	elem, _, _ := strings.Cut(sybyl, ".")
	if !nonElementTypes[elem] {
		if _, ok := symbolMass[elem]; ok {
			return elem
		}
	}
	return symbolFromName(name)
}

// symbolFromName tries the two-letter symbol only when the name itself
// looks like one (Cl1, Br), so that CA is a carbon, not calcium.
func symbolFromName(name string) string {
	name = strings.TrimLeftFunc(name, unicode.IsDigit)
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return ""
	}
	first := strings.ToUpper(name[:1])
	if len(name) > 1 && unicode.IsLower(rune(name[1])) {
		if _, ok := symbolMass[first+name[1:2]]; ok {
			return first + name[1:2]
		}
	}
	if _, ok := symbolMass[first]; ok {
		return first
	}
	return ""
}
