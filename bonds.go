/*
 * bonds.go, part of gomol2.
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
	"fmt"
	"strconv"
)

// Bond is a bond between two atoms, as given in the BOND section of a MOL2 record.
type Bond struct {
	ID    int //as read from the file
	Index int
	At1   *Atom
	At2   *Atom
	Type  string  //the MOL2 bond type: 1, 2, 3, am, ar, du, un, nc
	Order float64 //Order 0 means undetermined
}

// BondOrder translates a MOL2 bond type into a bond order. Aromatic
// bonds get 1.5, amide bonds 1. Dummy, unknown and not-connected bonds get 0.
// It returns an error only if the type is not one of the types known.
func BondOrder(btype string) (float64, error) {
	switch btype {
	case "ar":
		return 1.5, nil
	case "am":
		return 1, nil
	case "du", "un", "nc":
		return 0, nil
	}
	o, err := strconv.Atoi(btype)
	if err != nil || o < 1 || o > 3 {
		return 0, CError{msg: fmt.Sprintf("Unknown bond type %q", btype), deco: []string{"BondOrder"}}
	}
	return float64(o), nil
}

// Cross returns the atom bonded to origin through B. Panics if origin is not
// part of the bond.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}
