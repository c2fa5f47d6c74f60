/*
 * sgroup.go, part of gomol2.
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

	v3 "github.com/rmera/gomol2/v3"
)

// SGroup is a group of atoms of a molecule, i.e. a substructure from the
// SUBSTRUCTURE section of a MOL2 record.
type SGroup struct {
	ID       string
	Name     string
	Position *v3.Matrix //registered coordinates, one vector
	Atoms    []*Atom
	Charge   int //the charge of the group itself, added to that of its atoms
	repeat   int //how many times the group is repeated, always > 0
	center   *v3.Matrix
}

// NewSGroup returns a group with the given atoms. If position is nil, the
// group is placed at the origin.
func NewSGroup(id, name string, position *v3.Matrix, atoms []*Atom) *SGroup {
	if position == nil {
		position = v3.Zeros(1)
	}
	if atoms == nil {
		atoms = []*Atom{}
	}
	return &SGroup{ID: id, Name: name, Position: position, Atoms: atoms, repeat: 1}
}

// Repeat returns the number of times the group is repeated.
func (S *SGroup) Repeat() int {
	return S.repeat
}

// SetRepeat sets the number of times the group is repeated. It must be positive.
func (S *SGroup) SetRepeat(n int) error {
	if n < 1 {
		return CError{msg: fmt.Sprintf("Repeat count must be positive, got %d", n), deco: []string{"SetRepeat"}}
	}
	S.repeat = n
	return nil
}

// SetRelative makes the group keep a central point, which is computed on
// RebuildCenter.
func (S *SGroup) SetRelative() {
	if S.center == nil {
		S.center = v3.Zeros(1)
	}
}

// CentralPoint returns the central point of the group, or nil if the group is
// not relative.
func (S *SGroup) CentralPoint() *v3.Matrix {
	return S.center
}

// RebuildCenter sets the central point of a relative group to the center of
// the box containing all its atoms. coords must hold the coordinates for the
// whole molecule, indexed by atom Index. Does nothing for non-relative groups.
func (S *SGroup) RebuildCenter(coords *v3.Matrix) error {
	if S.center == nil || len(S.Atoms) == 0 {
		return nil
	}
	indexes := make([]int, 0, len(S.Atoms))
	for _, at := range S.Atoms {
		indexes = append(indexes, at.Index)
	}
	sub, err := coords.SomeVecs(indexes)
	if err != nil {
		return errDecorate(err, "RebuildCenter")
	}
	S.center.Copy(sub.BoxCenter())
	return nil
}

// ChemicalFormula returns the formula of the group, with the repeat count
// and the total charge (that of the group plus that of its atoms).
// A charged group with more than one atom is parenthesized, i.e. 2(SO4)^2-.
func (S *SGroup) ChemicalFormula() string {
	formula, natoms, calcCharge := Formula(S.Atoms)
	charge := S.Charge + calcCharge
	rep := strconv.Itoa(S.repeat)
	if charge == 0 {
		if S.repeat > 1 {
			formula = rep + formula
		}
		return formula
	}
	switch {
	case S.repeat > 1 && natoms > 1:
		formula = rep + "(" + formula + ")"
	case S.repeat > 1:
		formula = rep + formula
	case natoms > 1:
		formula = "(" + formula + ")"
	}
	switch {
	case charge > 1:
		formula += "^" + strconv.Itoa(charge) + "+"
	case charge == 1:
		formula += "^+"
	case charge < -1:
		formula += "^" + strconv.Itoa(-charge) + "-"
	default:
		formula += "^-"
	}
	return formula
}
