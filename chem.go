/*
 * chem.go, part of gomol2.
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

	v3 "github.com/rmera/gomol2/v3"
)

// Atom contains the information read for one atom, except for the coordinates,
// which will be in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int    //as read from the file
	Index   int    //position of the atom in its molecule, starting from 0
	Type    string //SYBYL atom type, i.e. C.ar, N.pl3
	Molname string //substructure (residue) name
	Molid   int    //substructure id
	Charge  float64
	Mass    float64
	Symbol  string
	Status  string //the optional status bit field of the ATOM record, unparsed
	Bonds   []*Bond
}

// Copy returns a copy of the Atom object. Bonds are not copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	newat := *A
	newat.Bonds = nil
	return &newat
}

/*****Topology type***/

// Topology contains the information about a molecule which is not coordinates.
type Topology struct {
	Atoms  []*Atom
	charge int
}

// NewTopology returns a topology with the atoms ats and the given total charge.
// It fills the Index field of each atom.
func NewTopology(ats []*Atom, charge int) (*Topology, error) {
	if ats == nil {
		return nil, CError{msg: "Supplied a nil atom slice", deco: []string{"NewTopology"}}
	}
	top := &Topology{Atoms: ats, charge: charge}
	top.FillIndexes()
	return top, nil
}

// Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

// SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// FillIndexes sets the Index field of each atom to its position in the topology.
func (T *Topology) FillIndexes() {
	for key, val := range T.Atoms {
		val.Index = key
	}
}

// AtomByID returns the atom with the given file ID, or nil if there is none.
func (T *Topology) AtomByID(id int) *Atom {
	for _, v := range T.Atoms {
		if v.ID == id {
			return v
		}
	}
	return nil
}

/**Type Molecule**/

// Molecule contains all the info for a molecule read from a MOL2 record.
type Molecule struct {
	*Topology
	Name       string
	MolType    string //SMALL, BIOPOLYMER, PROTEIN...
	ChargeType string //NO_CHARGES, GASTEIGER, USER_CHARGES...
	Coords     []*v3.Matrix
	Bonds      []*Bond
	Groups     []*SGroup
}

// NewMolecule makes a molecule with the topology ats and the coordinates coords.
// It checks that the number of vectors in each frame matches the number of atoms.
func NewMolecule(name string, ats *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil {
		return nil, CError{msg: "Supplied a nil Topology", deco: []string{"NewMolecule"}}
	}
	for i, c := range coords {
		if c == nil || c.NVecs() != ats.Len() {
			return nil, CError{msg: fmt.Sprintf("Frame %d doesn't have coordinates for the %d atoms", i, ats.Len()), deco: []string{"NewMolecule"}}
		}
	}
	return &Molecule{Topology: ats, Name: name, Coords: coords}, nil
}

// Coord returns a view of the coordinates of the atom i in the given frame.
func (M *Molecule) Coord(i, frame int) *v3.Matrix {
	return M.Coords[frame].VecView(i)
}

// AddBond registers the bond b in the molecule and in both of its atoms.
func (M *Molecule) AddBond(b *Bond) {
	b.At1.Bonds = append(b.At1.Bonds, b)
	b.At2.Bonds = append(b.At2.Bonds, b)
	M.Bonds = append(M.Bonds, b)
}

// Formula returns the chemical formula of the whole molecule, in Hill order.
func (M *Molecule) Formula() string {
	f, _, _ := Formula(M.Atoms)
	return f
}

// Corrupted checks that the molecule is consistent: every atom index in the
// right place and every bond pointing to atoms of the molecule.
func (M *Molecule) Corrupted() error {
	for i, at := range M.Atoms {
		if at.Index != i {
			return CError{msg: fmt.Sprintf("Atom %d has Index %d", i, at.Index), deco: []string{"Corrupted"}}
		}
	}
	for _, b := range M.Bonds {
		if b.At1 == nil || b.At2 == nil || b.At1.Index >= M.Len() || b.At2.Index >= M.Len() || M.Atoms[b.At1.Index] != b.At1 || M.Atoms[b.At2.Index] != b.At2 {
			return CError{msg: fmt.Sprintf("Bond %d points to atoms not in the molecule", b.ID), deco: []string{"Corrupted"}}
		}
	}
	return nil
}
