/*
 * json.go, part of gomol2.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/gomol2"
	v3 "github.com/rmera/gomol2/v3"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Atom is a ready-to-serialize container for an atom and its coordinates.
type Atom struct {
	ID      int
	Name    string
	Symbol  string
	Type    string
	Molid   int
	Molname string
	Charge  float64
	Coords  []float64
}

// Bond is a ready-to-serialize bond. At1 and At2 are atom IDs.
type Bond struct {
	ID    int
	At1   int
	At2   int
	Type  string
	Order float64
}

// Group is a ready-to-serialize substructure. Atoms holds atom IDs.
type Group struct {
	ID       string
	Name     string
	Formula  string
	Atoms    []int
	Position []float64
}

// Molecule is the JSON document written for each molecule.
type Molecule struct {
	Name       string
	MolType    string
	ChargeType string
	Formula    string
	Charge     int
	Atoms      []Atom
	Bonds      []Bond
	Groups     []Group
}

// An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InDecode      bool //If error, was it while decoding?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Molecule      int    //Which molecule?
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, molecule int, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "decode":
		jerr.InDecode = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Molecule = molecule
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

// FromChem builds the JSON document for mol, with the coordinates of the first frame.
func FromChem(mol *chem.Molecule) *Molecule {
	ret := &Molecule{
		Name:       mol.Name,
		MolType:    mol.MolType,
		ChargeType: mol.ChargeType,
		Formula:    mol.Formula(),
		Charge:     mol.Charge(),
		Atoms:      make([]Atom, 0, mol.Len()),
		Bonds:      make([]Bond, 0, len(mol.Bonds)),
		Groups:     make([]Group, 0, len(mol.Groups)),
	}
	for i, at := range mol.Atoms {
		a := Atom{ID: at.ID, Name: at.Name, Symbol: at.Symbol, Type: at.Type, Molid: at.Molid, Molname: at.Molname, Charge: at.Charge}
		if len(mol.Coords) > 0 {
			a.Coords = append([]float64(nil), mol.Coords[0].RawRowView(i)...)
		}
		ret.Atoms = append(ret.Atoms, a)
	}
	for _, b := range mol.Bonds {
		ret.Bonds = append(ret.Bonds, Bond{ID: b.ID, At1: b.At1.ID, At2: b.At2.ID, Type: b.Type, Order: b.Order})
	}
	for _, g := range mol.Groups {
		jg := Group{ID: g.ID, Name: g.Name, Formula: g.ChemicalFormula(), Atoms: make([]int, 0, len(g.Atoms))}
		for _, at := range g.Atoms {
			jg.Atoms = append(jg.Atoms, at.ID)
		}
		if g.Position != nil {
			jg.Position = append([]float64(nil), g.Position.RawRowView(0)...)
		}
		ret.Groups = append(ret.Groups, jg)
	}
	return ret
}

// ToChem builds a molecule from a JSON document.
func (J *Molecule) ToChem() (*chem.Molecule, error) {
	ats := make([]*chem.Atom, 0, len(J.Atoms))
	coords := make([]float64, 0, 3*len(J.Atoms))
	for _, a := range J.Atoms {
		if len(a.Coords) != 3 {
			return nil, fmt.Errorf("atom %d has %d coordinates", a.ID, len(a.Coords))
		}
		ats = append(ats, &chem.Atom{ID: a.ID, Name: a.Name, Symbol: a.Symbol, Type: a.Type, Molid: a.Molid, Molname: a.Molname, Charge: a.Charge, Mass: chem.SymbolMass(a.Symbol)})
		coords = append(coords, a.Coords...)
	}
	top, err := chem.NewTopology(ats, J.Charge)
	if err != nil {
		return nil, err
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	mol, err := chem.NewMolecule(J.Name, top, []*v3.Matrix{mcoords})
	if err != nil {
		return nil, err
	}
	mol.MolType, mol.ChargeType = J.MolType, J.ChargeType
	for i, b := range J.Bonds {
		at1, at2 := mol.AtomByID(b.At1), mol.AtomByID(b.At2)
		if at1 == nil || at2 == nil {
			return nil, fmt.Errorf("bond %d between atoms %d and %d, not in the molecule", b.ID, b.At1, b.At2)
		}
		mol.AddBond(&chem.Bond{ID: b.ID, Index: i, At1: at1, At2: at2, Type: b.Type, Order: b.Order})
	}
	for _, g := range J.Groups {
		gats := make([]*chem.Atom, 0, len(g.Atoms))
		for _, id := range g.Atoms {
			if at := mol.AtomByID(id); at != nil {
				gats = append(gats, at)
			}
		}
		var pos *v3.Matrix
		if len(g.Position) == 3 {
			pos, _ = v3.NewMatrix(append([]float64(nil), g.Position...))
		}
		mol.Groups = append(mol.Groups, chem.NewSGroup(g.ID, g.Name, pos, gats))
	}
	return mol, nil
}

// Encode writes one JSON document per molecule to out, one per line.
func Encode(out io.Writer, mols []*chem.Molecule) *Error {
	enc := json.NewEncoder(out)
	for i, m := range mols {
		if err := enc.Encode(FromChem(m)); err != nil {
			return NewError("postprocess", "Encode", i, err)
		}
	}
	return nil
}

// Decode reads the molecules written by Encode.
func Decode(stream *bufio.Reader) ([]*chem.Molecule, *Error) {
	var mols []*chem.Molecule
	dec := json.NewDecoder(stream)
	for i := 0; ; i++ {
		doc := new(Molecule)
		if err := dec.Decode(doc); err == io.EOF {
			break
		} else if err != nil {
			return nil, NewError("decode", "Decode", i, err)
		}
		mol, err := doc.ToChem()
		if err != nil {
			return nil, NewError("decode", "Decode", i, err)
		}
		mols = append(mols, mol)
	}
	return mols, nil
}

// Field returns the value at path (gjson syntax, i.e. "Groups.0.Formula" or
// "Atoms.#.Symbol") in the encoded document doc.
func Field(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}

// SetField returns a copy of the JSON document doc with value set at path
// (sjson syntax). Missing objects in the path are created.
func SetField(doc []byte, path string, value interface{}) ([]byte, *Error) {
	ret, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, NewError("postprocess", "SetField", -1, err)
	}
	return ret, nil
}
