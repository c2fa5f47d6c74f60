/*
 * chem_test.go, part of gomol2.
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
	"errors"
	"testing"

	v3 "github.com/rmera/gomol2/v3"
)

func mkatoms(symbols ...string) []*Atom {
	ats := make([]*Atom, 0, len(symbols))
	for i, s := range symbols {
		ats = append(ats, &Atom{ID: i + 1, Name: s + "1", Symbol: s})
	}
	return ats
}

func TestFormula(Te *testing.T) {
	cases := []struct {
		symbols []string
		want    string
	}{
		{[]string{"O", "H", "C", "H", "H", "C", "H", "H", "H"}, "C2H6O"},
		{[]string{"H", "O", "H"}, "H2O"},
		{[]string{"S", "O", "O", "O", "O"}, "O4S"},
		{[]string{"Cl", "C", "Br", "H"}, "CHBrCl"},
		{[]string{"Na"}, "Na"},
		{nil, ""},
	}
	for _, c := range cases {
		f, n, q := Formula(mkatoms(c.symbols...))
		if f != c.want {
			Te.Errorf("Formula(%v) = %q, want %q", c.symbols, f, c.want)
		}
		if n != len(c.symbols) || q != 0 {
			Te.Errorf("Formula(%v): got %d atoms and charge %d", c.symbols, n, q)
		}
	}
}

func TestFormulaCharge(Te *testing.T) {
	ats := mkatoms("N", "H", "H", "H", "H")
	ats[0].Charge = 0.2
	for _, at := range ats[1:] {
		at.Charge = 0.2
	}
	_, _, q := Formula(ats)
	if q != 1 {
		Te.Errorf("Expected the partial charges to add up to 1, got %d", q)
	}
}

func TestSGroupFormula(Te *testing.T) {
	sulfate := mkatoms("S", "O", "O", "O", "O")
	cases := []struct {
		atoms  []*Atom
		charge int
		repeat int
		want   string
	}{
		{sulfate, -2, 1, "(O4S)^2-"},
		{sulfate, -2, 2, "2(O4S)^2-"},
		{sulfate, 0, 3, "3O4S"},
		{sulfate, 0, 1, "O4S"},
		{mkatoms("Na"), 1, 1, "Na^+"},
		{mkatoms("Na"), 1, 2, "2Na^+"},
		{mkatoms("Cl"), -1, 1, "Cl^-"},
		{mkatoms("Fe"), 3, 1, "Fe^3+"},
		{mkatoms("N", "H", "H", "H", "H"), 1, 1, "(H4N)^+"},
	}
	for _, c := range cases {
		g := NewSGroup("1", "grp", nil, c.atoms)
		g.Charge = c.charge
		if err := g.SetRepeat(c.repeat); err != nil {
			Te.Fatal(err)
		}
		if f := g.ChemicalFormula(); f != c.want {
			Te.Errorf("charge %d repeat %d: got %q want %q", c.charge, c.repeat, f, c.want)
		}
	}
}

func TestSGroupRepeat(Te *testing.T) {
	g := NewSGroup("1", "grp", nil, nil)
	if g.Repeat() != 1 {
		Te.Errorf("Default repeat should be 1, got %d", g.Repeat())
	}
	if err := g.SetRepeat(0); err == nil {
		Te.Error("A zero repeat count should be rejected")
	}
	if g.Repeat() != 1 {
		Te.Errorf("A rejected repeat count changed the group: %d", g.Repeat())
	}
}

func TestSGroupCenter(Te *testing.T) {
	ats := mkatoms("C", "O", "N")
	top, err := NewTopology(ats, 0)
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 2, 2, 2, 10, 10, 10})
	if err != nil {
		Te.Fatal(err)
	}
	g := NewSGroup("1", "CO", nil, top.Atoms[:2])
	if err := g.RebuildCenter(coords); err != nil || g.CentralPoint() != nil {
		Te.Errorf("A non-relative group should not have a center: %v %v", err, g.CentralPoint())
	}
	g.SetRelative()
	if err := g.RebuildCenter(coords); err != nil {
		Te.Fatal(err)
	}
	c := g.CentralPoint()
	for j := 0; j < 3; j++ {
		if c.At(0, j) != 1 {
			Te.Errorf("Wrong center: %v", c)
		}
	}
}

func TestMolecule(Te *testing.T) {
	ats := mkatoms("C", "O")
	top, err := NewTopology(ats, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := NewMolecule("co", top, []*v3.Matrix{v3.Zeros(3)}); err == nil {
		Te.Error("Expected an error for mismatched coordinates")
	}
	mol, err := NewMolecule("co", top, []*v3.Matrix{v3.Zeros(2)})
	if err != nil {
		Te.Fatal(err)
	}
	mol.AddBond(&Bond{ID: 1, At1: ats[0], At2: ats[1], Type: "2", Order: 2})
	if err := mol.Corrupted(); err != nil {
		Te.Error(err)
	}
	if mol.Formula() != "CO" {
		Te.Errorf("Wrong formula %q", mol.Formula())
	}
	if ats[0].Bonds[0].Cross(ats[0]) != ats[1] {
		Te.Error("Crossing the bond from C should give O")
	}
	if mol.AtomByID(2) != ats[1] || mol.AtomByID(7) != nil {
		Te.Error("AtomByID returned the wrong atom")
	}
}

func TestBondOrder(Te *testing.T) {
	cases := map[string]float64{"1": 1, "2": 2, "3": 3, "ar": 1.5, "am": 1, "du": 0, "un": 0, "nc": 0}
	for k, v := range cases {
		o, err := BondOrder(k)
		if err != nil || o != v {
			Te.Errorf("BondOrder(%q) = %v, %v; want %v", k, o, err, v)
		}
	}
	if _, err := BondOrder("7"); err == nil {
		Te.Error("Expected an error for bond type 7")
	}
}

func TestSymbolFromType(Te *testing.T) {
	cases := []struct{ typ, name, want string }{
		{"C.ar", "C1", "C"},
		{"N.pl3", "N7", "N"},
		{"Cl", "CL1", "Cl"},
		{"Du", "Cl2", "Cl"},
		{"Du", "CA", "C"},
		{"LP", "LP1", ""},
		{"Fe", "FE", "Fe"},
	}
	for _, c := range cases {
		if got := SymbolFromType(c.typ, c.name); got != c.want {
			Te.Errorf("SymbolFromType(%q, %q) = %q, want %q", c.typ, c.name, got, c.want)
		}
	}
}

func TestErrDecorate(Te *testing.T) {
	cause := errors.New("boom")
	err := errDecorate(cause, "Outer")
	if !errors.Is(err, cause) {
		Te.Error("The decorated error should wrap its cause")
	}
	ce, ok := err.(CError)
	if !ok {
		Te.Fatalf("Expected a CError, got %T", err)
	}
	err = errDecorate(ce, "Outermost")
	if d := err.(CError).Decorate(""); len(d) != 2 || d[1] != "Outermost" {
		Te.Errorf("Wrong decoration: %v", d)
	}
}
