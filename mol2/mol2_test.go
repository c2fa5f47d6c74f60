/*
 * mol2_test.go, part of gomol2.
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

package mol2

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const ethanol = `@<TRIPOS>MOLECULE
ethanol
 9 8 1 0 0
SMALL
GASTEIGER

@<TRIPOS>ATOM
      1 C1          0.0000    0.0000    0.0000 C.3     1  ETH1       -0.0400
      2 C2          1.5200    0.0000    0.0000 C.3     1  ETH1        0.0500
      3 O1          2.0000    1.3400    0.0000 O.3     1  ETH1       -0.3900
      4 H1         -0.3600   -1.0200    0.0000 H       1  ETH1        0.0300
      5 H2         -0.3600    0.5100    0.8800 H       1  ETH1        0.0300
      6 H3         -0.3600    0.5100   -0.8800 H       1  ETH1        0.0300
      7 H4          1.8800   -0.5100    0.8800 H       1  ETH1        0.0400
      8 H5          1.8800   -0.5100   -0.8800 H       1  ETH1        0.0400
      9 H6          2.9600    1.3400    0.0000 H       1  ETH1        0.2100
@<TRIPOS>BOND
     1     1     2    1
     2     2     3    1
     3     1     4    1
     4     1     5    1
     5     1     6    1
     6     2     7    1
     7     2     8    1
     8     3     9    1
@<TRIPOS>SUBSTRUCTURE
     1 ETH1        1 GROUP             0 ****  ****    0
`

const salt = `@<TRIPOS>MOLECULE
salt
 2 0 2
SMALL
USER_CHARGES
@<TRIPOS>ATOM
      1 NA          0.0000    0.0000    0.0000 Na      1  NA1         1.0000
      2 CL          2.8000    0.0000    0.0000 Cl      2  CL2        -1.0000
@<TRIPOS>SUBSTRUCTURE
     1 NA1         1
     2 CL2         2
`

func TestReadHeaders(Te *testing.T) {
	mols, err := ReadString(ethanol + salt)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("Expected 2 molecules, got %d", len(mols))
	}
	eth := mols[0]
	if eth.Name != "ethanol" || eth.MolType != "SMALL" || eth.ChargeType != "GASTEIGER" {
		Te.Errorf("Wrong MOLECULE section data: %q %q %q", eth.Name, eth.MolType, eth.ChargeType)
	}
	if eth.Len() != 9 || len(eth.Bonds) != 8 {
		Te.Errorf("Expected 9 atoms and 8 bonds, got %d and %d", eth.Len(), len(eth.Bonds))
	}
	if f := eth.Formula(); f != "C2H6O" {
		Te.Errorf("Wrong formula %q", f)
	}
	if eth.Charge() != 0 {
		Te.Errorf("Wrong charge %d", eth.Charge())
	}
	if err := eth.Corrupted(); err != nil {
		Te.Error(err)
	}
	o := eth.Atom(2)
	if o.Symbol != "O" || o.Type != "O.3" || o.Molname != "ETH1" || o.Charge != -0.39 || len(o.Bonds) != 2 {
		Te.Errorf("Wrong oxygen: %+v", o)
	}
	if x := eth.Coords[0].At(2, 1); x != 1.34 {
		Te.Errorf("Wrong coordinate %v", x)
	}
	if len(eth.Groups) != 1 || eth.Groups[0].Name != "ETH1" || len(eth.Groups[0].Atoms) != 9 {
		Te.Errorf("Wrong groups %+v", eth.Groups)
	}
	s := mols[1]
	if s.Name != "salt" || s.Formula() != "ClNa" || len(s.Bonds) != 0 {
		Te.Errorf("Wrong salt: %q %q %d", s.Name, s.Formula(), len(s.Bonds))
	}
	if len(s.Groups) != 2 {
		Te.Fatalf("Expected 2 groups, got %d", len(s.Groups))
	}
	if f := s.Groups[0].ChemicalFormula(); f != "Na^+" {
		Te.Errorf("Wrong formula for the cation: %q", f)
	}
	if f := s.Groups[1].ChemicalFormula(); f != "Cl^-" {
		Te.Errorf("Wrong formula for the anion: %q", f)
	}
	if x := s.Groups[1].Position.At(0, 0); x != 2.8 {
		Te.Errorf("The group should be placed on its root atom, got x=%v", x)
	}
}

func TestReadBoundaries(Te *testing.T) {
	text := "@<TRIPOS>MOLECULE>\n" + ethanol + "@<TRIPOS>MOLECULE>\n" + salt
	mols, err := ReadString(text)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 || mols[0].Name != "ethanol" || mols[1].Name != "salt" {
		Te.Fatalf("Wrong molecules read: %d", len(mols))
	}
}

func TestReadBoundariesWithoutHeaders(Te *testing.T) {
	text := strings.Join([]string{
		"@<TRIPOS>MOLECULE>",
		"NAME1",
		"@<TRIPOS>ATOM",
		"1 C1 0 0 0 C.3",
		"@<TRIPOS>MOLECULE>",
		"NAME2",
		"@<TRIPOS>ATOM",
		"1 N1 1 1 1 N.3",
		"",
	}, "\n")
	mols, err := ReadString(text)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("Expected 2 molecules, got %d", len(mols))
	}
	for i, want := range []string{"NAME1", "NAME2"} {
		if mols[i].Name != want || mols[i].Len() != 1 {
			Te.Errorf("Molecule %d: name %q with %d atoms", i, mols[i].Name, mols[i].Len())
		}
	}
	if mols[1].Atom(0).Symbol != "N" || len(mols[1].Groups) != 1 {
		Te.Errorf("Wrong second molecule: %+v", mols[1].Atom(0))
	}
}

func TestReadCRLF(Te *testing.T) {
	mols, err := ReadString(strings.ReplaceAll(ethanol, "\n", "\r\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 1 || mols[0].Len() != 9 || mols[0].Atom(8).Name != "H6" {
		Te.Error("CRLF text was not read as the LF one")
	}
}

func TestRead(Te *testing.T) {
	mols, err := Read(strings.NewReader(salt))
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 1 || mols[0].Len() != 2 {
		Te.Errorf("Wrong molecules read from a reader")
	}
}

func TestReadErrors(Te *testing.T) {
	cases := []struct {
		name  string
		text  string
		cause error
		line  int
	}{
		{"no atoms", "@<TRIPOS>MOLECULE\nnothing\n 0 0\nSMALL\n", ErrNoAtoms, 1},
		{"count", strings.Replace(salt, " 2 0 2", " 3 0 2", 1), ErrCount, 1},
		{"coordinate", "@<TRIPOS>MOLECULE\nbad\n 2 1\nSMALL\nNO_CHARGES\n@<TRIPOS>ATOM\n1 C1 0.0 0.0 0.0 C.3\n2 O1 1.2 x 0.0 O.2\n", ErrFormat, 8},
		{"bond atom", strings.Replace(ethanol, "     8     3     9    1", "     8     3    19    1", 1), ErrFormat, 25},
		{"short row", "@<TRIPOS>MOLECULE\nbad\n 1\nSMALL\nNO_CHARGES\n@<TRIPOS>ATOM\n1 C1 0.0 0.0\n", ErrFormat, 7},
	}
	for _, c := range cases {
		_, err := ReadString(c.text)
		if !errors.Is(err, c.cause) {
			Te.Errorf("%s: expected %v, got %v", c.name, c.cause, err)
			continue
		}
		var merr Error
		if !errors.As(err, &merr) {
			Te.Errorf("%s: expected a mol2.Error, got %T", c.name, err)
			continue
		}
		if merr.Line() != c.line {
			Te.Errorf("%s: error reported at line %d, want %d (%v)", c.name, merr.Line(), c.line, err)
		}
	}
}

func TestUnknownBondType(Te *testing.T) {
	mols, err := ReadString(strings.Replace(ethanol, "     8     3     9    1", "     8     3     9    9", 1))
	if err != nil {
		Te.Fatal(err)
	}
	b := mols[0].Bonds[7]
	if b.Type != "9" || b.Order != 0 {
		Te.Errorf("An unknown bond type should be kept with order 0: %q %v", b.Type, b.Order)
	}
}

func TestReadConc(Te *testing.T) {
	text := ethanol + salt + ethanol + salt
	want, err := ReadString(text)
	if err != nil {
		Te.Fatal(err)
	}
	got, err := ReadConc(context.Background(), text, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != len(want) {
		Te.Fatalf("ReadConc read %d molecules, ReadString %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Name != want[i].Name || got[i].Formula() != want[i].Formula() {
			Te.Errorf("Molecule %d differs: %q %q", i, got[i].Name, want[i].Name)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadConc(ctx, text, 1); !errors.Is(err, context.Canceled) {
		Te.Errorf("Expected a cancelled read, got %v", err)
	}
}

func TestReadLayouts(Te *testing.T) {
	const B = CompoundBoundary + "\n"
	cases := []struct {
		name     string
		text     string
		names    []string
		formulas []string
	}{
		{"record before the first boundary", ethanol + B + salt, []string{"ethanol", "salt"}, []string{"C2H6O", "ClNa"}},
		{"short last compound", strings.Join([]string{
			CompoundBoundary,
			"NAME1",
			"@<TRIPOS>ATOM",
			"1 C1 0 0 0 C.3",
			CompoundBoundary,
			"@<TRIPOS>ATOM",
			"1 N1 1 1 1 N.3",
		}, "\n"), []string{"NAME1", ""}, []string{"C", "N"}},
		{"boundaries and headers", B + ethanol + salt + B + ethanol, []string{"ethanol", "salt", "ethanol"}, []string{"C2H6O", "ClNa", "C2H6O"}},
		{"trailing boundary", ethanol + B, []string{"ethanol"}, []string{"C2H6O"}},
		{"boundary on the last line", ethanol + CompoundBoundary, []string{"ethanol"}, []string{"C2H6O"}},
		{"consecutive boundaries", B + B + salt, []string{"salt"}, []string{"ClNa"}},
	}
	for _, c := range cases {
		mols, err := ReadString(c.text)
		if err != nil {
			Te.Errorf("%s: %v", c.name, err)
			continue
		}
		if len(mols) != len(c.names) {
			Te.Errorf("%s: expected %d molecules, got %d", c.name, len(c.names), len(mols))
			continue
		}
		for i, m := range mols {
			if m.Name != c.names[i] || m.Formula() != c.formulas[i] {
				Te.Errorf("%s: molecule %d is %q %s, want %q %s", c.name, i, m.Name, m.Formula(), c.names[i], c.formulas[i])
			}
		}
	}
}

func TestReadTrailingCompoundWithoutAtoms(Te *testing.T) {
	_, err := ReadString(ethanol + CompoundBoundary + "\njunk\nmore\n")
	if !errors.Is(err, ErrNoAtoms) {
		Te.Fatalf("Expected ErrNoAtoms, got %v", err)
	}
	var merr Error
	if !errors.As(err, &merr) || merr.Line() != 29 {
		Te.Errorf("Error should point to line 29: %v", err)
	}
}

func TestReadConcFirstError(Te *testing.T) {
	const B = CompoundBoundary + "\n"
	text := salt + B + strings.Replace(salt, " 2 0 2", " 3 0 2", 1) + B + "@<TRIPOS>MOLECULE\nnothing\n 0 0\nSMALL\n"
	if _, err := ReadString(text); !errors.Is(err, ErrCount) {
		Te.Fatalf("ReadString: expected ErrCount, got %v", err)
	}
	for i := 0; i < 20; i++ {
		if _, err := ReadConc(context.Background(), text, 0); !errors.Is(err, ErrCount) {
			Te.Fatalf("ReadConc: expected the error of the first bad compound, got %v", err)
		}
	}
}
