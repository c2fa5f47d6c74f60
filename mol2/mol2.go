/*
 * mol2.go, part of gomol2.
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
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	chem "github.com/rmera/gomol2"
	v3 "github.com/rmera/gomol2/v3"
)

// compound is the range of lines of one molecule record.
type compound struct {
	first int //index in the file of lines[0]
	lines []string
}

// Read reads all the MOL2 records from r.
func Read(r io.Reader) ([]*chem.Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errDecorate(newError(err, "", 0, "io.ReadAll"), "Read", "")
	}
	mols, err := ReadString(string(data))
	return mols, errDecorate(err, "Read", "")
}

// ReadString reads all the MOL2 records in text.
func ReadString(text string) ([]*chem.Molecule, error) {
	comps := split(NewCursor(text))
	mols := make([]*chem.Molecule, 0, len(comps))
	for _, c := range comps {
		mol, err := parseCompound(newCursorLines(c.lines), c.first)
		if err != nil {
			return nil, errDecorate(err, "ReadString", "")
		}
		mols = append(mols, mol)
	}
	return mols, nil
}

// split divides the text of C in compounds. If the text has compound boundary
// lines, each compound goes from the line after a boundary to the line before
// the next one. Text before the first boundary is a compound only if it has a
// MOLECULE or ATOM header, and compounds with only blank lines are dropped.
// Two MOLECULE headers inside one of those ranges split it again. If there are
// no boundaries, each MOLECULE header starts a compound. If there are no
// headers either, the whole text is one compound.
func split(C *Cursor) []compound {
	if bounds := boundaryLines(C); len(bounds) > 0 {
		return splitAt(C, bounds)
	}
	starts := headerStarts(C)
	if len(starts) == 0 {
		return []compound{{first: 0, lines: C.Lines(0, C.Len())}}
	}
	comps := make([]compound, 0, len(starts))
	for i, s := range starts {
		end := C.Len()
		if i < len(starts)-1 {
			end = starts[i+1]
		}
		comps = append(comps, compound{first: s, lines: C.Lines(s, end)})
	}
	return comps
}

// splitAt returns the compounds delimited by the boundary lines in bounds.
func splitAt(C *Cursor, bounds []int) []compound {
	comps := make([]compound, 0, len(bounds)+1)
	if lead := C.Lines(0, bounds[0]); hasHeader(lead, "MOLECULE") || hasHeader(lead, "ATOM") {
		comps = append(comps, byHeaders(compound{first: 0, lines: lead})...)
	}
	for i, b := range bounds {
		end := C.Len()
		if i < len(bounds)-1 {
			end = bounds[i+1]
		}
		lines := C.Lines(b+1, end)
		if blank(lines) {
			continue
		}
		comps = append(comps, byHeaders(compound{first: b + 1, lines: lines})...)
	}
	return comps
}

// byHeaders splits c again at its second and later MOLECULE headers, for
// records that were not separated by boundary lines.
func byHeaders(c compound) []compound {
	starts := headerStarts(newCursorLines(c.lines))
	if len(starts) < 2 {
		return []compound{c}
	}
	starts[0] = 0
	comps := make([]compound, 0, len(starts))
	for i, s := range starts {
		end := len(c.lines)
		if i < len(starts)-1 {
			end = starts[i+1]
		}
		comps = append(comps, compound{first: c.first + s, lines: c.lines[s:end]})
	}
	return comps
}

// boundaryLines returns the indexes of all the compound boundary lines of C.
// NextCompound leaves the cursor anchored after the boundary, or on it when the
// boundary is the last line.
func boundaryLines(C *Cursor) []int {
	var bounds []int
	C.SetStart(0)
	for {
		C.NextCompound()
		a := C.Anchor()
		last := -1
		if len(bounds) > 0 {
			last = bounds[len(bounds)-1]
		}
		b := -1
		if prev, _ := C.Line(a - 1); a-1 > last && strings.TrimSpace(prev) == CompoundBoundary {
			b = a - 1
		} else if l, _ := C.Line(a); a > last && a == C.Len()-1 && strings.TrimSpace(l) == CompoundBoundary {
			b = a
		}
		if b < 0 {
			break
		}
		bounds = append(bounds, b)
	}
	return bounds
}

func hasHeader(lines []string, tag string) bool {
	for _, l := range lines {
		if found(l, tag) {
			return true
		}
	}
	return false
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func headerStarts(C *Cursor) []int {
	var starts []int
	C.SetStart(0)
	for {
		line, _ := C.FindHeader("MOLECULE")
		p := C.Position()
		if !strings.Contains(line, HeaderPrefix+"MOLECULE") || (len(starts) > 0 && p <= starts[len(starts)-1]) {
			break
		}
		starts = append(starts, p)
		C.SetStart(p + 1)
	}
	return starts
}

// isSection returns true if the line is a section header. Those end the
// row loops.
func isSection(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), HeaderPrefix)
}

// unset returns the trimmed field, or "" if it is the MOL2 placeholder for
// an empty string.
func unset(field string) string {
	field = strings.TrimSpace(field)
	if field == empty {
		return ""
	}
	return field
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// found returns true if the line returned by the cursor is really the header for tag,
// and not the anchor line it falls back to.
func found(line, tag string) bool {
	return strings.Contains(line, HeaderPrefix+tag)
}

// rows calls f with each data line that follows the current position of C, until
// the next section header, an empty line, or the end of the text. Comments are skipped.
func rows(C *Cursor, f func(line string) error) error {
	for line, ok := C.Next(); ok && !isSection(line); line, ok = C.Next() {
		if strings.TrimSpace(line) == "" {
			break
		}
		if isComment(line) {
			continue
		}
		if err := f(line); err != nil {
			return err
		}
	}
	return nil
}

// header holds the data of the MOLECULE section.
type header struct {
	name       string
	natoms     int //-1 if not given
	nbonds     int
	moltype    string
	chargetype string
}

// parseHeader reads the MOLECULE section. If the section is missing, the
// first line of the compound is taken as the name.
func parseHeader(C *Cursor, first int) (header, error) {
	h := header{natoms: -1, nbonds: -1}
	if l, _ := C.FindHeader("MOLECULE"); !found(l, "MOLECULE") {
		l, _ := C.FromStart(0)
		if !isSection(l) {
			h.name = unset(l)
		}
		return h, nil
	}
	name, ok := C.HeaderFromStart("MOLECULE", 1)
	if !ok || isSection(name) {
		return h, nil
	}
	h.name = unset(name)
	counts, ok := C.Next()
	if !ok || isSection(counts) {
		return h, nil
	}
	fields := strings.Fields(counts)
	var err error
	if len(fields) > 0 {
		if h.natoms, err = strconv.Atoi(fields[0]); err != nil {
			return h, newError(ErrFormat, fmt.Sprintf("bad number of atoms %q", fields[0]), first+C.Position()+1, "parseHeader")
		}
	}
	if len(fields) > 1 {
		if h.nbonds, err = strconv.Atoi(fields[1]); err != nil {
			return h, newError(ErrFormat, fmt.Sprintf("bad number of bonds %q", fields[1]), first+C.Position()+1, "parseHeader")
		}
	}
	if l, ok := C.Next(); ok && !isSection(l) {
		h.moltype = unset(l)
		if l, ok := C.Next(); ok && !isSection(l) {
			h.chargetype = unset(l)
		}
	}
	return h, nil
}

// parseAtoms reads the ATOM section, returning the atoms and their coordinates.
func parseAtoms(C *Cursor, first int) ([]*chem.Atom, []float64, error) {
	if l, _ := C.FindHeader("ATOM"); !found(l, "ATOM") {
		return nil, nil, newError(ErrNoAtoms, "", first+1, "parseAtoms")
	}
	ats := make([]*chem.Atom, 0, 20)
	coords := make([]float64, 0, 60)
	err := rows(C, func(line string) error {
		at, c, err := atomLine(line)
		if err != nil {
			return newError(ErrFormat, err.Error(), first+C.Position()+1, "parseAtoms")
		}
		ats = append(ats, at)
		coords = append(coords, c[:]...)
		return nil
	})
	if err == nil && len(ats) == 0 {
		err = newError(ErrNoAtoms, "empty ATOM section", first+C.Position()+1, "parseAtoms")
	}
	return ats, coords, err
}

// atomLine parses one row of the ATOM section:
// atom_id atom_name x y z atom_type [subst_id [subst_name [charge [status_bit]]]]
func atomLine(line string) (*chem.Atom, [3]float64, error) {
	var c [3]float64
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, c, fmt.Errorf("ATOM row with %d fields, at least 6 needed", len(fields))
	}
	at := new(chem.Atom)
	var err error
	if at.ID, err = strconv.Atoi(fields[0]); err != nil {
		return nil, c, fmt.Errorf("bad atom id %q", fields[0])
	}
	at.Name = unset(fields[1])
	for i := range c {
		if c[i], err = strconv.ParseFloat(fields[2+i], 64); err != nil {
			return nil, c, fmt.Errorf("bad coordinate %q", fields[2+i])
		}
	}
	at.Type = unset(fields[5])
	if len(fields) > 6 {
		if at.Molid, err = strconv.Atoi(fields[6]); err != nil {
			return nil, c, fmt.Errorf("bad substructure id %q", fields[6])
		}
	}
	if len(fields) > 7 {
		at.Molname = unset(fields[7])
	}
	if len(fields) > 8 {
		if at.Charge, err = strconv.ParseFloat(fields[8], 64); err != nil {
			return nil, c, fmt.Errorf("bad charge %q", fields[8])
		}
	}
	if len(fields) > 9 {
		at.Status = unset(fields[9])
	}
	at.Symbol = chem.SymbolFromType(at.Type, at.Name)
	at.Mass = chem.SymbolMass(at.Symbol)
	return at, c, nil
}

// parseBonds reads the BOND section, if present. Returns the number of bonds read,
// or -1 if there is no BOND section.
func parseBonds(C *Cursor, first int, mol *chem.Molecule) (int, error) {
	if l, _ := C.FindHeader("BOND"); !found(l, "BOND") {
		return -1, nil
	}
	n := 0
	err := rows(C, func(line string) error {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return newError(ErrFormat, fmt.Sprintf("BOND row with %d fields, at least 4 needed", len(fields)), first+C.Position()+1, "parseBonds")
		}
		ids := make([]int, 3)
		for i := range ids {
			var err error
			if ids[i], err = strconv.Atoi(fields[i]); err != nil {
				return newError(ErrFormat, fmt.Sprintf("bad number %q", fields[i]), first+C.Position()+1, "parseBonds")
			}
		}
		at1, at2 := mol.AtomByID(ids[1]), mol.AtomByID(ids[2])
		if at1 == nil || at2 == nil {
			return newError(ErrFormat, fmt.Sprintf("bond %d between atoms %d and %d, which are not in the ATOM section", ids[0], ids[1], ids[2]), first+C.Position()+1, "parseBonds")
		}
		order, err := chem.BondOrder(fields[3])
		if err != nil {
			log.Printf("mol2: line %d: bond type %q not known, bond order left undetermined", first+C.Position()+1, fields[3])
		}
		mol.AddBond(&chem.Bond{ID: ids[0], Index: n, At1: at1, At2: at2, Type: fields[3], Order: order})
		n++
		return nil
	})
	return n, err
}

// parseGroups reads the SUBSTRUCTURE section. If it is absent, atoms are grouped
// by their substructure id and name. The position of each group is that of its
// root atom.
func parseGroups(C *Cursor, first int, mol *chem.Molecule) error {
	if l, _ := C.FindHeader("SUBSTRUCTURE"); !found(l, "SUBSTRUCTURE") {
		implicitGroups(mol)
		return nil
	}
	return rows(C, func(line string) error {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return newError(ErrFormat, fmt.Sprintf("SUBSTRUCTURE row with %d fields, at least 3 needed", len(fields)), first+C.Position()+1, "parseGroups")
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return newError(ErrFormat, fmt.Sprintf("bad substructure id %q", fields[0]), first+C.Position()+1, "parseGroups")
		}
		root, err := strconv.Atoi(fields[2])
		if err != nil {
			return newError(ErrFormat, fmt.Sprintf("bad root atom %q", fields[2]), first+C.Position()+1, "parseGroups")
		}
		ats := make([]*chem.Atom, 0)
		for _, at := range mol.Atoms {
			if at.Molid == id {
				ats = append(ats, at)
			}
		}
		mol.Groups = append(mol.Groups, chem.NewSGroup(fields[0], unset(fields[1]), rootPosition(mol, mol.AtomByID(root)), ats))
		return nil
	})
}

func implicitGroups(mol *chem.Molecule) {
	type key struct {
		id   int
		name string
	}
	index := make(map[key]*chem.SGroup)
	for _, at := range mol.Atoms {
		k := key{at.Molid, at.Molname}
		g, ok := index[k]
		if !ok {
			g = chem.NewSGroup(strconv.Itoa(at.Molid), at.Molname, rootPosition(mol, at), nil)
			index[k] = g
			mol.Groups = append(mol.Groups, g)
		}
		g.Atoms = append(g.Atoms, at)
	}
}

// rootPosition returns a copy of the coordinates of at, or nil if at is nil.
func rootPosition(mol *chem.Molecule, at *chem.Atom) *v3.Matrix {
	if at == nil {
		return nil
	}
	p := v3.Zeros(1)
	p.Copy(mol.Coord(at.Index, 0))
	return p
}

// parseCompound builds a molecule from the lines of one compound. first is the
// line of the file where the compound starts, used for the error messages.
func parseCompound(C *Cursor, first int) (*chem.Molecule, error) {
	h, err := parseHeader(C, first)
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	ats, coords, err := parseAtoms(C, first)
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	if h.natoms >= 0 && h.natoms != len(ats) {
		return nil, newError(ErrCount, fmt.Sprintf("%d atoms announced, %d read", h.natoms, len(ats)), first+1, "parseCompound")
	}
	_, _, charge := chem.Formula(ats)
	top, err := chem.NewTopology(ats, charge)
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	mol, err := chem.NewMolecule(h.name, top, []*v3.Matrix{mcoords})
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	mol.MolType = h.moltype
	mol.ChargeType = h.chargetype
	nbonds, err := parseBonds(C, first, mol)
	if err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	if nbonds >= 0 && h.nbonds >= 0 && nbonds != h.nbonds {
		return nil, newError(ErrCount, fmt.Sprintf("%d bonds announced, %d read", h.nbonds, nbonds), first+1, "parseCompound")
	}
	if err := parseGroups(C, first, mol); err != nil {
		return nil, errDecorate(err, "parseCompound", "")
	}
	return mol, nil
}
