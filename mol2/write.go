/*
 * write.go, part of gomol2.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gomol2"
)

// placeholder for empty string fields, which would break the columns.
const empty = "****"

func orEmpty(s string) string {
	if s == "" {
		return empty
	}
	return s
}

// FileWrite writes mols to the file fname, compressing it with gzip if
// the name ends in .gz, or with z-standard if it ends in .zst or .zstd.
func FileWrite(fname string, mols []*chem.Molecule) error {
	f, err := os.Create(fname)
	if err != nil {
		return errDecorate(newError(ErrOpen, err.Error(), 0, "os.Create"), "FileWrite", fname)
	}
	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst", ".zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return errDecorate(newError(ErrFormat, err.Error(), 0, "zstd.NewWriter"), "FileWrite", fname)
		}
	default:
		w = f
	}
	err = Write(w, mols)
	if w != io.WriteCloser(f) {
		if err2 := w.Close(); err == nil && err2 != nil {
			err = err2
		}
	}
	if err2 := f.Close(); err == nil && err2 != nil {
		err = err2
	}
	return errDecorate(err, "FileWrite", fname)
}

// Write writes mols in MOL2 format to out, one record per molecule, each
// starting with its MOLECULE header. The coordinates of the first frame are used.
// Empty names and types are written as "****", which the readers in this
// package turn back into empty strings.
func Write(out io.Writer, mols []*chem.Molecule) error {
	w := bufio.NewWriter(out)
	for i, m := range mols {
		if err := writeMolecule(w, m); err != nil {
			return errDecorate(newError(ErrFormat, fmt.Sprintf("molecule %d: %s", i+1, err.Error()), 0, "writeMolecule"), "Write", "")
		}
	}
	if err := w.Flush(); err != nil {
		return errDecorate(newError(ErrFormat, err.Error(), 0, "Flush"), "Write", "")
	}
	return nil
}

func writeMolecule(w *bufio.Writer, m *chem.Molecule) error {
	if err := m.Corrupted(); err != nil {
		return err
	}
	if len(m.Coords) == 0 {
		return fmt.Errorf("no coordinates")
	}
	moltype, chargetype := m.MolType, m.ChargeType
	if moltype == "" {
		moltype = "SMALL"
	}
	if chargetype == "" {
		chargetype = "NO_CHARGES"
	}
	fmt.Fprintf(w, "%sMOLECULE\n%s\n%5d %5d %5d     0     0\n%s\n%s\n\n", HeaderPrefix, orEmpty(m.Name), m.Len(), len(m.Bonds), len(m.Groups), moltype, chargetype)
	fmt.Fprintf(w, "%sATOM\n", HeaderPrefix)
	for i, at := range m.Atoms {
		c := m.Coords[0].RawRowView(i)
		fmt.Fprintf(w, "%7d %-8s %10.4f %10.4f %10.4f %-8s %4d  %-8s %9.4f", at.ID, orEmpty(at.Name), c[0], c[1], c[2], orEmpty(at.Type), at.Molid, orEmpty(at.Molname), at.Charge)
		if at.Status != "" {
			fmt.Fprintf(w, " %s", at.Status)
		}
		w.WriteString("\n")
	}
	if len(m.Bonds) > 0 {
		fmt.Fprintf(w, "%sBOND\n", HeaderPrefix)
		for _, b := range m.Bonds {
			fmt.Fprintf(w, "%6d %5d %5d %s\n", b.ID, b.At1.ID, b.At2.ID, orEmpty(b.Type))
		}
	}
	if len(m.Groups) > 0 {
		fmt.Fprintf(w, "%sSUBSTRUCTURE\n", HeaderPrefix)
		for i, g := range m.Groups {
			id, err := strconv.Atoi(g.ID)
			if err != nil {
				id = i + 1
			}
			root := 1
			if len(g.Atoms) > 0 {
				root = g.Atoms[0].ID
			}
			fmt.Fprintf(w, "%6d %-8s %6d\n", id, orEmpty(g.Name), root)
		}
	}
	return nil
}
