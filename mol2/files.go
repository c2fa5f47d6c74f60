/*
 * files.go, part of gomol2.
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
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gomol2"
)

// FileRead reads all the MOL2 records in the file fname. Files ending in .gz
// are decompressed with gzip, and files ending in .zst or .zstd with
// z-standard. Any other file is read as plain text.
func FileRead(fname string) ([]*chem.Molecule, error) {
	text, err := LoadText(fname)
	if err != nil {
		return nil, errDecorate(err, "FileRead", fname)
	}
	mols, err := ReadString(text)
	return mols, errDecorate(err, "FileRead", fname)
}

// LoadText returns the whole content of fname as a string, decompressing
// it if the extension says so. Plain files are memory-mapped.
func LoadText(fname string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	switch ext {
	case ".gz":
		return readCompressed(fname, func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		})
	case ".zst", ".zstd":
		return readCompressed(fname, func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zstdReadCloser{d}, nil
		})
	case ".mol2", ".ml2", ".sy2":
	default:
		//if it's not a MOL2 file, you'll get an error when parsing.
		log.Printf("Extension %q not known. %s will be read as a plain MOL2 file", ext, fname)
	}
	return mmapText(fname)
}

// *zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func readCompressed(fname string, newReader func(io.Reader) (io.ReadCloser, error)) (string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return "", newError(ErrOpen, err.Error(), 0, "readCompressed")
	}
	defer f.Close()
	r, err := newReader(f)
	if err != nil {
		return "", newError(ErrFormat, err.Error(), 0, "readCompressed")
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", newError(ErrFormat, err.Error(), 0, "readCompressed")
	}
	return string(data), nil
}

// mmapText maps the file and copies its content into a string, so the map
// can be released right away.
func mmapText(fname string) (string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return "", newError(ErrOpen, err.Error(), 0, "mmapText")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", newError(ErrOpen, err.Error(), 0, "mmapText")
	}
	if info.Size() == 0 {
		return "", nil //empty files can't be mapped
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", newError(ErrOpen, err.Error(), 0, "mmapText")
	}
	text := string(mm)
	if err := mm.Unmap(); err != nil {
		log.Printf("Unable to unmap %s: %s", fname, err.Error())
	}
	return text, nil
}
