/*
 * errors.go, part of gomol2.
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
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes, to be checked with errors.Is.
var (
	ErrNoAtoms = errors.New("no ATOM section in compound")
	ErrCount   = errors.New("number of records doesn't match the MOLECULE section")
	ErrFormat  = errors.New("wrong format")
	ErrOpen    = errors.New("unable to open file")
)

// Error is the general structure for MOL2 reading errors. It fullfills chem.Error and chem.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line in the file, 0 if not known.
	deco     []string
	critical bool
	err      error
}

func newError(cause error, message string, line int, caller string) Error {
	return Error{message: message, line: line, deco: []string{caller}, critical: true, err: cause}
}

func (err Error) Error() string {
	var b strings.Builder
	b.WriteString("mol2")
	if err.filename != "" {
		b.WriteString(" file ")
		b.WriteString(err.filename)
	}
	if err.line > 0 {
		fmt.Fprintf(&b, " line %d", err.line)
	}
	b.WriteString(": ")
	b.WriteString(err.err.Error())
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	return b.String()
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file being read when the error happened, if any.
func (err Error) FileName() string { return err.filename }

// Line returns the line of the file where the error happened, or 0.
func (err Error) Line() int { return err.line }

// Format returns the format of the file (always "mol2") associated to the error
func (err Error) Format() string { return "mol2" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// Unwrap returns the cause of the error, i.e. ErrNoAtoms.
func (err Error) Unwrap() error { return err.err }

// errDecorate decorates the error with the caller's name before returning it,
// and sets the file name if it is not set. Errors not of this package are
// wrapped in an Error.
func errDecorate(err error, caller, filename string) error {
	if err == nil {
		return nil
	}
	e, ok := err.(Error)
	if !ok {
		e = Error{err: err, critical: true}
	}
	e.deco = e.Decorate(caller)
	if e.filename == "" {
		e.filename = filename
	}
	return e
}
