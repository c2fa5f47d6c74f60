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

package chem

import (
	"fmt"
	"strings"
)

// CError is the general error type of the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	err      error
}

// NewError returns a CError with the message msg, decorated with caller.
func NewError(msg, caller string) CError {
	return CError{msg: msg, deco: []string{caller}, critical: true}
}

// Error returns a string with the message and the decoration of the error.
func (err CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, ": "))
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err CError) Critical() bool { return err.critical }

// Unwrap returns the error that caused err, if any.
func (err CError) Unwrap() error { return err.err }

// errDecorate is a helper function that decorates the error with the caller's name before
// returning it, if it implements Error. Other errors are wrapped in a CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(CError); ok {
		err2.deco = err2.Decorate(caller)
		return err2
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return CError{msg: err.Error(), deco: []string{caller}, critical: true, err: err}
}
