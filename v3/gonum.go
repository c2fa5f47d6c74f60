/*
 * gonum.go, part of gomol2.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense under A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a Nx3 Dense. Panics if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != cols {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The slice is used, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d, or zero", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors. Panics if vecs is not positive.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		panic(ErrNotEnoughElements)
	}
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, vecs*cols))}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)}
}

// SetVec sets the ith vector of F to x, y, z.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, x)
	F.Set(i, 1, y)
	F.Set(i, 2, z)
}

// SomeVecs puts in a new matrix the vectors of F with the indexes in clist,
// in the order given.
func (F *Matrix) SomeVecs(clist []int) (*Matrix, error) {
	n := F.NVecs()
	for _, v := range clist {
		if v < 0 || v >= n {
			return nil, Error{fmt.Sprintf("Index %d out of range for a matrix with %d vectors", v, n), []string{"SomeVecs"}, true}
		}
	}
	if len(clist) == 0 {
		return nil, Error{"Empty index list", []string{"SomeVecs"}, true}
	}
	ret := Zeros(len(clist))
	for k, v := range clist {
		ret.SetRow(k, F.RawRowView(v))
	}
	return ret, nil
}

// BoxCenter returns the midpoint of the axis-aligned box that contains all the
// vectors in F.
func (F *Matrix) BoxCenter() *Matrix {
	n := F.NVecs()
	ret := Zeros(1)
	col := make([]float64, n)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, F)
		ret.Set(0, j, 0.5*(floats.Min(col)+floats.Max(col)))
	}
	return ret
}

// String returns a text representation of F, one vector per line.
func (F *Matrix) String() string {
	r := F.NVecs()
	rows := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v := F.RawRowView(i)
		rows = append(rows, fmt.Sprintf("%8.3f %8.3f %8.3f", v[0], v[1], v[2]))
	}
	return strings.Join(rows, "\n")
}

//Errors

// Error is the error type returned by the functions in this package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gomol2/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("gomol2/v3: not enough elements in Matrix")
	ErrIndexOutOfRange   = PanicMsg("gomol2/v3: index out of range")
)
