// SPDX-License-Identifier: MIT

// Package storage - CDense buffer & safe accessors.
//
// Purpose:
//   - Wrap gonum's mat.CDense (row-major complex128) behind an error-returning surface.
//   - Allow legal zero-area shapes (0×N, N×0) which gonum itself refuses to allocate.
//   - Allocate as the identity so a fresh tensor is the identity map on its packed space.
//
// Complexity quicksheet:
//   - NewIdentity: O(r*c) zero-init + O(min(r,c)) diagonal; At/Set: O(1).

package storage

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Matrix is the storage contract consumed by tensors.
// Implementations must bounds-check and return ErrOutOfRange rather than panic.
type Matrix interface {
	// Dims returns the row and column counts.
	Dims() (rows, cols int)

	// At returns the element at (i, j).
	At(i, j int) (complex128, error)

	// Set stores v at (i, j).
	Set(i, j int, v complex128) error
}

// Allocator creates a fresh, identity-initialized Matrix of the given shape.
// NewIdentity is the production allocator; tests may inject doubles.
type Allocator func(rows, cols int) (Matrix, error)

// cdenseErrorf wraps err with the CDense method and coordinates.
func cdenseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, i, j, err)
}

// CDense is a rectangular complex128 buffer backed by gonum's mat.CDense.
// A zero-area CDense holds no gonum matrix; every access is out of range.
type CDense struct {
	r, c int
	m    *mat.CDense // nil iff r == 0 || c == 0
}

// Compile-time assertion.
var _ Matrix = (*CDense)(nil)

// MaxArea is the largest element count (rows*cols) a CDense may hold.
const MaxArea = 1 << 40

// checkArea rejects negative dimensions and shapes whose element count
// overflows int or exceeds MaxArea.
func checkArea(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if cols != 0 && rows > MaxArea/cols {
		return ErrBadShape
	}

	return nil
}

// NewIdentity allocates a rows×cols matrix with ones on the diagonal (i == j)
// and zero elsewhere. Rectangular shapes get a partial diagonal.
//
// Errors:
//   - ErrBadShape if rows < 0, cols < 0 or rows*cols exceeds MaxArea.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewIdentity(rows, cols int) (*CDense, error) {
	if err := checkArea(rows, cols); err != nil {
		return nil, fmt.Errorf("NewIdentity(%d,%d): %w", rows, cols, err)
	}
	d := &CDense{r: rows, c: cols}
	if rows == 0 || cols == 0 {
		return d, nil
	}
	d.m = mat.NewCDense(rows, cols, nil) // gonum zero-fills
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		d.m.Set(i, i, 1)
	}

	return d, nil
}

// Allocate adapts NewIdentity to the Allocator signature.
func Allocate(rows, cols int) (Matrix, error) {
	return NewIdentity(rows, cols)
}

// Dims returns the row and column counts.
func (d *CDense) Dims() (rows, cols int) { return d.r, d.c }

// inRange reports whether (i, j) addresses a cell of the buffer.
func (d *CDense) inRange(i, j int) bool {
	return i >= 0 && i < d.r && j >= 0 && j < d.c
}

// At returns the value at (i, j) or ErrOutOfRange.
func (d *CDense) At(i, j int) (complex128, error) {
	if !d.inRange(i, j) {
		return 0, cdenseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.m.At(i, j), nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
func (d *CDense) Set(i, j int, v complex128) error {
	if !d.inRange(i, j) {
		return cdenseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.m.Set(i, j, v)

	return nil
}

// RawCDense exposes the gonum matrix for read-only interop (nil for zero-area).
// Mutating it bypasses bounds checks but stays visible to every owner.
func (d *CDense) RawCDense() *mat.CDense { return d.m }
