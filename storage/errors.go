// SPDX-License-Identifier: MIT
// Package storage: sentinel error set.
// Every message is prefixed with "storage: ". Callers match with errors.Is;
// methods wrap the sentinel once with their own context.

package storage

import "errors"

var (
	// ErrBadShape is returned for negative dimensions or a snapshot whose
	// payload does not match its declared shape.
	ErrBadShape = errors.New("storage: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the buffer.
	ErrOutOfRange = errors.New("storage: index out of range")

	// ErrReleased indicates use of a Shared handle after its last owner
	// released it.
	ErrReleased = errors.New("storage: matrix released")

	// ErrNilMatrix indicates a nil Matrix was supplied.
	ErrNilMatrix = errors.New("storage: nil matrix")
)
