// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Each message is prefixed with "tensor: ". The three usage-error kinds
// (wrong length, out of bounds, incompatible ranks) stay distinct so callers
// can tell them apart with errors.Is.

package tensor

import "errors"

var (
	// ErrWrongLength indicates an index list whose length differs from the
	// tensor's site count on that side.
	ErrWrongLength = errors.New("tensor: list has illegal length")

	// ErrOutOfBounds indicates an index value >= its rank, or a port number
	// >= the site count.
	ErrOutOfBounds = errors.New("tensor: argument out of bounds")

	// ErrIncompatibleRanks indicates an attempt to link ports whose vector
	// space ranks differ.
	ErrIncompatibleRanks = errors.New("tensor: incompatible objects")

	// ErrNilTensor indicates a nil tensor where one is required.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrForeignTensor indicates a peer that is not a *Dense owned by the
	// same Network.
	ErrForeignTensor = errors.New("tensor: tensor belongs to another network")

	// ErrClosed indicates use of a tensor after Close.
	ErrClosed = errors.New("tensor: tensor is closed")

	// ErrBadShape indicates negative site counts or ranks, an unrepresentable
	// dimension, or a MatrixView inconsistent with its storage.
	ErrBadShape = errors.New("tensor: invalid shape")
)
