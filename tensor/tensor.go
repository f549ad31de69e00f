// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/tensornet/storage"
)

// Tensor is the capability contract shared by the production *Dense and by
// test doubles. Input sites point in the direction of greater
// renormalization flow when the tensor is a MERA gate.
//
// Link queries return a nil Tensor and port 0 for an unset port. The nil
// should be an untyped nil interface; callers in this module also accept a
// typed nil pointer.
type Tensor interface {
	// ID returns the stable identity of the tensor.
	ID() uuid.UUID

	// NumInputs and NumOutputs return the site counts (nin, nout).
	NumInputs() int
	NumOutputs() int

	// InputRank and OutputRank return the vector space rank of every input
	// (resp. output) site.
	InputRank() int
	OutputRank() int

	// Conjugate reports whether this tensor reads its storage as the
	// Hermitian conjugate.
	Conjugate() bool

	// Entry returns the element addressed by one index per input site and
	// one per output site.
	Entry(in, out []int) (complex128, error)

	// SetEntry stores v at the element addressed by in and out.
	SetEntry(in, out []int, v complex128) error

	// SetInput links input n to output m of other, replacing whatever was
	// linked on either port. A nil other unsets input n.
	SetInput(n int, other Tensor, m int) error

	// SetOutput links output n to input m of other. A nil other unsets
	// output n.
	SetOutput(n int, other Tensor, m int) error

	// InputTensor and OutputTensor return the peer linked on port n.
	InputTensor(n int) (Tensor, error)
	OutputTensor(n int) (Tensor, error)

	// InputNum and OutputNum return the peer's port number linked on port n.
	InputNum(n int) (int, error)
	OutputNum(n int) (int, error)

	// Matrix returns a descriptor sufficient to rebuild this tensor, or its
	// conjugate view when conjugate is true, elsewhere.
	Matrix(conjugate bool) MatrixView
}

// MatrixView describes a tensor's storage without exposing it.
// Conjugate means only that the storage is read as its Hermitian conjugate;
// the other fields describe the view itself and are used as-is.
type MatrixView struct {
	NumIn     int
	NumOut    int
	InRank    int
	OutRank   int
	Conjugate bool

	data *storage.Shared
}

// Valid reports whether the view carries storage.
func (v MatrixView) Valid() bool { return v.data != nil }

// storageDims returns the (rows, cols) the backing matrix must have for v.
func (v MatrixView) storageDims() (rows, cols int, err error) {
	inDim, err := dim(v.InRank, v.NumIn)
	if err != nil {
		return 0, 0, err
	}
	outDim, err := dim(v.OutRank, v.NumOut)
	if err != nil {
		return 0, 0, err
	}
	if v.Conjugate {
		return outDim, inDim, nil
	}

	return inDim, outDim, nil
}

// isNilTensor reports whether t is nil, including a typed-nil *Dense.
func isNilTensor(t Tensor) bool {
	if t == nil {
		return true
	}
	d, ok := t.(*Dense)

	return ok && d == nil
}
