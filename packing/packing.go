// SPDX-License-Identifier: MIT

// Package packing converts multi-indices to and from the single linear
// coordinate used to address a tensor's backing matrix.
//
// A multi-index v of length k, every digit bounded by rank, packs to
//
//	sum_{i=0}^{k-1} v[k-1-i] * rank^i
//
// so the first index is the most significant digit and the last index the
// least significant. Unpack reverses this with repeated div/mod.
//
// Errors:
//
//   - ErrOutOfBounds  a digit outside [0, rank), a negative packed value, or a
//     packed value with a nonzero remainder after all k digits are consumed.
//   - ErrOverflow     rank^k does not fit in an int.
package packing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfBounds indicates an index digit or packed value outside its range.
	ErrOutOfBounds = errors.New("packing: index out of bounds")

	// ErrOverflow indicates that rank^k overflows int.
	ErrOverflow = errors.New("packing: dimension overflows int")
)

// Dim returns rank^k, the number of distinct multi-indices of length k.
// An empty index list has exactly one value, so Dim(rank, 0) == 1 for any
// rank, including 0.
//
// Complexity: O(k).
func Dim(rank, k int) (int, error) {
	if rank < 0 || k < 0 {
		return 0, fmt.Errorf("Dim(%d,%d): %w", rank, k, ErrOutOfBounds)
	}
	d := 1
	for i := 0; i < k; i++ {
		if rank != 0 && d > math.MaxInt/rank {
			return 0, fmt.Errorf("Dim(%d,%d): %w", rank, k, ErrOverflow)
		}
		d *= rank
	}

	return d, nil
}

// Pack encodes v as a single coordinate in [0, rank^len(v)).
// Each v[i] must lie in [0, rank).
//
// Complexity: O(len(v)).
func Pack(v []int, rank int) (int, error) {
	x := 0
	for i, digit := range v {
		if digit < 0 || digit >= rank {
			return 0, fmt.Errorf("Pack: v[%d]=%d with rank %d: %w", i, digit, rank, ErrOutOfBounds)
		}
		x = x*rank + digit // Horner form of the mixed-radix sum
	}

	return x, nil
}

// Unpack decodes x into a multi-index of length k over rank.
// The returned slice is freshly allocated.
//
// Complexity: O(k).
func Unpack(x, k, rank int) ([]int, error) {
	if x < 0 || k < 0 {
		return nil, fmt.Errorf("Unpack(%d,%d,%d): %w", x, k, rank, ErrOutOfBounds)
	}
	v := make([]int, k)
	if k > 0 && rank <= 0 {
		return nil, fmt.Errorf("Unpack(%d,%d,%d): %w", x, k, rank, ErrOutOfBounds)
	}
	rest := x
	for i := k - 1; i >= 0; i-- {
		v[i] = rest % rank
		rest /= rank
	}
	if rest != 0 {
		// high-order digits left over: x >= rank^k
		return nil, fmt.Errorf("Unpack(%d,%d,%d): remainder %d: %w", x, k, rank, rest, ErrOutOfBounds)
	}

	return v, nil
}
