// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the msgpack wire record of a Matrix.
// Re and Im hold row-major parts, each of length Rows*Cols.
type snapshot struct {
	Rows int       `msgpack:"rows"`
	Cols int       `msgpack:"cols"`
	Re   []float64 `msgpack:"re"`
	Im   []float64 `msgpack:"im"`
}

// Encode serializes m as a msgpack snapshot.
//
// Errors:
//   - ErrNilMatrix if m is nil; any At error from m; msgpack encoding errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Encode(m Matrix) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("Encode: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	rec := snapshot{
		Rows: r,
		Cols: c,
		Re:   make([]float64, 0, r*c),
		Im:   make([]float64, 0, r*c),
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Encode: %w", err)
			}
			rec.Re = append(rec.Re, real(v))
			rec.Im = append(rec.Im, imag(v))
		}
	}

	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("Encode: msgpack: %w", err)
	}

	return data, nil
}

// Decode rebuilds a CDense from a snapshot produced by Encode.
//
// Errors:
//   - ErrBadShape if the declared shape is negative or larger than MaxArea,
//     or the payload length does not equal Rows*Cols; msgpack decoding errors.
func Decode(data []byte) (*CDense, error) {
	var rec snapshot
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("Decode: msgpack: %w", err)
	}
	if err := checkArea(rec.Rows, rec.Cols); err != nil {
		return nil, fmt.Errorf("Decode: shape %dx%d: %w", rec.Rows, rec.Cols, err)
	}
	n := rec.Rows * rec.Cols
	if len(rec.Re) != n || len(rec.Im) != n {
		return nil, fmt.Errorf("Decode: payload %d/%d for %dx%d: %w",
			len(rec.Re), len(rec.Im), rec.Rows, rec.Cols, ErrBadShape)
	}

	d, err := NewIdentity(rec.Rows, rec.Cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rec.Rows; i++ {
		for j = 0; j < rec.Cols; j++ {
			k := i*rec.Cols + j
			d.m.Set(i, j, complex(rec.Re[k], rec.Im[k]))
		}
	}

	return d, nil
}
