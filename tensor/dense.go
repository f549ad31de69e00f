// SPDX-License-Identifier: MIT

// Package tensor - Dense tensor: shape, entries, descriptor and lifecycle.
//
// Implementation notes:
//   - nin/nout/inrank/outrank/conjugate/data are fixed at construction and
//     read without locking.
//   - in/out/closed are guarded by the owning Network's mu.
//   - Entry/SetEntry pack the input list into p_in and the output list into
//     p_out. A plain tensor addresses storage at (p_in, p_out); a conjugate
//     view addresses (p_out, p_in) and conjugates the value both ways.

package tensor

import (
	"errors"
	"fmt"
	"log/slog"
	"math/cmplx"

	"github.com/google/uuid"

	"github.com/katalvlaran/tensornet/packing"
	"github.com/katalvlaran/tensornet/storage"
)

const (
	ctxEntry    = "Dense.Entry"
	ctxSetEntry = "Dense.SetEntry"
)

// link is one end of a connection: the peer's handle and its port.
// The zero value is an unset port.
type link struct {
	peer uuid.UUID
	port int
}

func (l link) isSet() bool { return l.peer != uuid.Nil }

// Dense is the production Tensor, owned by a Network.
type Dense struct {
	id  uuid.UUID
	net *Network

	nin, nout       int  // site counts
	inrank, outrank int  // per-site vector space ranks
	conjugate       bool // storage is read as its Hermitian conjugate

	data *storage.Shared

	in     []link // in[n] = (peer, output port on peer)
	out    []link // out[n] = (peer, input port on peer)
	closed bool
}

// Compile-time assertions.
var (
	_ Tensor       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// ID returns the tensor's handle in its network.
func (t *Dense) ID() uuid.UUID { return t.id }

// Network returns the owning network.
func (t *Dense) Network() *Network { return t.net }

// NumInputs returns nin.
func (t *Dense) NumInputs() int { return t.nin }

// NumOutputs returns nout.
func (t *Dense) NumOutputs() int { return t.nout }

// InputRank returns inrank.
func (t *Dense) InputRank() int { return t.inrank }

// OutputRank returns outrank.
func (t *Dense) OutputRank() int { return t.outrank }

// Conjugate reports whether t is a conjugate view.
func (t *Dense) Conjugate() bool { return t.conjugate }

// StorageRefs returns how many tensors currently share t's storage.
func (t *Dense) StorageRefs() int { return t.data.Refs() }

// Closed reports whether Close has been called.
func (t *Dense) Closed() bool {
	t.net.mu.RLock()
	defer t.net.mu.RUnlock()

	return t.closed
}

// locate validates in/out and returns the storage coordinates they address.
//
// Errors (wrapped with method and offending values):
//   - ErrClosed, ErrWrongLength, ErrOutOfBounds.
func (t *Dense) locate(method string, in, out []int) (row, col int, err error) {
	if t.Closed() {
		return 0, 0, fmt.Errorf("%s: %s: %w", method, t.id, ErrClosed)
	}
	if len(in) != t.nin {
		return 0, 0, fmt.Errorf("%s: input list length %d, want %d: %w", method, len(in), t.nin, ErrWrongLength)
	}
	if len(out) != t.nout {
		return 0, 0, fmt.Errorf("%s: output list length %d, want %d: %w", method, len(out), t.nout, ErrWrongLength)
	}
	pin, err := packing.Pack(in, t.inrank)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: input %v: %w: %w", method, in, ErrOutOfBounds, err)
	}
	pout, err := packing.Pack(out, t.outrank)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: output %v: %w: %w", method, out, ErrOutOfBounds, err)
	}
	if t.conjugate {
		return pout, pin, nil
	}

	return pin, pout, nil
}

// Entry returns the element addressed by in (one index per input site) and
// out (one index per output site). Conjugate views return the complex
// conjugate of the transposed storage element.
//
// Errors:
//   - ErrWrongLength if len(in) != nin or len(out) != nout.
//   - ErrOutOfBounds if an index is outside [0, rank).
//   - ErrClosed after Close, including a Close racing with this call.
//
// Complexity: O(nin + nout).
func (t *Dense) Entry(in, out []int) (complex128, error) {
	row, col, err := t.locate(ctxEntry, in, out)
	if err != nil {
		return 0, t.net.misuse(err)
	}
	v, err := t.data.At(row, col)
	if err != nil {
		return 0, t.storageErr(ctxEntry, err)
	}
	if t.conjugate {
		v = cmplx.Conj(v)
	}

	return v, nil
}

// SetEntry stores v at the element addressed by in and out. Conjugate views
// store conj(v) at the transposed storage element, so reading the same
// element back through either view is consistent.
//
// Errors: as Entry.
func (t *Dense) SetEntry(in, out []int, v complex128) error {
	row, col, err := t.locate(ctxSetEntry, in, out)
	if err != nil {
		return t.net.misuse(err)
	}
	if t.conjugate {
		v = cmplx.Conj(v)
	}
	if err = t.data.Set(row, col, v); err != nil {
		return t.storageErr(ctxSetEntry, err)
	}

	return nil
}

// storageErr wraps a storage failure. Released storage means a concurrent
// Close won after locate, so the caller sees ErrClosed as well.
func (t *Dense) storageErr(method string, err error) error {
	if errors.Is(err, storage.ErrReleased) {
		return fmt.Errorf("%s: %s: %w: %w", method, t.id, ErrClosed, err)
	}

	return fmt.Errorf("%s: %w", method, err)
}

// Matrix returns a descriptor of t's storage. With conjugate == true the
// descriptor is that of t's conjugate view: site counts and ranks swapped
// and the conjugate flag inverted.
func (t *Dense) Matrix(conjugate bool) MatrixView {
	if !conjugate {
		return MatrixView{
			NumIn:     t.nin,
			NumOut:    t.nout,
			InRank:    t.inrank,
			OutRank:   t.outrank,
			Conjugate: t.conjugate,
			data:      t.data,
		}
	}

	return MatrixView{
		NumIn:     t.nout,
		NumOut:    t.nin,
		InRank:    t.outrank,
		OutRank:   t.inrank,
		Conjugate: !t.conjugate,
		data:      t.data,
	}
}

// Snapshot encodes t's raw storage (see storage.Encode). The snapshot is
// the stored matrix itself; the conjugate flag is not applied.
func (t *Dense) Snapshot() ([]byte, error) {
	if t.Closed() {
		return nil, t.net.misuse(fmt.Errorf("Dense.Snapshot: %s: %w", t.id, ErrClosed))
	}

	return t.data.Snapshot()
}

// Close severs every link of t, so each former peer's corresponding port
// reverts to unset, removes t from its network and releases t's share of
// the storage. The storage itself is freed when its last owner closes.
//
// Errors:
//   - ErrClosed on a second Close.
func (t *Dense) Close() error {
	n := t.net
	n.mu.Lock()
	if t.closed {
		n.mu.Unlock()
		return n.misuse(fmt.Errorf("Dense.Close: %s: %w", t.id, ErrClosed))
	}
	for i := range t.in {
		t.unsetInput(i)
	}
	for i := range t.out {
		t.unsetOutput(i)
	}
	t.closed = true
	delete(n.tensors, t.id)
	n.mu.Unlock()

	freed, err := t.data.Release()
	if err != nil {
		return fmt.Errorf("Dense.Close: %w", err)
	}
	if freed {
		n.opts.logger.Debug("tensor: storage released", slog.String("id", t.id.String()))
	}

	return nil
}

// String returns a one-line summary for diagnostics.
func (t *Dense) String() string {
	return fmt.Sprintf("Dense{%s in=%d×%d out=%d×%d conj=%t}",
		t.id, t.nin, t.inrank, t.nout, t.outrank, t.conjugate)
}
