// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Arena of tensors, constructors and lifecycle.
//
// Concurrency:
//   - mu guards the catalog, every tensor's link slices and closed flags.
//   - Storage has its own lock; order is always mu -> storage.
//
// Determinism:
//   - Tensors() returns tensors sorted by ID.

package tensor

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/tensornet/packing"
	"github.com/katalvlaran/tensornet/storage"
)

// Network owns a set of *Dense tensors and the links between them.
// The zero value is not usable; call NewNetwork.
type Network struct {
	mu      sync.RWMutex
	tensors map[uuid.UUID]*Dense
	opts    options
}

// NewNetwork creates an empty network.
//
// Complexity: O(len(opts)).
func NewNetwork(opts ...Option) *Network {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Network{
		tensors: make(map[uuid.UUID]*Dense),
		opts:    o,
	}
}

// Logger returns the logger diagnostics are written to.
func (n *Network) Logger() *slog.Logger { return n.opts.logger }

// misuse logs a contract violation and returns it, or panics with it under
// WithPanicOnMisuse.
func (n *Network) misuse(err error) error {
	n.opts.logger.Error("tensor: contract violation", slog.Any("err", err))
	if n.opts.panicOnMisuse {
		panic(err)
	}

	return err
}

// dim is packing.Dim with the error mapped onto ErrBadShape.
func dim(rank, k int) (int, error) {
	d, err := packing.Dim(rank, k)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadShape, err)
	}

	return d, nil
}

// New creates a tensor with nin input sites of rank inrank and nout output
// sites of rank outrank, backed by a fresh identity matrix of shape
// inrank^nin × outrank^nout.
//
// Errors:
//   - ErrBadShape for negative arguments or a dimension that overflows int.
//   - any error from the configured allocator.
//
// Complexity:
//   - Time O(inrank^nin * outrank^nout) for the allocation.
func (n *Network) New(nin, nout, inrank, outrank int) (*Dense, error) {
	if nin < 0 || nout < 0 || inrank < 0 || outrank < 0 {
		return nil, n.misuse(fmt.Errorf("Network.New(%d,%d,%d,%d): %w", nin, nout, inrank, outrank, ErrBadShape))
	}
	rows, err := dim(inrank, nin)
	if err != nil {
		return nil, n.misuse(fmt.Errorf("Network.New: input side: %w", err))
	}
	cols, err := dim(outrank, nout)
	if err != nil {
		return nil, n.misuse(fmt.Errorf("Network.New: output side: %w", err))
	}

	m, err := n.opts.alloc(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Network.New: allocate %dx%d: %w", rows, cols, err)
	}
	data, err := storage.NewShared(m)
	if err != nil {
		return nil, fmt.Errorf("Network.New: %w", err)
	}

	t := n.register(MatrixView{
		NumIn:   nin,
		NumOut:  nout,
		InRank:  inrank,
		OutRank: outrank,
		data:    data,
	})
	n.opts.logger.Debug("tensor: created",
		slog.String("id", t.id.String()),
		slog.Int("rows", rows), slog.Int("cols", cols))

	return t, nil
}

// NewSquare creates a tensor whose input and output ranks are both rank.
func (n *Network) NewSquare(nin, nout, rank int) (*Dense, error) {
	return n.New(nin, nout, rank, rank)
}

// FromMatrix creates a tensor sharing the storage described by v. The new
// tensor holds its own reference to that storage and starts unlinked.
//
// Errors:
//   - ErrBadShape if v carries no storage, has negative fields, or its shape
//     does not match the storage dimensions.
//   - storage.ErrReleased if the storage was already freed.
func (n *Network) FromMatrix(v MatrixView) (*Dense, error) {
	if !v.Valid() {
		return nil, n.misuse(fmt.Errorf("Network.FromMatrix: view without storage: %w", ErrBadShape))
	}
	if v.NumIn < 0 || v.NumOut < 0 || v.InRank < 0 || v.OutRank < 0 {
		return nil, n.misuse(fmt.Errorf("Network.FromMatrix(%d,%d,%d,%d): %w",
			v.NumIn, v.NumOut, v.InRank, v.OutRank, ErrBadShape))
	}
	if v.data.Released() {
		return nil, fmt.Errorf("Network.FromMatrix: %w", storage.ErrReleased)
	}
	rows, cols, err := v.storageDims()
	if err != nil {
		return nil, n.misuse(fmt.Errorf("Network.FromMatrix: %w", err))
	}
	haveRows, haveCols := v.data.Dims()
	if rows != haveRows || cols != haveCols {
		return nil, n.misuse(fmt.Errorf("Network.FromMatrix: view needs %dx%d, storage is %dx%d: %w",
			rows, cols, haveRows, haveCols, ErrBadShape))
	}

	data, err := v.data.Acquire()
	if err != nil {
		return nil, fmt.Errorf("Network.FromMatrix: %w", err)
	}
	v.data = data

	return n.register(v), nil
}

// CopyOf creates a tensor sharing t's storage with t's shape and conjugate flag.
// A closed t yields ErrClosed even while other owners keep the storage alive.
func (n *Network) CopyOf(t Tensor) (*Dense, error) {
	if isNilTensor(t) {
		return nil, n.misuse(fmt.Errorf("Network.CopyOf: %w", ErrNilTensor))
	}
	if d, ok := t.(*Dense); ok && d.Closed() {
		return nil, n.misuse(fmt.Errorf("Network.CopyOf: %s: %w", d.id, ErrClosed))
	}

	return n.FromMatrix(t.Matrix(false))
}

// ConjugateOf creates the conjugate view of t: shared storage, site counts
// and ranks swapped, conjugate flag inverted.
func (n *Network) ConjugateOf(t Tensor) (*Dense, error) {
	if isNilTensor(t) {
		return nil, n.misuse(fmt.Errorf("Network.ConjugateOf: %w", ErrNilTensor))
	}
	if d, ok := t.(*Dense); ok && d.Closed() {
		return nil, n.misuse(fmt.Errorf("Network.ConjugateOf: %s: %w", d.id, ErrClosed))
	}

	return n.FromMatrix(t.Matrix(true))
}

// register allocates a *Dense for v (which must already own a reference)
// and adds it to the catalog.
func (n *Network) register(v MatrixView) *Dense {
	t := &Dense{
		id:        uuid.New(),
		net:       n,
		nin:       v.NumIn,
		nout:      v.NumOut,
		inrank:    v.InRank,
		outrank:   v.OutRank,
		conjugate: v.Conjugate,
		data:      v.data,
		in:        make([]link, v.NumIn),
		out:       make([]link, v.NumOut),
	}

	n.mu.Lock()
	n.tensors[t.id] = t
	n.mu.Unlock()

	return t
}

// Remove closes t (see Dense.Close). t must belong to this network.
func (n *Network) Remove(t Tensor) error {
	if isNilTensor(t) {
		return n.misuse(fmt.Errorf("Network.Remove: %w", ErrNilTensor))
	}
	d, ok := t.(*Dense)
	if !ok || d.net != n {
		return n.misuse(fmt.Errorf("Network.Remove(%s): %w", t.ID(), ErrForeignTensor))
	}

	return d.Close()
}

// Len returns the number of live tensors.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.tensors)
}

// Lookup returns the live tensor with the given id.
func (n *Network) Lookup(id uuid.UUID) (*Dense, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	t, ok := n.tensors[id]

	return t, ok
}

// Tensors returns every live tensor, sorted by ID.
//
// Complexity: O(T log T).
func (n *Network) Tensors() []*Dense {
	n.mu.RLock()
	out := make([]*Dense, 0, len(n.tensors))
	for _, t := range n.tensors {
		out = append(out, t)
	}
	n.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].id.String() < out[j].id.String()
	})

	return out
}

// resolve maps a peer Tensor onto a live *Dense of this network.
// Caller must hold n.mu.
func (n *Network) resolve(method string, other Tensor) (*Dense, error) {
	d, ok := other.(*Dense)
	if !ok || d.net != n {
		return nil, fmt.Errorf("%s: peer %s: %w", method, other.ID(), ErrForeignTensor)
	}
	if d.closed {
		return nil, fmt.Errorf("%s: peer %s: %w", method, d.id, ErrClosed)
	}

	return d, nil
}
