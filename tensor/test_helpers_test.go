// SPDX-License-Identifier: MIT
// Package tensor_test contains fixtures shared by the tensor tests.

package tensor_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensornet/storage"
	"github.com/katalvlaran/tensornet/tensor"
)

// Common shapes used across tensor tests (avoid magic numbers in test bodies).
const (
	Rank2 = 2
	Rank3 = 3
	Rank6 = 6
)

// quietLogger discards diagnostics so expected contract violations do not
// flood test output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newNetwork returns a network with a discarding logger plus opts.
func newNetwork(opts ...tensor.Option) *tensor.Network {
	return tensor.NewNetwork(append([]tensor.Option{tensor.WithLogger(quietLogger())}, opts...)...)
}

// mustNew builds a tensor or fails the test.
func mustNew(t *testing.T, n *tensor.Network, nin, nout, inrank, outrank int) *tensor.Dense {
	t.Helper()
	d, err := n.New(nin, nout, inrank, outrank)
	require.NoError(t, err)

	return d
}

// requireLinked asserts both halves of input n of a <-> output m of b.
func requireLinked(t *testing.T, a tensor.Tensor, n int, b tensor.Tensor, m int) {
	t.Helper()

	in, err := a.InputTensor(n)
	require.NoError(t, err)
	require.NotNil(t, in)
	require.Equal(t, b.ID(), in.ID())
	num, err := a.InputNum(n)
	require.NoError(t, err)
	require.Equal(t, m, num)

	out, err := b.OutputTensor(m)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, a.ID(), out.ID())
	num, err = b.OutputNum(m)
	require.NoError(t, err)
	require.Equal(t, n, num)
}

// requireInputUnset asserts input n of a is unset.
func requireInputUnset(t *testing.T, a tensor.Tensor, n int) {
	t.Helper()

	in, err := a.InputTensor(n)
	require.NoError(t, err)
	require.Nil(t, in)
	num, err := a.InputNum(n)
	require.NoError(t, err)
	require.Zero(t, num)
}

// requireOutputUnset asserts output n of a is unset.
func requireOutputUnset(t *testing.T, a tensor.Tensor, n int) {
	t.Helper()

	out, err := a.OutputTensor(n)
	require.NoError(t, err)
	require.Nil(t, out)
	num, err := a.OutputNum(n)
	require.NoError(t, err)
	require.Zero(t, num)
}

// countingAllocator wraps storage.NewIdentity and records every allocation.
type countingAllocator struct {
	mu     sync.Mutex
	shapes [][2]int
}

func (c *countingAllocator) alloc(rows, cols int) (storage.Matrix, error) {
	c.mu.Lock()
	c.shapes = append(c.shapes, [2]int{rows, cols})
	c.mu.Unlock()

	return storage.NewIdentity(rows, cols)
}
