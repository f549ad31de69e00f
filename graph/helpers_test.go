package graph_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensornet/tensor"
)

// Rank2 is the site rank used by every fixture.
const Rank2 = 2

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newNetwork() *tensor.Network {
	return tensor.NewNetwork(tensor.WithLogger(quietLogger()))
}

// diamond is t1 fanning out into t2 and t3, merging into t4, with t5 hanging
// off t4 and a cross link t3 -> t2:
//
//	t2.in0 <- t1.out0    t3.in0 <- t1.out1
//	t4.in0 <- t2.out0    t4.in1 <- t3.out0
//	t5.in0 <- t4.out0    t2.in1 <- t3.out1
type diamond struct {
	net                *tensor.Network
	t1, t2, t3, t4, t5 *tensor.Dense
}

func newDiamond(t *testing.T) *diamond {
	t.Helper()
	d := &diamond{net: newNetwork()}
	for _, p := range []**tensor.Dense{&d.t1, &d.t2, &d.t3, &d.t4, &d.t5} {
		x, err := d.net.NewSquare(2, 2, Rank2)
		require.NoError(t, err)
		*p = x
	}

	require.NoError(t, d.t2.SetInput(0, d.t1, 0))
	require.NoError(t, d.t3.SetInput(0, d.t1, 1))
	require.NoError(t, d.t4.SetInput(0, d.t2, 0))
	require.NoError(t, d.t4.SetInput(1, d.t3, 0))
	require.NoError(t, d.t5.SetInput(0, d.t4, 0))
	require.NoError(t, d.t2.SetInput(1, d.t3, 1))

	return d
}

func (d *diamond) all() []*tensor.Dense {
	return []*tensor.Dense{d.t1, d.t2, d.t3, d.t4, d.t5}
}

var errStub = errors.New("stub: link query failed")

// stub is a hand-rolled Tensor with plain pointer links. failInput makes
// InputTensor fail on that port; typedNil reports unset ports as a typed
// (*stub)(nil) instead of an untyped nil.
type stub struct {
	id        uuid.UUID
	in, out   []*stub
	inNum     []int
	outNum    []int
	failInput int
	typedNil  bool
}

func newStub(nin, nout int) *stub {
	return &stub{
		id:        uuid.New(),
		in:        make([]*stub, nin),
		out:       make([]*stub, nout),
		inNum:     make([]int, nin),
		outNum:    make([]int, nout),
		failInput: -1,
	}
}

// link connects input n of s to output m of o.
func (s *stub) link(n int, o *stub, m int) {
	s.in[n], s.inNum[n] = o, m
	o.out[m], o.outNum[m] = s, n
}

func (s *stub) ID() uuid.UUID   { return s.id }
func (s *stub) NumInputs() int  { return len(s.in) }
func (s *stub) NumOutputs() int { return len(s.out) }
func (s *stub) InputRank() int  { return Rank2 }
func (s *stub) OutputRank() int { return Rank2 }
func (s *stub) Conjugate() bool { return false }
func (s *stub) Entry(_, _ []int) (complex128, error) {
	return 0, nil
}
func (s *stub) SetEntry(_, _ []int, _ complex128) error       { return nil }
func (s *stub) SetInput(_ int, _ tensor.Tensor, _ int) error  { return nil }
func (s *stub) SetOutput(_ int, _ tensor.Tensor, _ int) error { return nil }
func (s *stub) Matrix(bool) tensor.MatrixView                 { return tensor.MatrixView{} }

func (s *stub) InputTensor(n int) (tensor.Tensor, error) {
	if n == s.failInput {
		return nil, errStub
	}
	if s.in[n] == nil && !s.typedNil {
		return nil, nil
	}

	return s.in[n], nil
}

func (s *stub) OutputTensor(n int) (tensor.Tensor, error) {
	if s.out[n] == nil && !s.typedNil {
		return nil, nil
	}

	return s.out[n], nil
}

func (s *stub) InputNum(n int) (int, error)  { return s.inNum[n], nil }
func (s *stub) OutputNum(n int) (int, error) { return s.outNum[n], nil }
