// SPDX-License-Identifier: MIT
//
// File: links.go
// Role: Port wiring between tensors and link queries.
//
// Invariant (held between any two public calls):
//   - a.in[i] == (b, j)  <=>  b.out[j] == (a, i)
//
// Policy:
//   - Every argument is validated before the first mutation, so a rejected
//     call leaves both tensors exactly as they were.
//   - Relinking a port first severs the old link on both touched ports.

package tensor

import (
	"fmt"
	"log/slog"
)

const (
	ctxSetInput     = "Dense.SetInput"
	ctxSetOutput    = "Dense.SetOutput"
	ctxInputTensor  = "Dense.InputTensor"
	ctxOutputTensor = "Dense.OutputTensor"
	ctxInputNum     = "Dense.InputNum"
	ctxOutputNum    = "Dense.OutputNum"
)

// SetInput links input n of t to output m of other: afterwards
// t.InputTensor(n) == other, t.InputNum(n) == m, other.OutputTensor(m) == t
// and other.OutputNum(m) == n. Anything previously linked on t's input n or
// on other's output m is unlinked on both ends. A nil other unsets input n
// (m is ignored). other may be t itself.
//
// Errors:
//   - ErrOutOfBounds if n >= nin or m >= other.NumOutputs().
//   - ErrIncompatibleRanks if t.InputRank() != other.OutputRank().
//   - ErrForeignTensor if other is not a *Dense of t's network.
//   - ErrClosed if t or other is closed.
//
// Complexity: O(1).
func (t *Dense) SetInput(n int, other Tensor, m int) error {
	net := t.net
	net.mu.Lock()
	defer net.mu.Unlock()

	if t.closed {
		return net.misuse(fmt.Errorf("%s: %s: %w", ctxSetInput, t.id, ErrClosed))
	}
	if n < 0 || n >= t.nin {
		return net.misuse(fmt.Errorf("%s: input %d of %d: %w", ctxSetInput, n, t.nin, ErrOutOfBounds))
	}
	if isNilTensor(other) {
		t.unsetInput(n)
		return nil
	}
	peer, err := net.resolve(ctxSetInput, other)
	if err != nil {
		return net.misuse(err)
	}
	if m < 0 || m >= peer.nout {
		return net.misuse(fmt.Errorf("%s: peer output %d of %d: %w", ctxSetInput, m, peer.nout, ErrOutOfBounds))
	}
	if t.inrank != peer.outrank {
		return net.misuse(fmt.Errorf("%s: input rank %d, peer output rank %d: %w",
			ctxSetInput, t.inrank, peer.outrank, ErrIncompatibleRanks))
	}

	t.unsetInput(n)
	peer.unsetOutput(m)
	t.in[n] = link{peer: peer.id, port: m}
	peer.out[m] = link{peer: t.id, port: n}
	net.opts.logger.Debug("tensor: linked",
		slog.String("input", t.id.String()), slog.Int("input_port", n),
		slog.String("output", peer.id.String()), slog.Int("output_port", m))

	return nil
}

// SetOutput links output n of t to input m of other; the mirror image of
// SetInput with the rank check reversed (t.OutputRank() == other.InputRank()).
// A nil other unsets output n.
func (t *Dense) SetOutput(n int, other Tensor, m int) error {
	net := t.net
	net.mu.Lock()
	defer net.mu.Unlock()

	if t.closed {
		return net.misuse(fmt.Errorf("%s: %s: %w", ctxSetOutput, t.id, ErrClosed))
	}
	if n < 0 || n >= t.nout {
		return net.misuse(fmt.Errorf("%s: output %d of %d: %w", ctxSetOutput, n, t.nout, ErrOutOfBounds))
	}
	if isNilTensor(other) {
		t.unsetOutput(n)
		return nil
	}
	peer, err := net.resolve(ctxSetOutput, other)
	if err != nil {
		return net.misuse(err)
	}
	if m < 0 || m >= peer.nin {
		return net.misuse(fmt.Errorf("%s: peer input %d of %d: %w", ctxSetOutput, m, peer.nin, ErrOutOfBounds))
	}
	if t.outrank != peer.inrank {
		return net.misuse(fmt.Errorf("%s: output rank %d, peer input rank %d: %w",
			ctxSetOutput, t.outrank, peer.inrank, ErrIncompatibleRanks))
	}

	t.unsetOutput(n)
	peer.unsetInput(m)
	t.out[n] = link{peer: peer.id, port: m}
	peer.in[m] = link{peer: t.id, port: n}
	net.opts.logger.Debug("tensor: linked",
		slog.String("input", peer.id.String()), slog.Int("input_port", m),
		slog.String("output", t.id.String()), slog.Int("output_port", n))

	return nil
}

// unsetInput clears input n and the matching output slot on its peer.
// Caller must hold net.mu for writing.
func (t *Dense) unsetInput(n int) {
	l := t.in[n]
	if !l.isSet() {
		return
	}
	if peer, ok := t.net.tensors[l.peer]; ok {
		back := peer.out[l.port]
		if back.peer == t.id && back.port == n {
			peer.out[l.port] = link{}
		}
	}
	t.in[n] = link{}
}

// unsetOutput clears output n and the matching input slot on its peer.
// Caller must hold net.mu for writing.
func (t *Dense) unsetOutput(n int) {
	l := t.out[n]
	if !l.isSet() {
		return
	}
	if peer, ok := t.net.tensors[l.peer]; ok {
		back := peer.in[l.port]
		if back.peer == t.id && back.port == n {
			peer.in[l.port] = link{}
		}
	}
	t.out[n] = link{}
}

// inputLink returns in[n] after validating t and n. Caller holds net.mu.
func (t *Dense) inputLink(method string, n int) (link, error) {
	if t.closed {
		return link{}, fmt.Errorf("%s: %s: %w", method, t.id, ErrClosed)
	}
	if n < 0 || n >= t.nin {
		return link{}, fmt.Errorf("%s: input %d of %d: %w", method, n, t.nin, ErrOutOfBounds)
	}

	return t.in[n], nil
}

// outputLink returns out[n] after validating t and n. Caller holds net.mu.
func (t *Dense) outputLink(method string, n int) (link, error) {
	if t.closed {
		return link{}, fmt.Errorf("%s: %s: %w", method, t.id, ErrClosed)
	}
	if n < 0 || n >= t.nout {
		return link{}, fmt.Errorf("%s: output %d of %d: %w", method, n, t.nout, ErrOutOfBounds)
	}

	return t.out[n], nil
}

// peerOf resolves a link to its tensor, or an untyped nil when unset.
// Caller holds net.mu.
func (t *Dense) peerOf(l link) Tensor {
	if !l.isSet() {
		return nil
	}
	if p, ok := t.net.tensors[l.peer]; ok {
		return p
	}

	return nil
}

// InputTensor returns the tensor linked on input n, or nil if unset.
//
// Errors:
//   - ErrOutOfBounds if n >= nin; ErrClosed after Close.
func (t *Dense) InputTensor(n int) (Tensor, error) {
	t.net.mu.RLock()
	defer t.net.mu.RUnlock()

	l, err := t.inputLink(ctxInputTensor, n)
	if err != nil {
		return nil, t.net.misuse(err)
	}

	return t.peerOf(l), nil
}

// OutputTensor returns the tensor linked on output n, or nil if unset.
func (t *Dense) OutputTensor(n int) (Tensor, error) {
	t.net.mu.RLock()
	defer t.net.mu.RUnlock()

	l, err := t.outputLink(ctxOutputTensor, n)
	if err != nil {
		return nil, t.net.misuse(err)
	}

	return t.peerOf(l), nil
}

// InputNum returns the peer's output port linked on input n, or 0 if unset.
func (t *Dense) InputNum(n int) (int, error) {
	t.net.mu.RLock()
	defer t.net.mu.RUnlock()

	l, err := t.inputLink(ctxInputNum, n)
	if err != nil {
		return 0, t.net.misuse(err)
	}

	return l.port, nil
}

// OutputNum returns the peer's input port linked on output n, or 0 if unset.
func (t *Dense) OutputNum(n int) (int, error) {
	t.net.mu.RLock()
	defer t.net.mu.RUnlock()

	l, err := t.outputLink(ctxOutputNum, n)
	if err != nil {
		return 0, t.net.misuse(err)
	}

	return l.port, nil
}
