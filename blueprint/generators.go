// SPDX-License-Identifier: MIT
//
// File: generators.go
// Role: Programmatic topologies (Chain, Ring, BinaryTree).
//
// Contract:
//   - Every tensor is square with the given rank on all sites.
//   - Tensors are returned in creation order; links run from index i-1 (or
//     the parent) into index i, output side to input side.
//   - On error every tensor created so far is closed.
//
// Complexity:
//   - Time O(n * rank^2) for allocation, O(n) links.

package blueprint

import (
	"fmt"

	"github.com/katalvlaran/tensornet/tensor"
)

const (
	methodChain      = "Chain"
	methodRing       = "Ring"
	methodBinaryTree = "BinaryTree"

	minChainTensors = 1
	minRingTensors  = 1
	minTreeDepth    = 1
	maxTreeDepth    = 24
)

// Chain creates n tensors with one input and one output each, where input 0
// of tensor i is linked to output 0 of tensor i-1. Both ends stay open.
func Chain(net *tensor.Network, n, rank int) ([]*tensor.Dense, error) {
	if n < minChainTensors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainTensors, ErrTooFewTensors)
	}

	ts, err := makeSquare(methodChain, net, n, 1, 1, rank)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = ts[i].SetInput(0, ts[i-1], 0); err != nil {
			closeAll(ts)
			return nil, fmt.Errorf("%s: link %d->%d: %w", methodChain, i-1, i, err)
		}
	}

	return ts, nil
}

// Ring is Chain with output 0 of the last tensor linked back into input 0
// of the first. A ring of one is a self-loop.
func Ring(net *tensor.Network, n, rank int) ([]*tensor.Dense, error) {
	if n < minRingTensors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingTensors, ErrTooFewTensors)
	}

	ts, err := makeSquare(methodRing, net, n, 1, 1, rank)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		if err = ts[i].SetInput(0, ts[prev], 0); err != nil {
			closeAll(ts)
			return nil, fmt.Errorf("%s: link %d->%d: %w", methodRing, prev, i, err)
		}
	}

	return ts, nil
}

// BinaryTree creates a complete binary tree of the given depth: 2^depth-1
// tensors with one input and two outputs each, numbered in heap order. Node
// k (1-based) feeds output k%2 of node k/2 into its input 0; the root input
// and the leaf outputs stay open.
func BinaryTree(net *tensor.Network, depth, rank int) ([]*tensor.Dense, error) {
	if depth < minTreeDepth {
		return nil, fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewTensors)
	}
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, tensor.ErrBadShape)
	}

	n := (1 << depth) - 1
	ts, err := makeSquare(methodBinaryTree, net, n, 1, 2, rank)
	if err != nil {
		return nil, err
	}
	for k := 2; k <= n; k++ {
		parent := ts[k/2-1]
		if err = ts[k-1].SetInput(0, parent, k%2); err != nil {
			closeAll(ts)
			return nil, fmt.Errorf("%s: link %d->%d: %w", methodBinaryTree, k/2, k, err)
		}
	}

	return ts, nil
}

// makeSquare allocates n unlinked tensors of one shape.
func makeSquare(method string, net *tensor.Network, n, nin, nout, rank int) ([]*tensor.Dense, error) {
	if net == nil {
		return nil, fmt.Errorf("%s: nil network: %w", method, ErrInvalidBlueprint)
	}

	ts := make([]*tensor.Dense, 0, n)
	for i := 0; i < n; i++ {
		t, err := net.NewSquare(nin, nout, rank)
		if err != nil {
			closeAll(ts)
			return nil, fmt.Errorf("%s: tensor %d: %w", method, i, err)
		}
		ts = append(ts, t)
	}

	return ts, nil
}

func closeAll(ts []*tensor.Dense) {
	for _, t := range ts {
		_ = t.Close()
	}
}
