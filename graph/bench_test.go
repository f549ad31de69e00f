package graph_test

import (
	"testing"

	"github.com/katalvlaran/tensornet/graph"
	"github.com/katalvlaran/tensornet/tensor"
)

// buildChain links n single-site tensors head to tail.
func buildChain(b *testing.B, n int) *tensor.Dense {
	b.Helper()
	net := newNetwork()
	head, err := net.NewSquare(1, 1, Rank2)
	if err != nil {
		b.Fatal(err)
	}
	prev := head
	for i := 1; i < n; i++ {
		next, err := net.NewSquare(1, 1, Rank2)
		if err != nil {
			b.Fatal(err)
		}
		if err = next.SetInput(0, prev, 0); err != nil {
			b.Fatal(err)
		}
		prev = next
	}

	return head
}

// BenchmarkBuild_Chain10k walks a 10k chain; deep enough to matter for a
// recursive walker.
func BenchmarkBuild_Chain10k(b *testing.B) {
	head := buildChain(b, 10_000)
	logger := quietLogger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graph.Build(head, graph.WithLogger(logger)); err != nil {
			b.Fatal(err)
		}
	}
}
