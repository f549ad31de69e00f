package tensor_test

import (
	"testing"

	"github.com/katalvlaran/tensornet/tensor"
)

// BenchmarkEntry measures a packed read on a 4-site rank-4 tensor.
func BenchmarkEntry(b *testing.B) {
	n := tensor.NewNetwork(tensor.WithLogger(quietLogger()))
	d, err := n.NewSquare(2, 2, 4)
	if err != nil {
		b.Fatal(err)
	}
	in, out := []int{3, 1}, []int{2, 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Entry(in, out)
	}
}

// BenchmarkSetInput measures relinking the same pair of ports.
func BenchmarkSetInput(b *testing.B) {
	n := tensor.NewNetwork(tensor.WithLogger(quietLogger()))
	x, _ := n.NewSquare(1, 1, 2)
	y, _ := n.NewSquare(1, 1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.SetInput(0, y, 0)
	}
}
