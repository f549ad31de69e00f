package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/tensornet/tensor"
)

// ExampleNetwork shows construction, linking and a conjugate view.
func ExampleNetwork() {
	net := tensor.NewNetwork(tensor.WithLogger(quietLogger()))

	// Two gates on a qubit chain: 2 inputs and 2 outputs of rank 2 each.
	u, _ := net.NewSquare(2, 2, 2)
	w, _ := net.NewSquare(2, 2, 2)

	// Output 0 of w feeds input 1 of u.
	_ = u.SetInput(1, w, 0)
	peer, _ := w.OutputTensor(0)
	num, _ := w.OutputNum(0)
	fmt.Println(peer.ID() == u.ID(), num)

	// Entries are addressed by one index per site.
	_ = u.SetEntry([]int{0, 1}, []int{1, 0}, complex(0, 1))
	v, _ := u.Entry([]int{0, 1}, []int{1, 0})
	fmt.Println(v)

	// The conjugate view swaps the index groups and conjugates the value.
	ud, _ := net.ConjugateOf(u)
	v, _ = ud.Entry([]int{1, 0}, []int{0, 1})
	fmt.Println(v, u.StorageRefs())

	// Output:
	// true 1
	// (0+1i)
	// (0-1i) 2
}
