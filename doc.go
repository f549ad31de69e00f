// Package tensornet is the root of a small tensor network toolkit: tensors
// with packed multi-index storage, bidirectional links between their sites,
// shared-storage copy and conjugate views, and connectivity discovery.
//
// Subpackages:
//
//	storage/    - complex matrix storage (gonum CDense), refcounted sharing,
//	              msgpack snapshots
//	packing/    - mixed-radix index packing (Dim, Pack, Unpack)
//	tensor/     - Tensor contract, Network arena, Dense tensors and links
//	graph/      - DFS discovery of the subnetwork around a seed tensor
//	blueprint/  - YAML network descriptions and topology generators
//	cmd/tnet/   - command line driver
//
// Quick start:
//
//	net := tensor.NewNetwork()
//	u, _ := net.NewSquare(2, 2, 2)      // 2 inputs, 2 outputs, rank 2
//	w, _ := net.NewSquare(2, 2, 2)
//	_ = u.SetInput(1, w, 0)             // w.out[0] -> u.in[1]
//	ud, _ := net.ConjugateOf(u)         // shares u's storage
//	g, _ := graph.Build(u)
//	fmt.Println(g.VertexCount(), g.EdgeCount(), ud.Conjugate())
//
// Errors are package sentinels wrapped with call context; match them with
// errors.Is. Diagnostics go to an injected *slog.Logger.
package tensornet
