// Package tensor models the tensors of a tensor network: multi-index complex
// arrays with designated input and output index groups, wired to each other
// port by port.
//
// What:
//
//   - Tensor: the capability interface (entries, links, link queries, matrix
//     descriptor). *Dense is the production implementation; test doubles
//     implement the same interface.
//   - Network: the arena that owns *Dense tensors. Tensors are addressed by
//     stable uuid handles and a link is a plain (handle, port) pair, so a link
//     never implies ownership and closing a linked tensor cannot leave a
//     dangling reference behind.
//   - MatrixView: a descriptor (site counts, ranks, conjugate flag, shared
//     storage) from which a copy or a conjugate view can be built.
//
// Shape:
//
//	A tensor with nin input sites of rank inrank and nout output sites of rank
//	outrank is stored as an inrank^nin × outrank^nout matrix. A side with no
//	sites has dimension 1, never 0. Multi-indices are packed with the packing
//	package (first index most significant).
//
// Links:
//
//	Input n of A linked to output m of B is stored on both ends:
//	A.in[n] = (B, m) and B.out[m] = (A, n). Both halves are written under the
//	network's write lock, so a half-linked state is never observable. Linking
//	requires the connected ranks to match (A.inrank == B.outrank). A tensor
//	may link to itself.
//
// Conjugate views:
//
//	A conjugate view shares the storage of its origin with site counts and
//	ranks swapped and the conjugate flag inverted. Access transposes the
//	packed (row, col) pair and conjugates the value on both read and write;
//	nothing is materialized.
//
// Errors:
//
//   - ErrWrongLength        index list length differs from the site count
//   - ErrOutOfBounds        index value or port number out of range
//   - ErrIncompatibleRanks  linking ports whose ranks differ
//   - ErrNilTensor          nil tensor where one is required
//   - ErrForeignTensor      peer is not a *Dense of the same network
//   - ErrClosed             operation on a closed tensor
//   - ErrBadShape           negative shape or inconsistent MatrixView
//
// Contract violations are logged through the network logger and returned;
// WithPanicOnMisuse turns them into panics instead.
package tensor
