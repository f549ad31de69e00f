// Package storage provides the matrix storage that backs every tensor in a
// network: a rectangular complex128 buffer addressed by (row, col), allocated
// as the identity, and shared between tensors through a reference-counted
// handle.
//
// What:
//
//   - Matrix: the minimal contract a backing buffer must satisfy (Dims/At/Set).
//   - CDense: the production buffer, a thin safe wrapper over gonum's mat.CDense.
//   - Shared: a reference-counted owner of one Matrix. The buffer is freed
//     exactly once, when the last owner releases it.
//   - Encode/Decode: msgpack snapshots of a Matrix for export and reload.
//
// Errors:
//
//   - ErrBadShape    negative dimensions or a malformed snapshot
//   - ErrOutOfRange  (row, col) outside the buffer
//   - ErrReleased    access through a Shared whose buffer was freed
//   - ErrNilMatrix   nil Matrix passed where one is required
//
// Complexity:
//
//   - NewIdentity: O(r*c); At/Set: O(1); Encode/Decode: O(r*c).
package storage
