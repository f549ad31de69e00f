// Package graph discovers the connected subnetwork around a seed tensor.
//
// What:
//
//   - Build(seed, opts...) walks every input and output link transitively
//     reachable from seed and returns a Graph snapshot holding:
//   - the vertex set: distinct tensors, by identity (Tensor.ID);
//   - the edge set: one Edge per physical link;
//   - the endpoint set: every unlinked port, the open boundary of the
//     subnetwork.
//
// Edge identity:
//
//	Each link is recorded once, from its input side only:
//	Edge{Input: a, InputPort: i, Output: b, OutputPort: m} where a's input i is
//	linked to b's output m. Visiting the same link from b's output records
//	nothing, so no link is ever counted twice. Two edges are equal iff all four
//	fields match. A self-loop yields one vertex and one edge.
//
// Traversal:
//
//	Depth-first with an explicit work stack (no recursion), so arbitrarily
//	deep chains cannot exhaust the goroutine stack. The discovered set keeps
//	every tensor from being expanded twice.
//
// Snapshot semantics:
//
//	A Graph holds no subscription to its tensors. After relinking, call
//	Rebuild to recompute it from the same seed.
//
// Complexity:
//
//   - Build/Rebuild: Time O(V + P), Memory O(V + P), P = total port count.
//
// Errors:
//
//   - ErrNilSeed  seed is nil
//   - errors from tensor link queries and the OnVisit hook, wrapped
package graph
