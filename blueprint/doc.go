// SPDX-License-Identifier: MIT
//
// Package blueprint describes tensor networks as data and builds them.
//
// What:
//
//   - A Blueprint is a YAML document listing tensors (shape, optional copy or
//     conjugate source, explicit entries) and the links between them.
//   - Parse/Load decode and validate a document; Build materializes it inside
//     a *tensor.Network and returns the tensors by name.
//   - Chain, Ring and BinaryTree generate common topologies directly.
//
// Document layout:
//
//	tensors:
//	  - name: u
//	    inputs: 2
//	    outputs: 2
//	    in_rank: 2
//	    out_rank: 2
//	    entries:
//	      - {in: [0, 1], out: [1, 0], re: 0.5, im: -1}
//	  - name: ud
//	    conjugate_of: u
//	links:
//	  - {from: u, output: 0, to: ud, input: 1}
//
// A link entry connects output `output` of tensor `from` to input `input` of
// tensor `to`. A tensor with copy_of or conjugate_of takes its shape from the
// source, which must be declared earlier; its own shape fields are ignored.
//
// Errors:
//
//   - ErrInvalidBlueprint   malformed or inconsistent document
//   - ErrTooFewTensors      generator size below its minimum
//   - tensor package errors from Build, wrapped with the tensor name
package blueprint
