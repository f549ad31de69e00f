// SPDX-License-Identifier: MIT

package blueprint

import "errors"

// ErrInvalidBlueprint indicates a document that cannot describe a network:
// undecodable YAML, unknown fields, empty or duplicate names, dangling
// references or negative shape fields.
var ErrInvalidBlueprint = errors.New("blueprint: invalid blueprint")

// ErrTooFewTensors indicates a generator size below the allowed minimum.
var ErrTooFewTensors = errors.New("blueprint: parameter too small")
