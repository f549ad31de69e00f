// SPDX-License-Identifier: MIT

package tensor

import (
	"log/slog"

	"github.com/katalvlaran/tensornet/storage"
)

const panicNilAllocator = "tensor: WithAllocator: allocator must not be nil"

// Option configures a Network at construction.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	alloc         storage.Allocator
	panicOnMisuse bool
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		alloc:  storage.Allocate,
	}
}

// WithLogger routes network diagnostics to l.
// Passing nil has no effect (slog.Default() is retained).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAllocator replaces the matrix allocator used by New and NewSquare.
// The allocator must return an identity-initialized matrix.
// Panics if alloc is nil.
func WithAllocator(alloc storage.Allocator) Option {
	if alloc == nil {
		panic(panicNilAllocator)
	}

	return func(o *options) {
		o.alloc = alloc
	}
}

// WithPanicOnMisuse makes every contract violation (wrong length, out of
// bounds, incompatible ranks, foreign or closed tensor) panic with the
// wrapped error after it is logged, instead of being returned.
func WithPanicOnMisuse() Option {
	return func(o *options) {
		o.panicOnMisuse = true
	}
}
