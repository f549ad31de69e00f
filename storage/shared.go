// SPDX-License-Identifier: MIT

// Package storage - reference-counted ownership.
//
// A Shared owns exactly one Matrix on behalf of every tensor that views it
// (the original, its copies and its conjugate views). Each owner holds one
// reference; the buffer is dropped exactly once, on the release that brings
// the count to zero. Writes through any owner are immediately visible to all
// others: there is no snapshot isolation.
//
// Concurrency:
//   - mu guards refs and the buffer pointer. At/Set hold the read lock only
//     to pin the buffer; callers needing multi-cell atomicity lock externally.

package storage

import (
	"fmt"
	"sync"
)

// Shared is a reference-counted handle to one Matrix.
type Shared struct {
	mu   sync.RWMutex
	m    Matrix // nil once released
	refs int
}

// NewShared wraps m with a single reference held by the caller.
//
// Errors:
//   - ErrNilMatrix if m is nil.
func NewShared(m Matrix) (*Shared, error) {
	if m == nil {
		return nil, fmt.Errorf("NewShared: %w", ErrNilMatrix)
	}

	return &Shared{m: m, refs: 1}, nil
}

// Acquire registers one more owner and returns the same handle.
// Acquiring a released handle fails with ErrReleased.
func (s *Shared) Acquire() (*Shared, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m == nil {
		return nil, fmt.Errorf("Shared.Acquire: %w", ErrReleased)
	}
	s.refs++

	return s, nil
}

// Release drops one reference. It reports freed == true for the single call
// that dropped the last reference and released the buffer.
//
// Errors:
//   - ErrReleased if the buffer was already freed (double release).
func (s *Shared) Release() (freed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m == nil {
		return false, fmt.Errorf("Shared.Release: %w", ErrReleased)
	}
	s.refs--
	if s.refs > 0 {
		return false, nil
	}
	s.m = nil // last owner gone; let the buffer be collected

	return true, nil
}

// Refs returns the number of live owners (0 once released).
func (s *Shared) Refs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refs
}

// Released reports whether the buffer has been freed.
func (s *Shared) Released() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m == nil
}

// Dims returns the shape of the owned matrix, or (0, 0) once released.
func (s *Shared) Dims() (rows, cols int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.m == nil {
		return 0, 0
	}

	return s.m.Dims()
}

// At reads (i, j) from the owned matrix.
func (s *Shared) At(i, j int) (complex128, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.m == nil {
		return 0, fmt.Errorf("Shared.At(%d,%d): %w", i, j, ErrReleased)
	}

	return s.m.At(i, j)
}

// Set writes v at (i, j) in the owned matrix.
func (s *Shared) Set(i, j int, v complex128) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.m == nil {
		return fmt.Errorf("Shared.Set(%d,%d): %w", i, j, ErrReleased)
	}

	return s.m.Set(i, j, v)
}

// Snapshot encodes the owned matrix (see Encode).
func (s *Shared) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.m == nil {
		return nil, fmt.Errorf("Shared.Snapshot: %w", ErrReleased)
	}

	return Encode(s.m)
}
