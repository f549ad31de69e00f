// Package graph defines the edge, endpoint and option types of a
// connectivity snapshot.
package graph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/tensornet/tensor"
)

// ErrNilSeed is returned when Build is called with a nil seed tensor.
var ErrNilSeed = errors.New("graph: seed tensor is nil")

// Side tells an input port from an output port.
type Side int

const (
	Input  Side = iota // Input: an input site of a tensor.
	Output             // Output: an output site of a tensor.
)

// String returns "input" or "output".
func (s Side) String() string {
	if s == Input {
		return "input"
	}

	return "output"
}

// Edge is one link, recorded from its input side: input InputPort of Input
// is linked to output OutputPort of Output.
type Edge struct {
	Input      tensor.Tensor
	InputPort  int
	Output     tensor.Tensor
	OutputPort int
}

// Equal reports whether e and o describe the same link: the same tensors,
// by identity, and the same ports.
func (e Edge) Equal(o Edge) bool { return e.key() == o.key() }

// String renders the edge as "in:port<-out:port" using tensor IDs.
func (e Edge) String() string {
	return fmt.Sprintf("%s:%d<-%s:%d", e.Input.ID(), e.InputPort, e.Output.ID(), e.OutputPort)
}

// edgeKey is the comparable identity of an Edge.
type edgeKey struct {
	in      uuid.UUID
	inPort  int
	out     uuid.UUID
	outPort int
}

func (e Edge) key() edgeKey {
	return edgeKey{in: e.Input.ID(), inPort: e.InputPort, out: e.Output.ID(), outPort: e.OutputPort}
}

// Endpoint is an unlinked port on the boundary of the subnetwork.
type Endpoint struct {
	Tensor tensor.Tensor
	Port   int
	Side   Side
}

// Option configures Build.
type Option func(*Options)

// Options holds configurable parameters for Build.
type Options struct {
	// OnVisit, if non-nil, is invoked once per tensor when it is expanded.
	// Returning an error aborts the build with that error.
	OnVisit func(t tensor.Tensor) error

	// Logger receives a debug record per completed build.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no hook and slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(t tensor.Tensor) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithLogger sets the logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
