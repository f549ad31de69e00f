// Package graph implements the explicit-stack depth-first discovery behind
// Build and Rebuild.
package graph

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/tensornet/tensor"
)

// Graph is a snapshot of the subnetwork reachable from a seed tensor.
// It is not safe for concurrent Rebuild; concurrent reads are fine.
type Graph struct {
	seed tensor.Tensor
	opts Options

	vertices  map[uuid.UUID]tensor.Tensor
	edges     map[edgeKey]Edge
	endpoints []Endpoint
}

// walker carries the state of one traversal.
type walker struct {
	opts      Options
	vertices  map[uuid.UUID]tensor.Tensor
	edges     map[edgeKey]Edge
	endpoints []Endpoint
	stack     []tensor.Tensor
}

// Build discovers every tensor reachable from seed through input or output
// links, together with the links among them and their unlinked ports.
//
// Errors:
//   - ErrNilSeed if seed is nil.
//   - wrapped errors from link queries or the OnVisit hook.
func Build(seed tensor.Tensor, opts ...Option) (*Graph, error) {
	if isNil(seed) {
		return nil, ErrNilSeed
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g := &Graph{seed: seed, opts: o}
	if err := g.Rebuild(); err != nil {
		return nil, err
	}

	return g, nil
}

// Rebuild recomputes the snapshot from the original seed. On error the
// previous snapshot is kept.
func (g *Graph) Rebuild() error {
	w := &walker{
		opts:     g.opts,
		vertices: make(map[uuid.UUID]tensor.Tensor),
		edges:    make(map[edgeKey]Edge),
	}
	if err := w.run(g.seed); err != nil {
		return err
	}

	g.vertices, g.edges, g.endpoints = w.vertices, w.edges, w.endpoints
	g.opts.Logger.Debug("graph: built",
		slog.String("seed", g.seed.ID().String()),
		slog.Int("vertices", len(g.vertices)),
		slog.Int("edges", len(g.edges)),
		slog.Int("endpoints", len(g.endpoints)))

	return nil
}

// discover marks t and schedules it for expansion unless already seen.
func (w *walker) discover(t tensor.Tensor) {
	id := t.ID()
	if _, seen := w.vertices[id]; seen {
		return
	}
	w.vertices[id] = t
	w.stack = append(w.stack, t)
}

// run drains the work stack starting from seed.
func (w *walker) run(seed tensor.Tensor) error {
	w.discover(seed)

	for len(w.stack) > 0 {
		t := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(t); err != nil {
				return fmt.Errorf("graph: OnVisit hook for %s: %w", t.ID(), err)
			}
		}
		if err := w.expandInputs(t); err != nil {
			return err
		}
		if err := w.expandOutputs(t); err != nil {
			return err
		}
	}

	return nil
}

// expandInputs records one edge per linked input (the canonical side of a
// link) and an endpoint per unlinked input.
func (w *walker) expandInputs(t tensor.Tensor) error {
	for i := 0; i < t.NumInputs(); i++ {
		adj, err := t.InputTensor(i)
		if err != nil {
			return fmt.Errorf("graph: InputTensor(%d) of %s: %w", i, t.ID(), err)
		}
		if isNil(adj) {
			w.endpoints = append(w.endpoints, Endpoint{Tensor: t, Port: i, Side: Input})
			continue
		}
		m, err := t.InputNum(i)
		if err != nil {
			return fmt.Errorf("graph: InputNum(%d) of %s: %w", i, t.ID(), err)
		}

		e := Edge{Input: t, InputPort: i, Output: adj, OutputPort: m}
		w.edges[e.key()] = e
		w.discover(adj)
	}

	return nil
}

// expandOutputs only discovers: the link is recorded from its input side
// when the peer is expanded.
func (w *walker) expandOutputs(t tensor.Tensor) error {
	for j := 0; j < t.NumOutputs(); j++ {
		adj, err := t.OutputTensor(j)
		if err != nil {
			return fmt.Errorf("graph: OutputTensor(%d) of %s: %w", j, t.ID(), err)
		}
		if isNil(adj) {
			w.endpoints = append(w.endpoints, Endpoint{Tensor: t, Port: j, Side: Output})
			continue
		}
		w.discover(adj)
	}

	return nil
}

// Seed returns the tensor the graph was built from.
func (g *Graph) Seed() tensor.Tensor { return g.seed }

// VertexCount returns the number of distinct tensors discovered.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct links discovered.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EndpointCount returns the number of unlinked ports.
func (g *Graph) EndpointCount() int { return len(g.endpoints) }

// HasVertex reports whether t (by identity) belongs to the snapshot.
func (g *Graph) HasVertex(t tensor.Tensor) bool {
	if isNil(t) {
		return false
	}
	_, ok := g.vertices[t.ID()]

	return ok
}

// HasEdge reports whether e belongs to the snapshot.
func (g *Graph) HasEdge(e Edge) bool {
	if isNil(e.Input) || isNil(e.Output) {
		return false
	}
	_, ok := g.edges[e.key()]

	return ok
}

// AllVertices iterates the vertex set in no particular order.
func (g *Graph) AllVertices() iter.Seq[tensor.Tensor] {
	return maps.Values(g.vertices)
}

// AllEdges iterates the edge set in no particular order.
func (g *Graph) AllEdges() iter.Seq[Edge] {
	return maps.Values(g.edges)
}

// Vertices returns the vertex set sorted by ID.
func (g *Graph) Vertices() []tensor.Tensor {
	out := slices.Collect(g.AllVertices())
	slices.SortFunc(out, func(a, b tensor.Tensor) int {
		return cmp.Compare(a.ID().String(), b.ID().String())
	})

	return out
}

// Edges returns the edge set sorted by (input ID, input port).
// Input side plus port is unique per link, so the order is total.
func (g *Graph) Edges() []Edge {
	out := slices.Collect(g.AllEdges())
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.Input.ID().String(), b.Input.ID().String()); c != 0 {
			return c
		}
		return cmp.Compare(a.InputPort, b.InputPort)
	})

	return out
}

// Endpoints returns a copy of the unlinked ports in discovery order.
func (g *Graph) Endpoints() []Endpoint {
	return slices.Clone(g.endpoints)
}

// isNil reports whether t is nil, including a typed nil pointer of any
// Tensor implementation.
func isNil(t tensor.Tensor) bool {
	if t == nil {
		return true
	}
	if d, ok := t.(*tensor.Dense); ok {
		return d == nil
	}
	v := reflect.ValueOf(t)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
