// SPDX-License-Identifier: MIT
//
// File: blueprint.go
// Role: YAML document model, decoding, validation and Build.
//
// Determinism:
//   - Tensors are created in document order, then entries, then links in
//     document order. A later link reusing a port replaces the earlier one.

package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tensornet/tensor"
)

// Blueprint is a decoded network description.
type Blueprint struct {
	Tensors []TensorDecl `yaml:"tensors"`
	Links   []LinkDecl   `yaml:"links,omitempty"`
}

// TensorDecl declares one tensor.
type TensorDecl struct {
	Name        string      `yaml:"name"`
	Inputs      int         `yaml:"inputs,omitempty"`
	Outputs     int         `yaml:"outputs,omitempty"`
	InRank      int         `yaml:"in_rank,omitempty"`
	OutRank     int         `yaml:"out_rank,omitempty"`
	ConjugateOf string      `yaml:"conjugate_of,omitempty"`
	CopyOf      string      `yaml:"copy_of,omitempty"`
	Entries     []EntryDecl `yaml:"entries,omitempty"`
}

// EntryDecl sets a single element, addressed per site.
type EntryDecl struct {
	In  []int   `yaml:"in,flow"`
	Out []int   `yaml:"out,flow"`
	Re  float64 `yaml:"re"`
	Im  float64 `yaml:"im,omitempty"`
}

// Value returns the entry as a complex number.
func (e EntryDecl) Value() complex128 { return complex(e.Re, e.Im) }

// LinkDecl connects output Output of From to input Input of To.
type LinkDecl struct {
	From   string `yaml:"from"`
	Output int    `yaml:"output"`
	To     string `yaml:"to"`
	Input  int    `yaml:"input"`
}

// Built is the result of Build.
type Built struct {
	// Tensors maps declared names to the created tensors.
	Tensors map[string]*tensor.Dense
	// Order lists names in declaration order.
	Order []string
}

// Get returns the tensor declared under name.
func (b *Built) Get(name string) (*tensor.Dense, bool) {
	t, ok := b.Tensors[name]

	return t, ok
}

// Parse decodes a YAML document and validates it. Unknown fields are
// rejected.
func Parse(data []byte) (*Blueprint, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var bp Blueprint
	if err := dec.Decode(&bp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidBlueprint)
		}
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidBlueprint, err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}

	return &bp, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	bp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return bp, nil
}

// Marshal encodes b back to YAML.
func (b *Blueprint) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks names, references and signs. Shape compatibility of links
// and entry bounds are left to Build, where the tensor package enforces them.
func (b *Blueprint) Validate() error {
	if len(b.Tensors) == 0 {
		return fmt.Errorf("Validate: no tensors: %w", ErrInvalidBlueprint)
	}

	declared := make(map[string]struct{}, len(b.Tensors))
	for i, td := range b.Tensors {
		if td.Name == "" {
			return fmt.Errorf("Validate: tensor #%d: empty name: %w", i, ErrInvalidBlueprint)
		}
		if _, dup := declared[td.Name]; dup {
			return fmt.Errorf("Validate: tensor %q declared twice: %w", td.Name, ErrInvalidBlueprint)
		}

		switch src := td.source(); {
		case td.CopyOf != "" && td.ConjugateOf != "":
			return fmt.Errorf("Validate: tensor %q: copy_of and conjugate_of are exclusive: %w",
				td.Name, ErrInvalidBlueprint)
		case src != "":
			if _, ok := declared[src]; !ok {
				return fmt.Errorf("Validate: tensor %q: source %q not declared before it: %w",
					td.Name, src, ErrInvalidBlueprint)
			}
		case td.Inputs < 0 || td.Outputs < 0 || td.InRank < 0 || td.OutRank < 0:
			return fmt.Errorf("Validate: tensor %q: negative shape: %w", td.Name, ErrInvalidBlueprint)
		}
		declared[td.Name] = struct{}{}
	}

	for i, ld := range b.Links {
		if _, ok := declared[ld.From]; !ok {
			return fmt.Errorf("Validate: link #%d: unknown tensor %q: %w", i, ld.From, ErrInvalidBlueprint)
		}
		if _, ok := declared[ld.To]; !ok {
			return fmt.Errorf("Validate: link #%d: unknown tensor %q: %w", i, ld.To, ErrInvalidBlueprint)
		}
		if ld.Output < 0 || ld.Input < 0 {
			return fmt.Errorf("Validate: link #%d: negative port: %w", i, ErrInvalidBlueprint)
		}
	}

	return nil
}

// source returns the copy or conjugate source, if any.
func (td TensorDecl) source() string {
	if td.CopyOf != "" {
		return td.CopyOf
	}

	return td.ConjugateOf
}

// Build validates b and creates its tensors and links in net. On error every
// tensor created so far is closed, so net is left as it was.
func (b *Blueprint) Build(net *tensor.Network) (*Built, error) {
	if net == nil {
		return nil, fmt.Errorf("Build: nil network: %w", ErrInvalidBlueprint)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	out := &Built{
		Tensors: make(map[string]*tensor.Dense, len(b.Tensors)),
		Order:   make([]string, 0, len(b.Tensors)),
	}
	if err := b.build(net, out); err != nil {
		for _, name := range out.Order {
			_ = out.Tensors[name].Close()
		}
		return nil, err
	}

	net.Logger().Debug("blueprint: built",
		slog.Int("tensors", len(out.Order)),
		slog.Int("links", len(b.Links)))

	return out, nil
}

func (b *Blueprint) build(net *tensor.Network, out *Built) error {
	for _, td := range b.Tensors {
		t, err := td.create(net, out)
		if err != nil {
			return fmt.Errorf("Build: tensor %q: %w", td.Name, err)
		}
		out.Tensors[td.Name] = t
		out.Order = append(out.Order, td.Name)

		for j, e := range td.Entries {
			if err = t.SetEntry(e.In, e.Out, e.Value()); err != nil {
				return fmt.Errorf("Build: tensor %q: entry #%d: %w", td.Name, j, err)
			}
		}
	}

	for i, ld := range b.Links {
		from, to := out.Tensors[ld.From], out.Tensors[ld.To]
		if err := to.SetInput(ld.Input, from, ld.Output); err != nil {
			return fmt.Errorf("Build: link #%d %s.out[%d] -> %s.in[%d]: %w",
				i, ld.From, ld.Output, ld.To, ld.Input, err)
		}
	}

	return nil
}

// create makes the tensor for td; sources are already in out.
func (td TensorDecl) create(net *tensor.Network, out *Built) (*tensor.Dense, error) {
	switch {
	case td.CopyOf != "":
		return net.CopyOf(out.Tensors[td.CopyOf])
	case td.ConjugateOf != "":
		return net.ConjugateOf(out.Tensors[td.ConjugateOf])
	default:
		return net.New(td.Inputs, td.Outputs, td.InRank, td.OutRank)
	}
}
