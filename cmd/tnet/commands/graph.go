package commands

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/blueprint"
	"github.com/katalvlaran/tensornet/graph"
	"github.com/katalvlaran/tensornet/tensor"
)

func (a *app) graphCmd() *cobra.Command {
	var file, seed string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print vertices, edges and endpoints reachable from a seed tensor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			built, err := a.load(file)
			if err != nil {
				return err
			}
			t, _, err := lookup(built, seed)
			if err != nil {
				return err
			}
			g, err := graph.Build(t, graph.WithLogger(a.logger))
			if err != nil {
				return err
			}

			printGraph(cmd.OutOrStdout(), g, namesOf(built))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "blueprint YAML file")
	cmd.Flags().StringVar(&seed, "seed", "", "seed tensor name (default: first declared)")

	return cmd
}

// namesOf maps tensor IDs back to declared names.
func namesOf(b *blueprint.Built) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(b.Order))
	for _, n := range b.Order {
		names[b.Tensors[n].ID()] = n
	}

	return names
}

// nameOf falls back to the ID for unnamed tensors.
func nameOf(names map[uuid.UUID]string, t tensor.Tensor) string {
	if n, ok := names[t.ID()]; ok {
		return n
	}

	return t.ID().String()
}

func printGraph(w io.Writer, g *graph.Graph, names map[uuid.UUID]string) {
	fmt.Fprintf(w, "vertices:  %d\n", g.VertexCount())
	fmt.Fprintf(w, "edges:     %d\n", g.EdgeCount())
	fmt.Fprintf(w, "endpoints: %d\n", g.EndpointCount())

	for _, e := range g.Edges() {
		fmt.Fprintf(w, "  %s.in[%d] <- %s.out[%d]\n",
			nameOf(names, e.Input), e.InputPort, nameOf(names, e.Output), e.OutputPort)
	}
}
