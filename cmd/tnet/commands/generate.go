package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/blueprint"
	"github.com/katalvlaran/tensornet/graph"
	"github.com/katalvlaran/tensornet/tensor"
)

// generators maps topology names to their constructors.
var generators = map[string]func(*tensor.Network, int, int) ([]*tensor.Dense, error){
	"chain": blueprint.Chain,
	"ring":  blueprint.Ring,
	"tree":  blueprint.BinaryTree,
}

func (a *app) generateCmd() *cobra.Command {
	var size, rank int

	cmd := &cobra.Command{
		Use:       "generate chain|ring|tree",
		Short:     "Build a generated topology and report its connectivity",
		Long:      "Build a generated topology. For tree, --size is the depth.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"chain", "ring", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := generators[args[0]](a.newNetwork(), size, rank)
			if err != nil {
				return err
			}
			g, err := graph.Build(ts[0], graph.WithLogger(a.logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d tensors\n", args[0], len(ts))
			fmt.Fprintf(w, "vertices:  %d\n", g.VertexCount())
			fmt.Fprintf(w, "edges:     %d\n", g.EdgeCount())
			fmt.Fprintf(w, "endpoints: %d\n", g.EndpointCount())
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "number of tensors (tree: depth)")
	cmd.Flags().IntVar(&rank, "rank", 2, "rank of every site")

	return cmd
}
