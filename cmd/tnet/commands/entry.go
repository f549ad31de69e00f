package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) entryCmd() *cobra.Command {
	var (
		file, name string
		in, out    []int
	)

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Print one entry of a tensor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			built, err := a.load(file)
			if err != nil {
				return err
			}
			t, _, err := lookup(built, name)
			if err != nil {
				return err
			}
			v, err := t.Entry(in, out)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "blueprint YAML file")
	cmd.Flags().StringVarP(&name, "tensor", "t", "", "tensor name (default: first declared)")
	cmd.Flags().IntSliceVar(&in, "in", nil, "input site indices, comma separated")
	cmd.Flags().IntSliceVar(&out, "out", nil, "output site indices, comma separated")

	return cmd
}
