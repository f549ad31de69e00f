package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/storage"
)

func (a *app) exportCmd() *cobra.Command {
	var file, name, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a tensor's storage snapshot as msgpack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return fmt.Errorf("output file is required (-o)")
			}
			built, err := a.load(file)
			if err != nil {
				return err
			}
			t, tname, err := lookup(built, name)
			if err != nil {
				return err
			}
			data, err := t.Snapshot()
			if err != nil {
				return err
			}
			if err = os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes) to %s\n", tname, len(data), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "blueprint YAML file")
	cmd.Flags().StringVarP(&name, "tensor", "t", "", "tensor name (default: first declared)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file to write")

	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Decode a storage snapshot and print its non-zero entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, err := storage.Decode(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			rows, cols := m.Dims()
			fmt.Fprintf(w, "%dx%d\n", rows, cols)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					v, err := m.At(i, j)
					if err != nil {
						return err
					}
					if v != 0 || all {
						fmt.Fprintf(w, "  [%d,%d] %v\n", i, j, v)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print zero entries too")

	return cmd
}
