package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensornet/blueprint"
	"github.com/katalvlaran/tensornet/tensor"
)

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// app holds state shared by subcommands of one invocation.
type app struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can run commands without shared flag state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.Default()}

	root := &cobra.Command{
		Use:   "tnet",
		Short: "Inspect and build tensor networks",
		Long: `tnet - load tensor networks from YAML blueprints and inspect them.

Examples:
  # Connectivity around tensor u
  tnet graph -f net.yaml --seed u

  # One entry, one index per site
  tnet entry -f net.yaml -t u --in 0,1 --out 1,0

  # Storage snapshot of u, then read it back
  tnet export -f net.yaml -t u -o u.msgpack
  tnet inspect u.msgpack

  # A generated ring of 8 rank-2 tensors
  tnet generate ring --size 8 --rank 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		a.graphCmd(),
		a.entryCmd(),
		a.exportCmd(),
		a.inspectCmd(),
		a.generateCmd(),
	)

	return root
}

func (a *app) newNetwork() *tensor.Network {
	return tensor.NewNetwork(tensor.WithLogger(a.logger))
}

// load builds the blueprint at path into a fresh network.
func (a *app) load(path string) (*blueprint.Built, error) {
	if path == "" {
		return nil, fmt.Errorf("blueprint file is required (-f)")
	}
	bp, err := blueprint.Load(path)
	if err != nil {
		return nil, err
	}

	return bp.Build(a.newNetwork())
}

// lookup returns the tensor called name, or the first declared one when
// name is empty.
func lookup(b *blueprint.Built, name string) (*tensor.Dense, string, error) {
	if name == "" {
		name = b.Order[0]
	}
	t, ok := b.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("no tensor named %q", name)
	}

	return t, name, nil
}
