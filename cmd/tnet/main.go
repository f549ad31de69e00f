// Package main is the entry point for the tnet CLI.
//
// Usage:
//
//	tnet [flags] <command> [args]
//
// Commands:
//
//	graph     - Connectivity of a blueprint network around a seed tensor
//	entry     - Read one tensor entry
//	export    - Write a tensor's storage snapshot (msgpack)
//	inspect   - Decode a storage snapshot
//	generate  - Build a chain, ring or tree and report its connectivity
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tensornet/cmd/tnet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
