// Package main provides the CLI entrypoint for feedpipe.
//
// feedpipe imports XML feeds into record trees, resolves dotted paths in
// them, sorts their entries and runs single pipeline stages from the command
// line.
package main

import (
	"fmt"
	"os"

	"feedpipe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
