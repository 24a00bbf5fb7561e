// Package cli implements the feedpipe command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedpipe/internal/logging"
	"feedpipe/pipe"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

const rootLong = `feedpipe reads RSS, RDF and Atom feeds (or any XML document) into record
trees and runs pipeline stages over them.

Records are addressed with dotted paths such as "channel.item.0.title".
The segments "value", "content" and "utime" fall back to the current node,
so "title.content" works whether <title> carried attributes or not.

Exit Codes:
  0  - Success
  1  - Error`

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "feedpipe",
		Short:         "Address, transform and sort feed records",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().StringP("output", "o", formatYAML, "Output format: yaml or json")

	root.AddCommand(
		newImportCommand(),
		newGetCommand(),
		newSortCommand(),
		newRunCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}

	return verbose
}

func newLogger(cmd *cobra.Command) pipe.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "feedpipe %s\n", Version)
			return err
		},
	}
}
