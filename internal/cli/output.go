package cli

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// printValue writes v to the command's output in the selected format.
func printValue(cmd *cobra.Command, v any) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	var data []byte

	switch format {
	case formatYAML:
		data, err = yaml.Marshal(v)
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatYAML, formatJSON)
	}

	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}

// dump logs a Go-syntax view of v at verbose level.
func dump(cmd *cobra.Command, label string, v any) {
	if !getVerboseFlag(cmd) {
		return
	}

	newLogger(cmd).Verbose("%s:\n%s", label, spew.Sdump(v))
}
