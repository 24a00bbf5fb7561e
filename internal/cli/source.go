package cli

import (
	"github.com/spf13/cobra"

	"feedpipe/internal/xmltree"
	"feedpipe/record"
)

// loadDocument fetches and imports the XML document at src.
func loadDocument(cmd *cobra.Command, src string) (record.Value, error) {
	el, err := xmltree.Fetch(cmd.Context(), src)
	if err != nil {
		return record.Null(), err
	}

	doc := xmltree.Import(el)
	newLogger(cmd).Verbose("imported %s as %s", src, doc.Kind())

	return doc, nil
}
