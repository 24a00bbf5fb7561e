package cli

import (
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var entries bool

	cmd := &cobra.Command{
		Use:   "import <file-or-url>",
		Short: "Convert an XML document into a record tree",
		Long: `Convert an XML document into a record tree.

Attributes become keys, repeated child elements become lists, and element
text is kept under "content" unless the element is a plain text leaf.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			if entries {
				return printValue(cmd, feedEntries(doc))
			}

			dump(cmd, "record", doc.Raw())

			return printValue(cmd, doc.Raw())
		},
	}

	cmd.Flags().BoolVar(&entries, "entries", false, "Print only the feed entries (RSS, RDF or Atom)")

	return cmd
}
