package cli

import (
	"github.com/spf13/cobra"

	"feedpipe/record"
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file-or-url> <path>",
		Short: "Resolve a dotted path in an imported document",
		Example: `  feedpipe get feed.xml channel.title
  feedpipe get feed.xml channel.item.0.link.content`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			return printValue(cmd, record.Get(doc.Raw(), args[1]))
		},
	}
}
