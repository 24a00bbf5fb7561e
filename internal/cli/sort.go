package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedpipe/internal/xmltree"
	"feedpipe/record"
)

func newSortCommand() *cobra.Command {
	var (
		columns []string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "sort <file-or-url>",
		Short: "Sort feed entries by one or more keys",
		Long: `Sort feed entries by one or more keys.

Each --key names an entry key; prefix it with "-" to sort descending.
Entries missing a key, or holding values that cannot be compared, tie on
that key and are ordered by the next one. Equal entries keep feed order.

--path sorts the list at a dotted path of the document instead of the feed
entries.`,
		Example: `  feedpipe sort feed.xml --key=-pubDate --key=title
  feedpipe sort doc.xml --path=catalog.book --key=price`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			items := feedEntries(doc)
			if path != "" {
				if items, err = listAt(doc, path); err != nil {
					return err
				}
			}

			sorted, err := record.Sort(items, columns)
			if err != nil {
				return err
			}

			return printValue(cmd, sorted)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Dotted path of the list to sort")
	cmd.Flags().StringArrayVarP(&columns, "key", "k", nil, "Sort key, \"-key\" for descending (repeatable)")

	return cmd
}

// feedEntries returns the entries of a feed, or the document itself when
// it is not a feed.
func feedEntries(doc record.Value) []any {
	if entries := xmltree.Entries(doc); entries != nil {
		return entries
	}

	return []any{doc.Raw()}
}

// listAt returns the Sequence at path in doc.
func listAt(doc record.Value, path string) ([]any, error) {
	v := record.Of(record.Get(doc.Raw(), path))

	items, ok := v.Sequence()
	if !ok {
		return nil, fmt.Errorf("%s holds a %s, not a list", path, v.Kind())
	}

	return items, nil
}
