package pipe

import (
	"fmt"

	"feedpipe/internal/xmltree"
)

// Fetch is a source stage: it ignores input, loads the RSS, RDF or Atom
// document named by conf.url and yields its entries as record trees.
// The document is fetched on the first pull.
func Fetch(ctx *Context, _ Seq, conf Conf, terms *Terminals) Seq {
	return func(yield func(any, error) bool) {
		v, err := conf.Value("url", nil, terms)
		if err != nil {
			yield(nil, fmt.Errorf("fetch: %w", err))
			return
		}

		url := stringify(v)
		if url == "" {
			yield(nil, fmt.Errorf("fetch: %w: url", ErrMissingConf))
			return
		}

		el, err := xmltree.Fetch(ctx.Std(), url)
		if err != nil {
			yield(nil, fmt.Errorf("fetch: %w", err))
			return
		}

		entries := xmltree.Entries(xmltree.Import(el))
		ctx.logger().Verbose("fetch: %d entries from %s", len(entries), url)

		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}
