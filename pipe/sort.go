package pipe

import (
	"fmt"

	"feedpipe/record"
)

// Sort orders its input by the keys in conf.
//
// conf.KEY holds one key or a list of keys, each {field, dir}. field names
// the item key to compare; a dir of "DESC" sorts that key descending. Both
// are descriptors resolved without a loop item. Input is collected and
// sorted on the first pull; see record.Sort for the comparison rules.
func Sort(ctx *Context, input Seq, conf Conf, terms *Terminals) Seq {
	return func(yield func(any, error) bool) {
		cols, err := sortColumns(conf, terms)
		if err != nil {
			yield(nil, fmt.Errorf("sort: %w", err))
			return
		}

		var items []any

		if input != nil {
			for item, err := range input {
				if err != nil {
					yield(nil, err)
					return
				}

				items = append(items, item)
			}
		}

		ctx.logger().Verbose("sort: %d items by %v", len(items), cols)

		for _, item := range record.SortColumns(items, cols) {
			if !yield(item, nil) {
				return
			}
		}
	}
}

func sortColumns(conf Conf, terms *Terminals) ([]record.Column, error) {
	keys := conf.List("KEY")
	specs := make([]string, 0, len(keys))

	for i, key := range keys {
		field, err := key.Value("field", nil, terms)
		if err != nil {
			return nil, fmt.Errorf("KEY.%d: %w", i, err)
		}

		dir, err := key.Value("dir", nil, terms)
		if err != nil {
			return nil, fmt.Errorf("KEY.%d: %w", i, err)
		}

		spec := stringify(field)
		if stringify(dir) == "DESC" {
			spec = "-" + spec
		}

		specs = append(specs, spec)
	}

	return record.ParseColumns(specs)
}
