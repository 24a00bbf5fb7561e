package record

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidColumn is returned for a sort column with no key.
var ErrInvalidColumn = errors.New("invalid sort column")

// Column is one parsed sort key.
type Column struct {
	// Key is looked up directly on each item; it is not a dotted path.
	Key string
	// Desc reverses the order for this column.
	Desc bool
}

// String renders the column back into its "-key" / "key" form.
func (c Column) String() string {
	if c.Desc {
		return "-" + c.Key
	}

	return c.Key
}

// ParseColumns parses column specs. A leading "-" selects descending order.
func ParseColumns(columns []string) ([]Column, error) {
	out := make([]Column, 0, len(columns))

	for _, spec := range columns {
		col := Column{Key: strings.TrimSpace(spec)}

		if rest, ok := strings.CutPrefix(spec, "-"); ok {
			col = Column{Key: strings.TrimSpace(rest), Desc: true}
		}

		if col.Key == "" {
			return nil, fmt.Errorf("column %q: %w", spec, ErrInvalidColumn)
		}

		out = append(out, col)
	}

	return out, nil
}

// Sort returns a stably sorted copy of items ordered by columns.
//
// For each pair the columns are tried left to right and the first one that
// tells the items apart decides. A column ties when either item is not a
// Mapping, lacks the key, or holds a value Compare cannot order against the
// other. Missing keys and incomparable values are deliberately not told
// apart: both fall through to the next column.
func Sort(items []any, columns []string) ([]any, error) {
	cols, err := ParseColumns(columns)
	if err != nil {
		return nil, err
	}

	return SortColumns(items, cols), nil
}

// SortColumns is Sort with pre-parsed columns.
func SortColumns(items []any, cols []Column) []any {
	out := slices.Clone(items)

	slices.SortStableFunc(out, func(a, b any) int {
		for _, col := range cols {
			if c := compareColumn(a, b, col.Key); c != 0 {
				if col.Desc {
					return -c
				}

				return c
			}
		}

		return 0
	})

	return out
}

func compareColumn(a, b any, key string) int {
	va, ok := field(a, key)
	if !ok {
		return 0
	}

	vb, ok := field(b, key)
	if !ok {
		return 0
	}

	c, ok := Compare(va, vb)
	if !ok {
		return 0
	}

	return c
}

func field(item any, key string) (any, bool) {
	m, ok := item.(map[string]any)
	if !ok {
		return nil, false
	}

	v, found := m[key]

	return v, found
}
