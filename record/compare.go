package record

import (
	"cmp"
	"strings"
)

// Compare orders two nodes. It reports false when the values have no
// common ordering, e.g. a string against a number or two Mappings.
//
// Numbers compare numerically across Go numeric types, with bools counted
// as 0 and 1. Strings compare bytewise. Sequences compare element by element
// and then by length. nil orders before every other value.
func Compare(a, b any) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return -1, true
	case b == nil:
		return 1, true
	}

	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, false
		}

		return cmp.Compare(fa, fb), true
	}

	switch ta := a.(type) {
	case string:
		tb, ok := b.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(ta, tb), true
	case []any:
		tb, ok := b.([]any)
		if !ok {
			return 0, false
		}

		for i := range min(len(ta), len(tb)) {
			c, ok := Compare(ta[i], tb[i])
			if !ok {
				return 0, false
			}

			if c != 0 {
				return c, true
			}
		}

		return cmp.Compare(len(ta), len(tb)), true
	}

	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}

		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
