package record

import "strconv"

// Get resolves a dotted path against item.
//
// Each segment first selects a present Mapping key, then a Sequence index,
// then falls back to the PassThrough names. Anything else is a miss and Get
// returns nil without looking at the remaining segments.
func Get(item any, path string) any {
	v, _ := Lookup(item, path)

	return v
}

// Lookup is Get with an explicit found flag, distinguishing a stored nil
// from a miss.
func Lookup(item any, path string) (any, bool) {
	node := item

	for _, seg := range Split(path) {
		next, ok := step(node, seg)
		if !ok {
			return nil, false
		}

		node = next
	}

	return node, true
}

func step(node any, seg string) (any, bool) {
	if m, ok := node.(map[string]any); ok {
		if v, found := m[seg]; found {
			return v, true
		}
	}

	if s, ok := node.([]any); ok && isIndex(seg) {
		if i, err := strconv.Atoi(seg); err == nil && i < len(s) {
			return s[i], true
		}
	}

	if _, ok := PassThrough[seg]; ok {
		return node, true
	}

	return nil, false
}
