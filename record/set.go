package record

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrNotMapping is returned by Set when an existing intermediate node on the
// path is not a Mapping.
var ErrNotMapping = errors.New("not a mapping")

// Set assigns value at path inside item, creating empty Mappings for missing
// intermediate segments. The final segment is always a Mapping key.
func Set(item map[string]any, path string, value any) error {
	segs := Split(path)
	node := item

	for _, seg := range segs[:len(segs)-1] {
		child, found := node[seg]
		if !found {
			created := map[string]any{}
			node[seg] = created
			node = created

			continue
		}

		m, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("set %q: segment %q holds %s: %w", path, seg, KindOf(child), ErrNotMapping)
		}

		node = m
	}

	node[segs[len(segs)-1]] = value

	return nil
}

// DeleteResult reports what Delete did. Both outcomes are successes.
type DeleteResult int

const (
	// NoOp means nothing was found at the path.
	NoOp DeleteResult = iota
	// Deleted means a key or index was removed.
	Deleted
)

// String returns a human-readable outcome name.
func (r DeleteResult) String() string {
	if r == Deleted {
		return "deleted"
	}

	return "no-op"
}

// Delete removes the value at path from item.
//
// Intermediate segments are followed through Mappings only and are never
// created. A digits-only final segment is a Sequence index; the shortened
// Sequence replaces the original in its parent. Every miss, including a
// digits-only final segment against a Mapping, is a NoOp.
//
// Deleting a pass-through key such as "value" removes it, but a later Get of
// the same path passes through to the parent and does not yield nil.
func Delete(item map[string]any, path string) DeleteResult {
	segs := Split(path)
	last := segs[len(segs)-1]

	var (
		parent    map[string]any
		parentKey string
		node      any = item
	)

	for _, seg := range segs[:len(segs)-1] {
		m, ok := node.(map[string]any)
		if !ok {
			return NoOp
		}

		child, found := m[seg]
		if !found {
			return NoOp
		}

		parent, parentKey, node = m, seg, child
	}

	if isIndex(last) {
		s, ok := node.([]any)
		if !ok || parent == nil {
			return NoOp
		}

		i, err := strconv.Atoi(last)
		if err != nil || i >= len(s) {
			return NoOp
		}

		parent[parentKey] = slices.Delete(slices.Clone(s), i, i+1)

		return Deleted
	}

	m, ok := node.(map[string]any)
	if !ok {
		return NoOp
	}

	if _, found := m[last]; !found {
		return NoOp
	}

	delete(m, last)

	return Deleted
}
