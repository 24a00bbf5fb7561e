// Package record addresses and restructures record trees: nested mappings,
// sequences and scalars such as those produced by importing XML or JSON feeds.
//
// # Record trees
//
// A node is one of:
//
//   - map[string]any (a Mapping)
//   - []any (a Sequence)
//   - a scalar: string, a number, bool or nil
//
// [Value] wraps a node together with its [Kind] for callers that need to
// branch on the shape, such as consumers of the XML importer.
//
// # Dotted paths
//
// Nodes are addressed with dotted paths like "channel.item.0.title". A
// single trailing "." is ignored. A digits-only segment indexes a Sequence;
// against a Mapping it is an ordinary key.
//
// The segments "value", "content" and "utime" are pass-through names: when
// the current node has no such key, [Get] stays on the current node. This
// lets "title.content" address both <title>x</title> (imported as the scalar
// "x") and <title type="html">x</title> (imported as a Mapping with a
// "content" key).
//
// # Failure model
//
// Reads never fail: a miss yields nil. Deletes never fail: they report
// [Deleted] or [NoOp]. Sorting treats missing keys and incomparable values
// as ties. Only structurally invalid input, such as an empty sort column or
// a write through a scalar, produces an error.
package record
