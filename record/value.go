package record

// Value is a record tree node tagged with its Kind.
//
// The zero Value is Null.
type Value struct {
	kind Kind
	node any
}

// Of wraps an arbitrary node, classifying it with KindOf.
func Of(node any) Value {
	return Value{kind: KindOf(node), node: node}
}

// Null returns the Null value.
func Null() Value {
	return Value{}
}

// Scalar wraps a scalar node.
func Scalar(v any) Value {
	if v == nil {
		return Null()
	}

	return Value{kind: KindScalar, node: v}
}

// Mapping wraps a Mapping node.
func Mapping(m map[string]any) Value {
	return Value{kind: KindMapping, node: m}
}

// Kind reports the shape of the wrapped node.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v holds no node.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Scalar returns the scalar node, or false if v is not a Scalar.
func (v Value) Scalar() (any, bool) {
	if v.kind != KindScalar {
		return nil, false
	}

	return v.node, true
}

// Mapping returns the Mapping node, or false if v is not a Mapping.
func (v Value) Mapping() (map[string]any, bool) {
	if v.kind != KindMapping {
		return nil, false
	}

	m, ok := v.node.(map[string]any)

	return m, ok
}

// Sequence returns the Sequence node, or false if v is not a Sequence.
func (v Value) Sequence() ([]any, bool) {
	if v.kind != KindSequence {
		return nil, false
	}

	s, ok := v.node.([]any)

	return s, ok
}

// Raw returns the plain node for use with Get, Set and Delete.
func (v Value) Raw() any {
	return v.node
}

// Listize returns v unchanged if it is a Sequence, an empty Sequence for
// nil, and a one-element Sequence otherwise.
func Listize(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	default:
		return []any{t}
	}
}

// Append merges next into prev using list-promotion: a missing prev takes
// next directly, a single prev becomes [prev, next], and an existing
// Sequence is extended.
func Append(prev, next any, present bool) any {
	if !present {
		return next
	}

	if s, ok := prev.([]any); ok {
		return append(s, next)
	}

	return []any{prev, next}
}
