package record

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the shape of a record tree node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// KindOf classifies a node.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}
