package pipe

import (
	"errors"
	"fmt"

	"feedpipe/internal/common"
	"feedpipe/record"
)

// Descriptor keys.
const (
	KeyValue    = "value"
	KeyTerminal = "terminal"
	KeySubkey   = "subkey"
)

var (
	// ErrInvalidDescriptor is returned for a descriptor whose terminal or
	// subkey is not a string.
	ErrInvalidDescriptor = errors.New("invalid value descriptor")
	// ErrMissingConf is returned when a required configuration key is absent.
	ErrMissingConf = errors.New("missing configuration")
)

// DescriptorKind is the source a Descriptor reads from.
type DescriptorKind int

const (
	// DescriptorNone carries none of the three keys and resolves to nil.
	DescriptorNone DescriptorKind = iota
	DescriptorValue
	DescriptorTerminal
	DescriptorSubkey
)

// String returns the descriptor key for the kind.
func (k DescriptorKind) String() string {
	switch k {
	case DescriptorNone:
		return "none"
	case DescriptorValue:
		return KeyValue
	case DescriptorTerminal:
		return KeyTerminal
	case DescriptorSubkey:
		return KeySubkey
	default:
		return common.UnknownStr
	}
}

// Descriptor says where a configuration value comes from. It is immutable
// once constructed.
type Descriptor struct {
	value    any
	terminal string
	subkey   string

	hasValue    bool
	hasTerminal bool
	hasSubkey   bool
}

// Literal describes a fixed value.
func Literal(v any) Descriptor {
	return Descriptor{value: v, hasValue: true}
}

// FromTerminal describes the next value of the named terminal.
func FromTerminal(name string) Descriptor {
	return Descriptor{terminal: name, hasTerminal: true}
}

// FromSubkey describes the value at a dotted path in the current item.
func FromSubkey(path string) Descriptor {
	return Descriptor{subkey: path, hasSubkey: true}
}

// ParseDescriptor builds a Descriptor from its mapping form. Keys other
// than value, terminal and subkey are ignored.
func ParseDescriptor(m map[string]any) (Descriptor, error) {
	var d Descriptor

	if v, ok := m[KeyValue]; ok {
		d.value, d.hasValue = v, true
	}

	if v, ok := m[KeyTerminal]; ok {
		s, isStr := v.(string)
		if !isStr {
			return Descriptor{}, fmt.Errorf("%w: terminal must be a string, got %T", ErrInvalidDescriptor, v)
		}

		d.terminal, d.hasTerminal = s, true
	}

	if v, ok := m[KeySubkey]; ok {
		s, isStr := v.(string)
		if !isStr {
			return Descriptor{}, fmt.Errorf("%w: subkey must be a string, got %T", ErrInvalidDescriptor, v)
		}

		d.subkey, d.hasSubkey = s, true
	}

	return d, nil
}

// IsDescriptor reports whether m has the shape of a descriptor.
func IsDescriptor(m map[string]any) bool {
	for _, k := range []string{KeyValue, KeyTerminal, KeySubkey} {
		if _, ok := m[k]; ok {
			return true
		}
	}

	return false
}

// Kind returns the source GetValue will read, by priority value, terminal,
// subkey.
func (d Descriptor) Kind() DescriptorKind {
	switch {
	case d.hasValue:
		return DescriptorValue
	case d.hasTerminal:
		return DescriptorTerminal
	case d.hasSubkey:
		return DescriptorSubkey
	default:
		return DescriptorNone
	}
}

// Keys lists the descriptor keys present, in priority order.
func (d Descriptor) Keys() []string {
	var keys []string

	if d.hasValue {
		keys = append(keys, KeyValue)
	}

	if d.hasTerminal {
		keys = append(keys, KeyTerminal)
	}

	if d.hasSubkey {
		keys = append(keys, KeySubkey)
	}

	return keys
}

// Ambiguous reports whether more than one source key is present; only the
// highest-priority one is used.
func (d Descriptor) Ambiguous() bool {
	return common.IsMultiple(d.Keys())
}

// Terminal returns the terminal name, if d carries one.
func (d Descriptor) Terminal() (string, bool) {
	return d.terminal, d.hasTerminal
}

// GetValue resolves d.
//
// A literal is returned as is. A terminal yields the next value of that
// terminal in terms, advancing it. A subkey is resolved against loopItem
// with record.Get, so a missing path yields nil. A descriptor with none of
// the three yields nil. The only errors are an unknown or exhausted
// terminal, or a failure reported by the terminal's feed.
func GetValue(d Descriptor, loopItem any, terms *Terminals) (any, error) {
	switch d.Kind() {
	case DescriptorValue:
		return d.value, nil
	case DescriptorTerminal:
		return terms.Next(d.terminal)
	case DescriptorSubkey:
		return record.Get(loopItem, d.subkey), nil
	default:
		return nil, nil
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
