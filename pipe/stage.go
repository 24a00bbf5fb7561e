package pipe

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"feedpipe/internal/common"
	"feedpipe/internal/ident"
)

// ErrUnknownStage is returned by Lookup for an unregistered stage name.
var ErrUnknownStage = errors.New("unknown stage")

// Seq is a lazy sequence of values flowing between stages. A non-nil error
// ends the sequence.
type Seq = iter.Seq2[any, error]

// Stage is the contract every pipeline module follows: given the run
// context, an input sequence, its configuration and the terminal feeds, it
// returns its output sequence without doing any work up front.
type Stage func(ctx *Context, input Seq, conf Conf, terms *Terminals) Seq

var registry = map[string]Stage{
	"count":     Count,
	"fetch":     Fetch,
	"sort":      Sort,
	"textinput": TextInput,
}

// Lookup returns the stage registered under name.
func Lookup(name string) (Stage, error) {
	if s, ok := registry[name]; ok {
		return s, nil
	}

	if best, ok := common.First(ident.Suggest(name, Names())); ok {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownStage, name, best)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownStage, name)
}

// Names lists the registered stages, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// FromSlice returns a Seq over items.
func FromSlice(items []any) Seq {
	return func(yield func(any, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
	}
}

// Failed returns a Seq that yields err and ends.
func Failed(err error) Seq {
	return func(yield func(any, error) bool) {
		yield(nil, err)
	}
}

// Take pulls at most n values from seq; n <= 0 pulls until seq ends, which
// never happens for endless stages such as Count. It stops at the first
// error and returns the values pulled before it.
func Take(seq Seq, n int) ([]any, error) {
	var out []any

	if seq == nil {
		return out, nil
	}

	for v, err := range seq {
		if err != nil {
			return out, err
		}

		out = append(out, v)

		if n > 0 && len(out) >= n {
			break
		}
	}

	return out, nil
}

// Repeat returns a Seq yielding v forever.
func Repeat(v any) Seq {
	return func(yield func(any, error) bool) {
		for yield(v, nil) {
		}
	}
}
