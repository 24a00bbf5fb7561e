package pipe

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"feedpipe/internal/ident"
)

var (
	// ErrUnknownTerminal is returned when a descriptor names a terminal
	// that was never registered.
	ErrUnknownTerminal = errors.New("unknown terminal")
	// ErrTerminalExhausted is returned when a terminal is read past its end.
	ErrTerminalExhausted = errors.New("terminal exhausted")
)

type cursor struct {
	next func() (any, error, bool)
	stop func()
}

// Terminals holds one cursor per named terminal. Names are stored
// sanitized, so "loop-count" and "loop_count" are the same terminal.
//
// Terminals is not safe for concurrent use.
type Terminals struct {
	cursors map[string]*cursor
}

// NewTerminals returns an empty set of terminals.
func NewTerminals() *Terminals {
	return &Terminals{cursors: map[string]*cursor{}}
}

// Add registers seq under name, replacing and releasing any previous feed
// with the same sanitized name.
func (t *Terminals) Add(name string, seq Seq) {
	key := ident.Sanitize(name)

	if old, ok := t.cursors[key]; ok {
		old.stop()
	}

	next, stop := iter.Pull2(iter.Seq2[any, error](seq))
	t.cursors[key] = &cursor{next: next, stop: stop}
}

// Has reports whether name is registered.
func (t *Terminals) Has(name string) bool {
	if t == nil {
		return false
	}

	_, ok := t.cursors[ident.Sanitize(name)]

	return ok
}

// Names returns the registered sanitized names, sorted.
func (t *Terminals) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(t.cursors))
}

// Next advances the named terminal by one value.
func (t *Terminals) Next(name string) (any, error) {
	key := ident.Sanitize(name)

	var c *cursor
	if t != nil {
		c = t.cursors[key]
	}

	if c == nil {
		return nil, fmt.Errorf("terminal %q: %w%s", name, ErrUnknownTerminal, didYouMean(key, t.Names()))
	}

	v, err, ok := c.next()
	if !ok {
		return nil, fmt.Errorf("terminal %q: %w", name, ErrTerminalExhausted)
	}

	if err != nil {
		return nil, fmt.Errorf("terminal %q: %w", name, err)
	}

	return v, nil
}

// Close releases every registered feed.
func (t *Terminals) Close() {
	if t == nil {
		return
	}

	for _, c := range t.cursors {
		c.stop()
	}
}

func didYouMean(name string, known []string) string {
	suggestions := ident.Suggest(name, known)
	if len(suggestions) == 0 {
		return ""
	}

	return " (did you mean " + strings.Join(suggestions, ", ") + "?)"
}
