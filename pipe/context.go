package pipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"feedpipe/internal/logging"
)

// Context carries run-wide settings to every stage of a pipeline.
type Context struct {
	// RunID identifies one pipeline run in logs.
	RunID string
	// Verbose enables verbose output for the run.
	Verbose bool
	// Test makes input stages use their defaults instead of Inputs.
	Test bool
	// Submodule marks a pipeline embedded in another one; its inputs
	// come from the outer pipeline through Inputs.
	Submodule bool
	// Inputs are user-supplied parameter values, keyed by input name.
	Inputs map[string]string
	// Logger receives stage logs, prefixed with the short RunID. Nil
	// discards them.
	Logger Logger

	parent context.Context
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(c *Context) { c.Logger = l }
}

// WithInputs sets the user-supplied inputs.
func WithInputs(inputs map[string]string) Option {
	return func(c *Context) { c.Inputs = inputs }
}

// WithTest marks the run as a test run.
func WithTest() Option {
	return func(c *Context) { c.Test = true }
}

// WithSubmodule marks the pipeline as embedded in another one.
func WithSubmodule() Option {
	return func(c *Context) { c.Submodule = true }
}

// WithVerbose enables verbose mode.
func WithVerbose() Option {
	return func(c *Context) { c.Verbose = true }
}

// WithParent sets the context.Context used for network access.
func WithParent(ctx context.Context) Option {
	return func(c *Context) { c.parent = ctx }
}

// NewContext creates a Context with a fresh RunID.
func NewContext(opts ...Option) *Context {
	c := &Context{
		RunID:  uuid.NewString(),
		Inputs: map[string]string{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Std returns the context.Context for blocking operations.
func (c *Context) Std() context.Context {
	if c == nil || c.parent == nil {
		return context.Background()
	}

	return c.parent
}

func (c *Context) logger() Logger {
	if c == nil || c.Logger == nil {
		return logging.NewNullLogger()
	}

	if c.RunID == "" {
		return c.Logger
	}

	return newRunLogger(c.RunID, c.Logger)
}

// Input returns the value of the user input described by conf's literal
// "name" and "default" descriptors.
//
// A submodule reads its outer pipeline's inputs, falling back to the
// default. A test run always uses the default. Otherwise the input is read
// from Inputs, falling back to the default.
func (c *Context) Input(conf Conf) (string, error) {
	name, ok := conf.Literal("name")
	if !ok || stringify(name) == "" {
		return "", fmt.Errorf("input: %w: name", ErrMissingConf)
	}

	key := stringify(name)

	def := ""
	if v, ok := conf.Literal("default"); ok {
		def = stringify(v)
	}

	if c == nil {
		return def, nil
	}

	switch {
	case c.Submodule:
		return c.lookupInput(key, def), nil
	case c.Test:
		return def, nil
	default:
		return c.lookupInput(key, def), nil
	}
}

func (c *Context) lookupInput(name, def string) string {
	if v, ok := c.Inputs[name]; ok {
		return v
	}

	return def
}
