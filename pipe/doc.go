// Package pipe defines the pipeline stage contract and the machinery stages
// share for reading their configuration.
//
// # Stages
//
// A Stage turns an input Seq into an output Seq. Evaluation is pull-based:
// a stage does no work until its output is iterated, and each pulled value
// is produced on demand. A stage reports a failure by yielding a non-nil
// error and stopping.
//
// Some stages never end on their own. Count drains its input once and then
// yields the same count forever; consumers stop pulling when they have what
// they need (see Take).
//
// # Configuration
//
// A stage's Conf is a YAML mapping whose leaves are value descriptors:
//
//	KEY:
//	  - field: {value: title}
//	    dir: {terminal: direction}
//	url: {subkey: link.href}
//
// A descriptor is a literal ({value: ...}), the next value of a named
// terminal ({terminal: name}), or a dotted path into the item currently
// being processed ({subkey: path}). See GetValue.
//
// # Terminals
//
// Terminals connect one stage's output to another stage's configuration.
// Each terminal is a single-consumer cursor: every GetValue that reads it
// advances it by one value. Referring to an unregistered terminal is an
// error; it means the pipeline was wired incorrectly.
package pipe
