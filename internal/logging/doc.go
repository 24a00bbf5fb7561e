// Package logging provides concrete implementations of the pipe.Logger interface.
package logging
