// Package ident turns external names (terminal ids, stage names) into safe
// internal keys and suggests near misses for names that are not found.
package ident
