// Package diagnostic collects structured errors, warnings and notes found
// while validating stage configuration, so that every problem in a
// configuration is reported at once instead of failing on the first.
package diagnostic
