//go:build !debug

// Package debug provides assertions and traces that can be enabled with the
// debug build tag or will otherwise compile to no-ops.
//
// Bring-up code runs long before a console is guaranteed, so nothing in here
// may be relied on for reporting errors.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// Printf writes a trace message to stderr.
func Printf(format string, a ...any) {}
