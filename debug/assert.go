//go:build debug

package debug

import (
	"fmt"
	"os"
)

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func Printf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}
