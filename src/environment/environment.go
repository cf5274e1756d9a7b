package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, for tests and for the
// CLI's explicit format flags.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive drops any override set by ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true when stdout is a terminal a user is looking at,
// false when it is redirected to a file or a pipe.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return IsTerminal(os.Stdout)
}

func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
