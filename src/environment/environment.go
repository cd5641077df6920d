// Package environment answers questions about where the solver is running.
package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal detection, mainly so tests
// don't depend on how they are run.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive reports whether a user is sitting at a terminal. The solver
// only prints its input prompt when this is true, so piping an expression in
// gives clean output.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
