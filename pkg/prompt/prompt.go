// Package prompt wraps interactive terminal prompts. Prompts only
// engage when stdin is a terminal; scripted runs get the default
// answer so pipelines never hang.
package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Confirm asks a yes/no question. Without a terminal on stdin the
// default answer is returned immediately.
func Confirm(message string, defaultValue bool) (bool, error) {
	if !interactive() {
		return defaultValue, nil
	}
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(message)
}

func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
