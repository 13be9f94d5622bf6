// Package terminal probes the attached terminal for width and color
// capability. Both probes are environment-variable driven first, so
// scripted callers can pin the answers without a tty.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when no terminal is attached and COLUMNS is
// unset.
const DefaultWidth = 80

// Width returns the column count of the terminal behind f. COLUMNS
// takes precedence, then the tty size, then DefaultWidth.
func Width(f *os.File) int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// ColorEnabled reports whether colored output should be written to f.
//
// NO_COLOR and TABCAT_NO_COLOR force color off, CLICOLOR_FORCE forces
// it on. Otherwise color is enabled only when f is a terminal with a
// color-capable profile.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TABCAT_NO_COLOR") != "" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if f == nil {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
