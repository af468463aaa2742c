package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - color was switched off with DisableColor (--no-color)
//   - the NO_COLOR environment variable is set
//   - the TERM environment variable is set to "dumb"
//   - the writer is not a TTY
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	if colorDisabled {
		return false
	}

	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}

var colorDisabled bool

// DisableColor turns off colored output for log handlers created afterwards
// and for everything printed through fatih/color.
func DisableColor() {
	colorDisabled = true
	color.NoColor = true
}
