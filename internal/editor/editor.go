// Package editor launches the user's preferred text editor on a file.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/clams-bin/clams/internal/errors"
)

// Open prints the location of path to w and blocks until the editor exits.
// The editor is taken from $EDITOR, then $VISUAL, then nano, then vi.
func Open(ctx context.Context, w io.Writer, path string) error {
	name := Detect()

	fmt.Fprintf(w, "Location: %s\n", path)

	cmd := exec.CommandContext(ctx, name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Detect returns the editor command to use.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
