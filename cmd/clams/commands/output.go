package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	pathColor = color.New(color.FgYellow)
	simColor  = color.New(color.FgBlue)
	doneColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow, color.Bold)
)

// disableColor turns off ANSI styling for both color and pterm output.
func disableColor() {
	color.NoColor = true
	pterm.DisableColor()
}

// printStart writes the "<verb> <from> to <to> ..." prefix of a status line.
func printStart(w io.Writer, verb, from, to string) {
	fmt.Fprintf(w, "%s %s to %s ...", verb, pathColor.Sprint(from), pathColor.Sprint(to))
}

func printSimulated(w io.Writer) {
	fmt.Fprintf(w, " %s\n", simColor.Sprint("simulated."))
}

func printDone(w io.Writer) {
	fmt.Fprintf(w, " %s.\n", doneColor.Sprint("done"))
}

// printFailure reports a single failed item; processing continues after it.
func printFailure(w io.Writer, verb, path string, err error) {
	fmt.Fprintf(w, "Failed to %s %s because %v\n", verb, failColor.Sprint(path), err)
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnColor.Sprintf(format, args...))
}

// progress wraps a pterm progress bar. A nil *progress is a no-op so callers
// do not need to branch on the --progress-bar flag.
type progress struct {
	bar *pterm.ProgressbarPrinter
}

func startProgress(w io.Writer, enabled bool, title string, total int) (*progress, error) {
	if !enabled || total == 0 {
		return nil, nil
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(w).
		Start()
	if err != nil {
		return nil, err
	}
	return &progress{bar: bar}, nil
}

func (p *progress) update(msg string) {
	if p == nil {
		return
	}
	p.bar.UpdateTitle(msg)
}

func (p *progress) inc() {
	if p == nil {
		return
	}
	p.bar.Increment()
}

func (p *progress) stop() {
	if p == nil {
		return
	}
	_, _ = p.bar.Stop()
}
