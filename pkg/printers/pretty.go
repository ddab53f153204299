package printers

import (
	"fmt"

	"github.com/fatih/color"
)

// PrettyPrint writes jlog's user-facing status lines.
type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Stepf announces an operation about to run.
func (pp *PrettyPrint) Stepf(format string, a ...interface{}) {
	c := color.New(color.FgCyan)
	_, _ = c.Fprintf(color.Output, format+"\n", a...)
}

// Successf reports a completed operation.
func (pp *PrettyPrint) Successf(format string, a ...interface{}) {
	c := color.New(color.FgGreen)
	_, _ = c.Fprintf(color.Output, "✓ "+format+"\n", a...)
}

// Warnf reports a tolerated problem, like a skipped entry file.
func (pp *PrettyPrint) Warnf(format string, a ...interface{}) {
	c := color.New(color.FgYellow)
	_, _ = c.Fprintf(color.Output, "warning: "+format+"\n", a...)
}

// Errorf reports a failure that does not abort the whole run.
func (pp *PrettyPrint) Errorf(format string, a ...interface{}) {
	c := color.New(color.FgRed)
	_, _ = c.Fprintf(color.Output, "✗ "+format+"\n", a...)
}
