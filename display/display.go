// Package display renders the regasm register file for the operator.
package display

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"

	"github.com/ezrec/regasm/cpu"
	"github.com/ezrec/regasm/translate"
)

var f = translate.From

// Header styles, in mgutz/ansi notation.
const (
	STYLE_DEBUG    = "yellow"
	STYLE_LINE     = "blue"
	STYLE_FINISHED = "green"
	STYLE_ERROR    = "red"
)

// Display writes register dumps and status headers.
type Display struct {
	Output io.Writer // Destination of state dumps.
	Error  io.Writer // Destination of error reports. Output if nil.
	Color  bool      // If set, headers are colorized.
}

func (dpy *Display) paint(text, style string) string {
	if !dpy.Color {
		return text
	}

	return ansi.Color(text, style)
}

// State writes the zero flag and every register as unsigned, signed and hex.
func (dpy *Display) State(c *cpu.Cpu) (err error) {
	_, err = fmt.Fprintf(dpy.Output, "Zero: %v\n", c.Zero)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(dpy.Output, "%25s%22s%20s\n", "unsigned", "signed", "hex")
	if err != nil {
		return
	}

	for n, val := range c.Register {
		_, err = fmt.Fprintf(dpy.Output, "R%d:  %20d  %20d  0x%016X\n", n, val, int64(val), val)
		if err != nil {
			return
		}
	}

	return
}

// Breakpoint writes the debug header for a source line, then the state.
func (dpy *Display) Breakpoint(lineno int, c *cpu.Cpu) (err error) {
	_, err = fmt.Fprintf(dpy.Output, "%v %v\n",
		dpy.paint(f("Debug:"), STYLE_DEBUG),
		dpy.paint(f("line %d", lineno), STYLE_LINE))
	if err != nil {
		return
	}

	return dpy.State(c)
}

// Finished writes the completion header, then the state.
func (dpy *Display) Finished(c *cpu.Cpu) (err error) {
	_, err = fmt.Fprintf(dpy.Output, "%v\n", dpy.paint(f("Finished:"), STYLE_FINISHED))
	if err != nil {
		return
	}

	return dpy.State(c)
}

// Report writes a single error diagnostic.
func (dpy *Display) Report(report error) (err error) {
	out := dpy.Error
	if out == nil {
		out = dpy.Output
	}

	_, err = fmt.Fprintf(out, "%v %v\n", dpy.paint(f("Error: "), STYLE_ERROR), report)
	return
}
