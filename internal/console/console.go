// Package console renders the labelled, colored status lines printed while
// reading a dataset and exporting it.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	// LabelWidth is the column the value of a status line starts at.
	LabelWidth = 20
	// ValueWidth pads counters and clock values so redraws overwrite cleanly.
	ValueWidth = 11
)

// Printer writes status lines to an output stream. A nil *Printer discards
// everything, so callers never need to check whether display is enabled.
type Printer struct {
	w      io.Writer
	active *color.Color
	done   *color.Color
	failed *color.Color
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		active: color.New(color.FgCyan),
		done:   color.RGB(255, 165, 0),
		failed: color.New(color.FgRed),
	}
}

// Active prints a label followed by a value that is still changing.
func (p *Printer) Active(label, value string) {
	if p == nil {
		return
	}
	p.label(label)
	_, _ = p.active.Fprintln(p.w, value)
}

// Done prints a label followed by a final value.
func (p *Printer) Done(label, value string) {
	if p == nil {
		return
	}
	p.label(label)
	_, _ = p.done.Fprintln(p.w, value)
}

// Failed prints a message in the error color.
func (p *Printer) Failed(format string, args ...any) {
	if p == nil {
		return
	}
	_, _ = p.failed.Fprintf(p.w, format+"\n", args...)
}

// Begin starts a line holding a label and a value that Redraw updates in
// place. End terminates it.
func (p *Printer) Begin(label, value string) {
	if p == nil {
		return
	}
	p.label(label)
	_, _ = p.active.Fprint(p.w, value)
}

// Redraw erases the width of the previous value and prints value instead.
func (p *Printer) Redraw(previous, value string) {
	if p == nil {
		return
	}
	if n := len(previous); n > 0 {
		_, _ = fmt.Fprintf(p.w, "\x1b[%dD", n)
	}
	_, _ = p.active.Fprint(p.w, value)
}

// Line rewrites the current line with pairs of labels and values.
func (p *Printer) Line(overwrite bool, pairs ...string) {
	if p == nil {
		return
	}
	if overwrite {
		_, _ = fmt.Fprint(p.w, "\r")
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		p.label(pairs[i])
		_, _ = p.active.Fprint(p.w, Pad(pairs[i+1]))
	}
}

// End finishes a line started with Begin or Line.
func (p *Printer) End() {
	if p == nil {
		return
	}
	_, _ = fmt.Fprintln(p.w)
}

func (p *Printer) label(label string) {
	_, _ = fmt.Fprint(p.w, padRight(label, LabelWidth))
}

// Pad left-aligns s in a ValueWidth column.
func Pad(s string) string {
	return padRight(s, ValueWidth)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}

// Clock formats t as HH:MM:SS:cc with cc the hundredths of a second.
func Clock(t time.Time) string {
	return fmt.Sprintf("%s:%02d", t.Format("15:04:05"), t.Nanosecond()/int(10*time.Millisecond))
}

// Seconds formats an elapsed duration the way the live read timer shows it.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%05.2f", d.Seconds())
}

// HMS formats d as HH:MM:SS, truncating fractions of a second.
func HMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
