// Package console renders user-facing lines on the terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"bookseed/internal/domain/entity"
	"bookseed/internal/domain/repository"
	"bookseed/internal/domain/service"

	"github.com/fatih/color"
)

// Printer writes success lines to Out and failures to Err.
type Printer struct {
	out     io.Writer
	err     io.Writer
	success *color.Color
	failure *color.Color
}

var _ service.RowReporter = (*Printer)(nil)

// NewPrinter returns a Printer. Nil writers default to stdout and stderr.
func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	p := &Printer{
		out:     out,
		err:     errOut,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if noColor {
		p.success.DisableColor()
		p.failure.DisableColor()
	}

	return p
}

// RowCreated prints "Created <Kind>: <label>".
func (p *Printer) RowCreated(kind entity.Kind, row entity.Labeled) {
	p.success.Fprintf(p.out, "Created %s: %s\n", kind, row.Label())
}

// Success prints a green line.
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Line prints an uncoloured line.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Error prints err in red.
func (p *Printer) Error(err error) {
	p.failure.Fprintf(p.err, "Error: %v\n", err)
}

// Counts prints one aligned row per table.
func (p *Printer) Counts(counts []repository.TableCount) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Table, c.Rows)
	}
	_ = w.Flush()
}
