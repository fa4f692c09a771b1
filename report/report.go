// Package report prints the tab-separated result tables of the timing
// experiments.
//
// Every table has the swept parameters first, then the timing comparison
// (naive mean, optimized mean, percent less time, t, dof, p) and optionally
// a second comparison on an output metric. Times are recorded in
// nanoseconds and printed in seconds.
package report

import (
	"fmt"
	"io"
	"strings"

	"gaops/stats"

	"github.com/dustin/go-humanize"
)

// Column is one field of a table. Format is applied to the row value; the
// header is right-aligned to Width.
type Column struct {
	Header string
	Width  int
	Format string
}

func Param(header string, width int, format string) Column {
	return Column{Header: header, Width: width, Format: format}
}

// TimeColumns follow the swept parameters in every table.
func TimeColumns() []Column {
	return []Column{
		{"simple", 12, "%12.3g"},
		{"optimized", 12, "%12.3g"},
		{"%less-time", 11, "%10.2f%%"},
		{"t", 10, "%10.4f"},
		{"dof", 10, "%10d"},
		{"p", 10, "%10.3g"},
	}
}

// MetricColumns compare an output statistic, e.g. crossover calls.
func MetricColumns(name string, format string) []Column {
	return []Column{
		{"simple-" + name, 12, format},
		{"opt-" + name, 12, format},
		{"t-" + name, 10, "%10.4f"},
		{"dof-" + name, 10, "%10d"},
		{"p-" + name, 10, "%10.3g"},
	}
}

// TimeCells converts a comparison of nanosecond samples into TimeColumns
// values.
func TimeCells(c stats.Comparison) []any {
	naive, optimized := c.MeanA/1e9, c.MeanB/1e9
	return []any{naive, optimized, stats.PercentLess(naive, optimized), c.T, c.DoF, c.P}
}

func MetricCells(c stats.Comparison) []any {
	return []any{c.MeanA, c.MeanB, c.T, c.DoF, c.P}
}

type Table struct {
	w    io.Writer
	cols []Column
	err  error
}

func NewTable(w io.Writer, cols ...[]Column) *Table {
	t := &Table{w: w}
	for _, c := range cols {
		t.cols = append(t.cols, c...)
	}
	return t
}

func (t *Table) Columns() []Column { return t.cols }

func (t *Table) writeLine(fields []string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, strings.Join(fields, "\t"))
}

func (t *Table) Header() {
	fields := make([]string, len(t.cols))
	for i, c := range t.cols {
		fields[i] = fmt.Sprintf("%*s", c.Width, c.Header)
	}
	t.writeLine(fields)
}

// Row prints one line. values must line up with the columns; values may be
// given as flat arguments or as []any groups such as TimeCells.
func (t *Table) Row(values ...any) {
	flat := make([]any, 0, len(t.cols))
	for _, v := range values {
		if group, ok := v.([]any); ok {
			flat = append(flat, group...)
			continue
		}
		flat = append(flat, v)
	}
	if len(flat) != len(t.cols) && t.err == nil {
		t.err = fmt.Errorf("report: row has %d values for %d columns", len(flat), len(t.cols))
		return
	}
	fields := make([]string, len(flat))
	for i, v := range flat {
		fields[i] = fmt.Sprintf(t.cols[i].Format, v)
	}
	t.writeLine(fields)
}

func (t *Table) Blank() {
	if t.err == nil {
		_, t.err = fmt.Fprintln(t.w)
	}
}

// Err is the first write or shape error seen by the table.
func (t *Table) Err() error { return t.err }

// Preamble describes the run before the first table.
type Preamble struct {
	Experiment string
	Trials     int
	Work       int
	WorkUnit   string
	Clock      string
	Degraded   bool
}

func (p Preamble) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s trials of %s %s, timed with the %s\n",
		p.Experiment, humanize.Comma(int64(p.Trials)), humanize.Comma(int64(p.Work)), p.WorkUnit, p.Clock)
	if err == nil && p.Degraded {
		_, err = fmt.Fprintln(w, "WARNING: per-thread CPU time unavailable, wall-clock times are noisier")
	}
	if err == nil {
		_, err = fmt.Fprintln(w)
	}
	return err
}

// Footer prints the sign convention and the sink value.
func Footer(w io.Writer, sink uint64) error {
	_, err := fmt.Fprintf(w, `Interpreting Above Results:
1) Negative t value implies simple version is faster.
2) Positive t value implies optimized version is faster.
3) The p column is, well, the p value.

Output to ensure can't optimize away anything: %d
`, sink)
	return err
}

// Seconds renders a nanosecond duration with an SI prefix, e.g. "1.25 ms".
func Seconds(ns float64) string {
	return humanize.SIWithDigits(ns/1e9, 3, "s")
}

// Title prints a line introducing the next table.
func Title(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
