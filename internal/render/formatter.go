package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"solcfmt/internal/diag"
	"solcfmt/internal/source"
	"solcfmt/internal/termstyle"
	"solcfmt/internal/trace"
)

// Options configures a Formatter.
type Options struct {
	// Styler supplies the style tokens. Nil means no styling.
	Styler termstyle.Styler

	// Summary appends warning and error counters after the last block.
	Summary bool

	// SummaryColor enables colors in the summary table.
	SummaryColor bool
}

// Stats counts what a run saw.
type Stats struct {
	Lines    int
	Warnings int
	Errors   int
	Carets   int
	Plain    int
	Skipped  int // empty lines
	Degraded int // warnings and errors without a parsable location
}

// Formatter renders compiler logs. It keeps no state between runs.
type Formatter struct {
	opts   Options
	styler termstyle.Styler
}

// New creates a Formatter.
func New(opts Options) *Formatter {
	st := opts.Styler
	if st == nil {
		st = termstyle.Plain()
	}
	return &Formatter{opts: opts, styler: st}
}

// FormatFile loads the log at path and formats it to w.
// A missing or unreadable log is returned before anything is written.
func FormatFile(ctx context.Context, w io.Writer, path string, opts Options) (Stats, error) {
	lines, err := source.ReadLines(path)
	if err != nil {
		return Stats{}, err
	}
	return New(opts).Format(ctx, w, lines)
}

// Format writes one block per line of lines to w, in order.
func (f *Formatter) Format(ctx context.Context, w io.Writer, lines []string) (Stats, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeRun, "format", 0)
	lineEvents := trace.Records(ctx, trace.ScopeLine)

	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	st := Stats{Lines: len(lines)}

	if len(lines) == 0 {
		ew.line(f.successLine())
		span.End("success")
		return st, ew.flush(bw)
	}

	for i, raw := range lines {
		if err := ctx.Err(); err != nil {
			span.End("canceled")
			return st, err
		}

		raw = strings.TrimSuffix(raw, "\n")
		if raw == "" {
			st.Skipped++
			continue
		}

		d := diag.Parse(i+1, raw)
		st.count(d)
		if d.Kind.IsDiagnostic() && !d.HasLocation {
			st.Degraded++
			if lineEvents {
				trace.Point(tr, trace.ScopeLine, "degraded", fmt.Sprintf("line %d: %v", d.Line, d.LocationErr), span.ID())
			}
		}

		ew.block(f.Block(d))
	}

	if f.opts.Summary {
		ew.block(summaryBlock(w, st, f.opts.SummaryColor))
	}

	span.WithExtra("lines", strconv.Itoa(st.Lines)).
		WithExtra("warnings", strconv.Itoa(st.Warnings)).
		WithExtra("errors", strconv.Itoa(st.Errors)).
		End("")
	return st, ew.flush(bw)
}

func (st *Stats) count(d diag.Diagnostic) {
	switch d.Kind {
	case diag.KindWarning:
		st.Warnings++
	case diag.KindError:
		st.Errors++
	case diag.KindCaret:
		st.Carets++
	default:
		st.Plain++
	}
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	if _, ew.err = io.WriteString(ew.w, s); ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, "\n")
}

func (ew *errWriter) block(b Block) {
	for _, l := range b {
		ew.line(l)
	}
}

func (ew *errWriter) flush(bw *bufio.Writer) error {
	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}
