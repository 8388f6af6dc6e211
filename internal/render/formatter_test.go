package render

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"solcfmt/internal/termstyle"
	"solcfmt/internal/trace"
)

// tagStyler renders style tokens as readable tags.
type tagStyler struct{}

func (tagStyler) Bold() string                     { return "<b>" }
func (tagStyler) Color(p termstyle.Palette) string { return "<c" + strconv.Itoa(int(p)) + ">" }
func (tagStyler) Reset() string                    { return "</>" }

func format(t *testing.T, opts Options, lines ...string) (string, Stats) {
	t.Helper()
	if opts.Styler == nil {
		opts.Styler = tagStyler{}
	}
	var buf bytes.Buffer
	st, err := New(opts).Format(context.Background(), &buf, lines)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	return buf.String(), st
}

func TestFormatEmptyLog(t *testing.T) {
	got, st := format(t, Options{})
	if got != "<b>Success!</>\n" {
		t.Errorf("got %q", got)
	}
	if st.Lines != 0 {
		t.Errorf("Lines = %d", st.Lines)
	}
}

func TestFormatLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "warning",
			line: "contracts/Token.sol:12:5: Warning: Unused local variable. Remove it.",
			want: "contracts/<b><c4>Token.sol</>:<c5>12:5</>\n" +
				"<b><c3>Warning:</>\n" +
				"Unused local variable.\n" +
				"Remove it.\n",
		},
		{
			name: "error",
			line: "/src/contracts/Token.sol:3:1: Error: Expected pragma, import directive or contract/interface/library definition.",
			want: "/src/contracts/<b><c4>Token.sol</>:<c5>3:1</>\n" +
				"<b><c1>Error:</>\n" +
				"Expected pragma, import directive or contract/interface/library definition.\n",
		},
		{
			name: "typed error shows bare marker",
			line: "contracts/A.sol:7:9: TypeError: Invalid implicit conversion. Use a cast.",
			want: "contracts/<b><c4>A.sol</>:<c5>7:9</>\n" +
				"<b><c1>Error:</>\n" +
				"Invalid implicit conversion.\n" +
				"Use a cast.\n",
		},
		{
			name: "both markers is a warning",
			line: "a.sol:1:1: Warning: Error: inside the message.",
			want: "<b><c4>a.sol</>:<c5>1:1</>\n" +
				"<b><c3>Warning:</>\n" +
				"Error: inside the message.\n",
		},
		{
			name: "no location",
			line: "Warning: This is a pre-release compiler version, please do not use it in production.",
			want: "<b><c3>Warning:</>\n" +
				"This is a pre-release compiler version, please do not use it in production.\n",
		},
		{
			name: "unparsable prefix is kept",
			line: "solc-0.4.24 Error: Source file requires different compiler version",
			want: "solc-0.4.24\n" +
				"<b><c1>Error:</>\n" +
				"Source file requires different compiler version\n",
		},
		{
			name: "empty message",
			line: "a.sol:2:3: Warning:",
			want: "<b><c4>a.sol</>:<c5>2:3</>\n<b><c3>Warning:</>\n\n",
		},
		{
			name: "colon in directory",
			line: "/tmp/a:b/file.sol:12:5: Warning: msg",
			want: "/tmp/a:b/<b><c4>file.sol</>:<c5>12:5</>\n<b><c3>Warning:</>\nmsg\n",
		},
		{
			name: "drive letter",
			line: "C:/proj/file.sol:12:5: Warning: msg",
			want: "C:/proj/<b><c4>file.sol</>:<c5>12:5</>\n<b><c3>Warning:</>\nmsg\n",
		},
		{
			name: "parser error",
			line: "file.sol:3:5: ParserError: Bad. Thing",
			want: "<b><c4>file.sol</>:<c5>3:5</>\n<b><c1>Error:</>\nBad.\nThing\n",
		},
		{
			name: "caret",
			line: "    uint x = 1; ^-------^",
			want: "<c1>    uint x = 1; ^-------^</>\n",
		},
		{
			name: "plain",
			line: "pragma solidity ^0.4.24;",
			want: "pragma solidity ^0.4.24;\n",
		},
		{
			name: "plain with newline",
			line: "  function f() public {\n",
			want: "  function f() public {\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := format(t, Options{}, tt.line)
			if got != tt.want {
				t.Errorf("unexpected output:\nwant: %q\ngot:  %q", tt.want, got)
			}
		})
	}
}

func TestFormatSkipsEmptyLines(t *testing.T) {
	got, st := format(t, Options{}, "", "first", "\n", "second")
	if got != "first\nsecond\n" {
		t.Errorf("got %q", got)
	}
	if st.Skipped != 2 || st.Plain != 2 {
		t.Errorf("stats = %+v", st)
	}
}

func TestFormatStats(t *testing.T) {
	_, st := format(t, Options{},
		"a.sol:1:1: Warning: w.",
		"Warning: no location.",
		"a.sol:2:1: Error: e.",
		"  ^--^",
		"plain",
	)
	want := Stats{Lines: 5, Warnings: 2, Errors: 1, Carets: 1, Plain: 1, Degraded: 1}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestFormatIsRepeatable(t *testing.T) {
	lines := []string{
		"contracts/Token.sol:12:5: Warning: Unused local variable.",
		"    uint x;",
		"    ^----^",
	}
	f := New(Options{Styler: tagStyler{}})

	var first, second bytes.Buffer
	if _, err := f.Format(context.Background(), &first, lines); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Format(context.Background(), &second, lines); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("runs differ:\n%q\n%q", first.String(), second.String())
	}
}

func TestFormatSummary(t *testing.T) {
	got, _ := format(t, Options{Summary: true},
		"a.sol:1:1: Warning: w.",
		"plain",
	)
	want := "<b><c4>a.sol</>:<c5>1:1</>\n<b><c3>Warning:</>\nw.\nplain\n" +
		"warnings  1\n" +
		"errors    0\n"
	if got != want {
		t.Errorf("unexpected output:\nwant: %q\ngot:  %q", want, got)
	}
}

func TestFormatSummaryNotOnSuccess(t *testing.T) {
	got, _ := format(t, Options{Summary: true})
	if got != "<b>Success!</>\n" {
		t.Errorf("got %q", got)
	}
}

var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestFormatANSIMatchesPlainText(t *testing.T) {
	lines := []string{
		"contracts/Token.sol:12:5: Warning: Unused local variable. Remove it.",
		"    ^---^",
		"plain",
	}

	var colored, plain bytes.Buffer
	ctx := context.Background()
	if _, err := New(Options{Styler: termstyle.New(termstyle.ANSIResolver{})}).Format(ctx, &colored, lines); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{}).Format(ctx, &plain, lines); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(colored.String(), "contracts/\x1b[1m\x1b[34mToken.sol\x1b[0m:\x1b[35m12:5\x1b[0m\n") {
		t.Errorf("missing styled location line in %q", colored.String())
	}
	if got := ansiEscapePattern.ReplaceAllString(colored.String(), ""); got != plain.String() {
		t.Errorf("stripped output differs:\n%q\n%q", got, plain.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatWriteError(t *testing.T) {
	_, err := New(Options{}).Format(context.Background(), failingWriter{}, []string{"x"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestFormatCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	_, err := New(Options{}).Format(ctx, &buf, []string{"x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFormatTracesDegradedLines(t *testing.T) {
	var traceBuf, out bytes.Buffer
	tr := trace.NewStreamTracer(&traceBuf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	if _, err := New(Options{}).Format(ctx, &out, []string{"Warning: no location here."}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(traceBuf.String(), "line:degraded (line 1: no file location)") {
		t.Errorf("missing degraded trace event:\n%s", traceBuf.String())
	}
}

func TestFormatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solcstd")
	content := "contracts/Token.sol:12:5: Warning: Unused local variable.\n\n    ^---^\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	st, err := FormatFile(context.Background(), &buf, path, Options{Styler: tagStyler{}})
	if err != nil {
		t.Fatal(err)
	}
	want := "contracts/<b><c4>Token.sol</>:<c5>12:5</>\n<b><c3>Warning:</>\nUnused local variable.\n<c1>    ^---^</>\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\nwant: %q\ngot:  %q", want, buf.String())
	}
	if st.Skipped != 1 {
		t.Errorf("Skipped = %d", st.Skipped)
	}
}

func TestFormatFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solcstd")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := FormatFile(context.Background(), &buf, path, Options{Styler: tagStyler{}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<b>Success!</>\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatFileMissing(t *testing.T) {
	var buf bytes.Buffer
	_, err := FormatFile(context.Background(), &buf, filepath.Join(t.TempDir(), "missing"), Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written before failure: %q", buf.String())
	}
}
