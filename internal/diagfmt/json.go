package diagfmt

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"solcfmt/internal/diag"
)

// schemaVersion is bumped whenever DiagnosticsOutput changes shape.
const schemaVersion uint16 = 1

// LocationJSON is the file position of a diagnostic.
type LocationJSON struct {
	Path      string   `json:"path"`
	Directory string   `json:"directory,omitempty"`
	File      string   `json:"file"`
	Parts     []string `json:"parts,omitempty"`
	Line      uint32   `json:"line,omitempty"`
	Column    uint32   `json:"column,omitempty"`
}

// DiagnosticJSON is one log line in structured form.
type DiagnosticJSON struct {
	Line      int           `json:"line"`
	Kind      string        `json:"kind"`
	Label     string        `json:"label,omitempty"`
	Category  string        `json:"category,omitempty"`
	Location  *LocationJSON `json:"location,omitempty"`
	Message   string        `json:"message,omitempty"`
	Fragments []string      `json:"fragments,omitempty"`
	Raw       string        `json:"raw,omitempty"`
}

// DiagnosticsOutput is the root of the json and msgpack dumps.
type DiagnosticsOutput struct {
	Schema      uint16           `json:"schema"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Warnings    int              `json:"warnings"`
	Errors      int              `json:"errors"`
}

// BuildDiagnosticsOutput assembles the dump without serializing it.
// Warning and error counters cover every input line, even past opts.Max.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, opts Opts) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Schema:      schemaVersion,
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
	}

	for _, d := range diags {
		switch d.Kind {
		case diag.KindWarning:
			out.Warnings++
		case diag.KindError:
			out.Errors++
		}
		if !d.Kind.IsDiagnostic() && !opts.All {
			continue
		}
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			continue
		}
		out.Diagnostics = append(out.Diagnostics, makeDiagnostic(d, opts))
	}

	out.Count = len(out.Diagnostics)
	return out
}

func makeDiagnostic(d diag.Diagnostic, opts Opts) DiagnosticJSON {
	if !d.Kind.IsDiagnostic() {
		return DiagnosticJSON{Line: d.Line, Kind: d.Kind.String(), Raw: d.Raw}
	}

	dj := DiagnosticJSON{
		Line:      d.Line,
		Kind:      d.Kind.String(),
		Label:     d.Label(),
		Category:  d.Category,
		Message:   d.Message,
		Fragments: d.Fragments,
	}
	if d.HasLocation {
		loc := makeLocation(d.Location, opts)
		dj.Location = &loc
	}
	return dj
}

func makeLocation(loc diag.Location, opts Opts) LocationJSON {
	lj := LocationJSON{
		Path:      formatPath(loc, opts),
		Directory: loc.Directory,
		File:      loc.FileName,
		Parts:     loc.Parts,
	}
	if line, ok := loc.Line(); ok {
		lj.Line = line
	}
	if col, ok := loc.Column(); ok {
		lj.Column = col
	}
	return lj
}

func formatPath(loc diag.Location, opts Opts) string {
	path := loc.Path()
	switch opts.PathMode {
	case PathModeBasename:
		return loc.FileName
	case PathModeAbsolute:
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.ToSlash(filepath.Join(baseDir(opts), path))
	case PathModeRelative:
		if !filepath.IsAbs(path) {
			return path
		}
		rel, err := filepath.Rel(baseDir(opts), path)
		if err != nil {
			return path
		}
		return filepath.ToSlash(rel)
	default:
		return path
	}
}

func baseDir(opts Opts) string {
	if opts.BaseDir != "" {
		return opts.BaseDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// JSON writes the dump as indented JSON.
func JSON(w io.Writer, diags []diag.Diagnostic, opts Opts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(diags, opts))
}
