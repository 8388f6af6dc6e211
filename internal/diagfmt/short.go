package diagfmt

import (
	"io"

	"solcfmt/internal/diag"
)

// Short writes one line per warning or error, see diag.FormatShortDiagnostics.
func Short(w io.Writer, diags []diag.Diagnostic) error {
	s := diag.FormatShortDiagnostics(diags)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
