package diag

import (
	"fmt"
	"strings"
)

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation: "<kind> <path>:<parts> <label> <message>". Entries without a
// location print "-" in place of the path. Non-diagnostic kinds are skipped.
func FormatShortDiagnostics(diags []Diagnostic) string {
	var b strings.Builder
	first := true
	for _, d := range diags {
		if !d.Kind.IsDiagnostic() {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "%s %s %s %s", d.Kind, shortLocation(d), d.Label(), sanitizeMessage(d.Message))
	}
	return b.String()
}

func shortLocation(d Diagnostic) string {
	if !d.HasLocation {
		return "-"
	}
	if len(d.Location.Parts) == 0 {
		return d.Location.Path()
	}
	return d.Location.Path() + ":" + strings.Join(d.Location.Parts, ":")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
