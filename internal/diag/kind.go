package diag

import "strings"

// Markers recognised in compiler output.
const (
	WarningMarker = "Warning:"
	ErrorMarker   = "Error:"
	CaretMarker   = "^-"
)

// Kind classifies one line of compiler output.
type Kind uint8

const (
	// KindPlain is passed through untouched.
	KindPlain Kind = iota
	// KindWarning contains WarningMarker.
	KindWarning
	// KindError contains ErrorMarker and no WarningMarker.
	KindError
	// KindCaret points at a source column with CaretMarker.
	KindCaret
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindCaret:
		return "caret"
	}
	return "unknown"
}

// Marker returns the text a diagnostic of this kind is split on,
// or "" for kinds that are not split.
func (k Kind) Marker() string {
	switch k {
	case KindWarning:
		return WarningMarker
	case KindError:
		return ErrorMarker
	default:
		return ""
	}
}

// IsDiagnostic reports whether lines of this kind carry a location and message.
func (k Kind) IsDiagnostic() bool {
	return k == KindWarning || k == KindError
}

// Classify returns the kind of a raw log line.
func Classify(raw string) Kind {
	switch {
	case strings.Contains(raw, WarningMarker):
		return KindWarning
	case strings.Contains(raw, ErrorMarker):
		return KindError
	case strings.Contains(raw, CaretMarker):
		return KindCaret
	default:
		return KindPlain
	}
}
