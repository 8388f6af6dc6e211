package diag

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Diagnostic is one parsed log line.
type Diagnostic struct {
	Line     int // 1-based line number in the log
	Kind     Kind
	Raw      string
	Marker   string
	Category string // "Type" in "TypeError:", empty for a bare marker
	Prefix   string // text before Category and Marker

	Location    Location
	HasLocation bool
	LocationErr error

	Message   string
	Fragments []string
}

// Label is the marker as it appeared in the line, category included.
// Rendered output shows only Marker; Label is for structured dumps.
func (d Diagnostic) Label() string {
	return d.Category + d.Marker
}

// Parse classifies raw and, for warnings and errors, splits it at the first
// marker into location and message. Other kinds keep Raw only.
func Parse(line int, raw string) Diagnostic {
	d := Diagnostic{
		Line: line,
		Kind: Classify(raw),
		Raw:  raw,
	}
	if !d.Kind.IsDiagnostic() {
		return d
	}

	d.Marker = d.Kind.Marker()
	prefix, suffix, _ := strings.Cut(raw, d.Marker)
	d.Prefix, d.Category = splitCategory(prefix)

	loc, err := ParseLocation(d.Prefix)
	if err == nil {
		d.Location = loc
		d.HasLocation = true
	} else {
		d.LocationErr = err
	}

	d.Message = dropFirstRune(suffix)
	d.Fragments = SplitMessage(d.Message)
	return d
}

// dropFirstRune removes the separator the compiler puts after the marker.
func dropFirstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}

// splitCategory detaches a word written directly before the marker,
// as in "ParserError:" or "DeclarationError:".
func splitCategory(prefix string) (rest, category string) {
	start := 0
	if i := strings.LastIndexFunc(prefix, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(prefix[i:])
		start = i + size
	}
	word := prefix[start:]
	if word == "" {
		return prefix, ""
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return prefix, ""
		}
	}
	return prefix[:start], word
}

// ParseLines parses every non-empty line of a log. Line numbers count
// skipped lines too, so they match the file.
func ParseLines(lines []string) []Diagnostic {
	out := make([]Diagnostic, 0, len(lines))
	for i, raw := range lines {
		raw = strings.TrimSuffix(raw, "\n")
		if raw == "" {
			continue
		}
		out = append(out, Parse(i+1, raw))
	}
	return out
}
