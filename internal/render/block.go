package render

import (
	"strings"
	"unicode"

	"solcfmt/internal/diag"
	"solcfmt/internal/termstyle"
)

const successText = "Success!"

// Block is the styled rendering of one log line, one entry per output line.
type Block []string

// accent is the marker color per diagnostic kind.
func accent(k diag.Kind) termstyle.Palette {
	if k == diag.KindWarning {
		return termstyle.Orange
	}
	return termstyle.Red
}

// Block renders a parsed line. Plain lines come back verbatim and caret
// lines wrapped in red.
func (f *Formatter) Block(d diag.Diagnostic) Block {
	s := f.styler
	switch d.Kind {
	case diag.KindWarning, diag.KindError:
		return f.diagnosticBlock(d)
	case diag.KindCaret:
		return Block{s.Color(termstyle.Red) + d.Raw + s.Reset()}
	default:
		return Block{d.Raw}
	}
}

func (f *Formatter) diagnosticBlock(d diag.Diagnostic) Block {
	s := f.styler
	b := make(Block, 0, 2+len(d.Fragments))

	if d.HasLocation {
		b = append(b, f.locationLine(d.Location))
	} else if prefix := strings.TrimRightFunc(d.Prefix, unicode.IsSpace); prefix != "" {
		b = append(b, prefix)
	}

	b = append(b, s.Bold()+s.Color(accent(d.Kind))+d.Marker+s.Reset())
	return append(b, d.Fragments...)
}

// locationLine renders "dir/" + bold blue file name + ":" + purple parts.
func (f *Formatter) locationLine(loc diag.Location) string {
	s := f.styler
	var sb strings.Builder
	sb.WriteString(loc.DirPrefix())
	sb.WriteString(s.Bold())
	sb.WriteString(s.Color(termstyle.Blue))
	sb.WriteString(loc.FileName)
	sb.WriteString(s.Reset())
	if len(loc.Parts) > 0 {
		sb.WriteByte(':')
		sb.WriteString(s.Color(termstyle.Purple))
		sb.WriteString(strings.Join(loc.Parts, ":"))
		sb.WriteString(s.Reset())
	}
	return sb.String()
}

func (f *Formatter) successLine() string {
	return f.styler.Bold() + successText + f.styler.Reset()
}
