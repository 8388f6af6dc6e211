package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// summaryBlock renders the warning and error counters as an aligned table.
func summaryBlock(w io.Writer, st Stats, colored bool) Block {
	r := lipgloss.NewRenderer(w)
	if colored {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	label := r.NewStyle().Bold(true)
	rows := []struct {
		name  string
		count int
		style lipgloss.Style
	}{
		{"warnings", st.Warnings, r.NewStyle().Foreground(lipgloss.Color("3"))},
		{"errors", st.Errors, r.NewStyle().Foreground(lipgloss.Color("1"))},
	}

	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.name))
	}

	b := make(Block, 0, len(rows))
	for _, row := range rows {
		pad := width - runewidth.StringWidth(row.name) + 2
		b = append(b, label.Render(row.name)+strings.Repeat(" ", pad)+row.style.Render(strconv.Itoa(row.count)))
	}
	return b
}
