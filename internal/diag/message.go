package diag

import "strings"

const sentenceBreak = ". "

// SplitMessage breaks a message body into sentences on ". ".
// The period consumed by the split is put back on every fragment but the
// last, which keeps whatever it ended with. An empty body is one empty
// fragment.
func SplitMessage(msg string) []string {
	parts := strings.Split(msg, sentenceBreak)
	for i := 0; i < len(parts)-1; i++ {
		parts[i] += "."
	}
	return parts
}

// JoinMessage reverses SplitMessage.
func JoinMessage(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range fragments {
		if i < len(fragments)-1 {
			b.WriteString(strings.TrimSuffix(f, "."))
			b.WriteString(sentenceBreak)
			continue
		}
		b.WriteString(f)
	}
	return b.String()
}
