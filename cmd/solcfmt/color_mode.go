package main

import (
	"fmt"
	"io"
	"os"

	"solcfmt/internal/termstyle"
)

func readColorMode(value string) (termstyle.Mode, error) {
	mode, err := termstyle.ParseMode(value)
	if err != nil {
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
	return mode, nil
}

// outputFile unwraps w for the terminal check. Writers that are not files
// never count as terminals.
func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

// styleFor resolves mode against out, see termstyle.Select.
func styleFor(mode termstyle.Mode, out io.Writer) (st termstyle.Styler, colored bool, fallback error) {
	return termstyle.Select(mode, outputFile(out))
}
