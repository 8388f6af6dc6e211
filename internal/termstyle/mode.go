package termstyle

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Mode controls when styling is emitted.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ErrUnknownMode is returned by ParseMode for values other than auto|on|off.
var ErrUnknownMode = errors.New("unknown color mode")

// ParseMode reads a --color style value. The empty string means auto.
func ParseMode(value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on", "always":
		return ModeOn, nil
	case "off", "never":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("%w %q (expected auto|on|off)", ErrUnknownMode, value)
	}
}

// ResolverFor picks the capability resolver for output written to out.
// A non-nil error reports that the terminfo entry could not be loaded and
// fixed ANSI sequences are used instead; the returned Resolver is always usable.
func ResolverFor(mode Mode, out *os.File) (Resolver, error) {
	switch mode {
	case ModeOff:
		return NoneResolver{}, nil
	case ModeOn:
		return terminalResolver()
	default:
		if !colorsWanted(out) {
			return NoneResolver{}, nil
		}
		return terminalResolver()
	}
}

// Select is ResolverFor wrapped in a Styler. colored is false when every
// token is empty; fallback is the terminfo error from ResolverFor.
func Select(mode Mode, out *os.File) (st Styler, colored bool, fallback error) {
	r, fallback := ResolverFor(mode, out)
	_, none := r.(NoneResolver)
	return New(r), !none, fallback
}

func terminalResolver() (Resolver, error) {
	tr, err := LoadTerminfo()
	if err != nil {
		return ANSIResolver{}, err
	}
	return tr, nil
}

// colorsWanted applies NO_COLOR, TERM=dumb and the terminal check.
// fatih/color already folds all three into NoColor for stdout.
func colorsWanted(out *os.File) bool {
	if out == nil {
		return false
	}
	if out == os.Stdout {
		return !color.NoColor
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
