package termstyle

import (
	"fmt"

	"github.com/fatih/color"
)

// ANSIResolver emits fixed ECMA-48 SGR sequences. It is used when colors are
// forced on but the terminal has no terminfo entry.
type ANSIResolver struct{}

// Resolve implements Resolver.
func (ANSIResolver) Resolve(c Capability, params ...int) string {
	switch c {
	case CapBold:
		return sgr(color.Bold)
	case CapForeground:
		if len(params) == 0 || params[0] < 0 || params[0] > 7 {
			return ""
		}
		return sgr(color.FgBlack + color.Attribute(params[0]))
	case CapReset:
		return sgr(color.Reset)
	default:
		return ""
	}
}

func sgr(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// String names the resolver for diagnostics output.
func (ANSIResolver) String() string { return "ansi" }
