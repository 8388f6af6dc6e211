package termstyle

import (
	"fmt"
	"os"

	"github.com/xo/terminfo"
)

// TerminfoResolver expands capabilities from the terminfo database entry of
// a terminal, the in-process equivalent of tput.
type TerminfoResolver struct {
	ti *terminfo.Terminfo
}

// LoadTerminfo loads the entry named by $TERM.
func LoadTerminfo() (*TerminfoResolver, error) {
	ti, err := terminfo.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load terminfo for TERM=%q: %w", os.Getenv("TERM"), err)
	}
	return NewTerminfoResolver(ti), nil
}

// NewTerminfoResolver wraps an already loaded entry.
func NewTerminfoResolver(ti *terminfo.Terminfo) *TerminfoResolver {
	return &TerminfoResolver{ti: ti}
}

// Resolve implements Resolver.
func (r *TerminfoResolver) Resolve(c Capability, params ...int) string {
	if r == nil || r.ti == nil {
		return ""
	}
	switch c {
	case CapBold:
		return r.ti.Printf(terminfo.EnterBoldMode)
	case CapForeground:
		args := make([]interface{}, len(params))
		for i, p := range params {
			args[i] = p
		}
		return r.ti.Printf(terminfo.SetAForeground, args...)
	case CapReset:
		return r.ti.Printf(terminfo.ExitAttributeMode)
	default:
		return ""
	}
}

// String is "terminfo" followed by the primary name of the loaded entry.
func (r *TerminfoResolver) String() string {
	if r == nil || r.ti == nil || len(r.ti.Names) == 0 {
		return "terminfo"
	}
	return "terminfo " + r.ti.Names[0]
}
