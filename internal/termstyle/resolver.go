package termstyle

// Capability names a terminal feature the styler asks for.
type Capability uint8

const (
	// CapBold turns on bold weight (tput bold).
	CapBold Capability = iota + 1
	// CapForeground selects a foreground color, one numeric param (tput setaf).
	CapForeground
	// CapReset clears every active attribute (tput sgr0).
	CapReset
)

// String returns the terminfo short name of the capability.
func (c Capability) String() string {
	switch c {
	case CapBold:
		return "bold"
	case CapForeground:
		return "setaf"
	case CapReset:
		return "sgr0"
	default:
		return "unknown"
	}
}

// Resolver turns a capability request into the escape text for the current
// terminal. Capabilities the terminal lacks resolve to "".
type Resolver interface {
	Resolve(c Capability, params ...int) string
}

// NoneResolver resolves every capability to "".
type NoneResolver struct{}

// Resolve returns "".
func (NoneResolver) Resolve(Capability, ...int) string { return "" }

// String names the resolver for diagnostics output.
func (NoneResolver) String() string { return "none" }
