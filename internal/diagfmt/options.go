package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps paths as the compiler printed them.
	PathModeAuto PathMode = iota
	// PathModeAbsolute resolves paths against BaseDir.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode reads a --paths flag value.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "", "auto":
		return PathModeAuto, true
	case "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	}
	return PathModeAuto, false
}

// Opts configures structured output of diagnostics.
type Opts struct {
	PathMode PathMode
	BaseDir  string // for absolute/relative modes, "" means the working directory
	Max      int    // cap on emitted records, 0 - unlimited
	All      bool   // include caret and plain lines
}
