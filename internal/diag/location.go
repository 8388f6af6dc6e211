package diag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"fortio.org/safecast"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrNoLocation is returned when the text before a marker is not a
// colon-terminated "path:line:col:" location.
var ErrNoLocation = errors.New("no file location")

// Location is the file position a diagnostic points at.
type Location struct {
	Directory string
	FileName  string
	Parts     []string // line, column, ... in the order they appear
}

// DirPrefix is the text printed before the file name: the directory and the
// slash that separated it, or "" for a bare file name.
func (l Location) DirPrefix() string {
	switch l.Directory {
	case "":
		return ""
	case "/":
		return "/"
	default:
		return l.Directory + "/"
	}
}

// Path joins Directory and FileName.
func (l Location) Path() string {
	return l.DirPrefix() + l.FileName
}

// Line returns the first position part as a number.
func (l Location) Line() (uint32, bool) {
	return l.numericPart(0)
}

// Column returns the second position part as a number.
func (l Location) Column() (uint32, bool) {
	return l.numericPart(1)
}

func (l Location) numericPart(i int) (uint32, bool) {
	if i >= len(l.Parts) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(l.Parts[i]))
	if err != nil {
		return 0, false
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, false
	}
	return v, true
}

var locationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Colon", Pattern: `:`},
	{Name: "Segment", Pattern: `[^:]+`},
})

// segmentGrammar accepts the last path segment: "file:" followed by any
// number of "part:". Every component must be closed by a colon, so
// "file.sol:12" without the trailing colon does not parse.
type segmentGrammar struct {
	File  string   `parser:"@Segment \":\""`
	Parts []string `parser:"( @Segment \":\" )*"`
}

var segmentParser = participle.MustBuild[segmentGrammar](
	participle.Lexer(locationLexer),
)

// ParseLocation decomposes the text that precedes a marker.
// Trailing whitespace is ignored. The prefix is cut at its last "/": what
// comes before is the directory, and only the final segment is split on ":"
// into the file name and its position parts. Colons inside the directory,
// as in "C:/proj" or "/tmp/a:b", stay part of the directory.
func ParseLocation(prefix string) (Location, error) {
	trimmed := strings.TrimRightFunc(prefix, unicode.IsSpace)
	if trimmed == "" {
		return Location{}, ErrNoLocation
	}

	dir, segment := "", trimmed
	switch i := strings.LastIndexByte(trimmed, '/'); {
	case i == 0:
		dir, segment = "/", trimmed[1:]
	case i > 0:
		dir, segment = trimmed[:i], trimmed[i+1:]
	}
	if segment == "" {
		return Location{}, fmt.Errorf("%w: %q: empty file name", ErrNoLocation, trimmed)
	}

	ast, err := segmentParser.ParseString("", segment)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q: %v", ErrNoLocation, trimmed, err)
	}

	loc := Location{Directory: dir, FileName: ast.File}
	if len(ast.Parts) > 0 {
		loc.Parts = ast.Parts
	}
	return loc, nil
}
