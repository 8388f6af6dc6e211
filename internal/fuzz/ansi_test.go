package fuzztests

import "regexp"

var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
