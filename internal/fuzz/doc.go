
// Package fuzztests houses Go fuzz harnesses for the log pipeline
// (source -> diag -> render). They guard against panics and hangs on
// arbitrary compiler output.
//
// Seeds come from testdata/logs and a handful of inline lines.

package fuzztests
