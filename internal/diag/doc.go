// Package diag defines the diagnostic model for compiler log lines.
//
// # Purpose
//
//   - Classify every line of a compiler log (warning, error, caret pointer,
//     plain text).
//   - Decompose warning and error lines into a file location, the marker
//     that triggered the match and the message body.
//   - Split message bodies into sentence fragments for line-per-sentence
//     rendering.
//
// # Scope
//
// Package diag does not perform any styling, IO or CLI integration.
// Rendering lives in internal/render, structured dumps in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Kind – the line classification (see kind.go). Priority is
//     Warning > Error > Caret > Plain, so a line holding both "Warning:" and
//     "Error:" is a warning.
//   - Marker – the literal text the line was split on.
//   - Category – a word glued to the marker, "Type" for "TypeError:".
//   - Location – directory, file name and colon-delimited position parts.
//     ParseLocation reports ErrNoLocation instead of guessing when the text
//     before the marker is not a "path:line:col:" location.
//   - Message and Fragments – the body after the marker.
//
// Keep the model deterministic: parsing the same line twice must yield the
// same Diagnostic, so repeated runs over one log render identical output.
package diag
