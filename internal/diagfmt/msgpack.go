package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"solcfmt/internal/diag"
)

// Msgpack writes the dump as a single msgpack document. Field names follow
// the json tags so both encodings carry the same keys.
func Msgpack(w io.Writer, diags []diag.Diagnostic, opts Opts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildDiagnosticsOutput(diags, opts))
}

// DecodeMsgpack reads a dump written by Msgpack.
func DecodeMsgpack(r io.Reader) (DiagnosticsOutput, error) {
	var out DiagnosticsOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&out); err != nil {
		return DiagnosticsOutput{}, err
	}
	return out, nil
}
