package combiner

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/LendBit-p2p/lendbit-localised/config"
)

// Encode renders entries as a JSON array indented with four spaces, without
// HTML escaping or a trailing newline. Entries are emitted verbatim apart from
// whitespace: number literals such as 1.0 and string escapes such as \u0041
// or \u2028 are kept as written rather than normalized.
func Encode(entries []json.RawMessage) ([]byte, error) {
	if entries == nil {
		entries = []json.RawMessage{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", config.OutputIndent)
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Wrap(err, config.ErrFailedToEncode)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile truncates and writes path in place. An existing file keeps its
// mode and a symlink is written through to its target.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, config.OutputFileMode); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
