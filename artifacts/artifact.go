package artifacts

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/LendBit-p2p/lendbit-localised/config"
)

// Layout describes where compiled artifacts live: one directory per
// compilation unit, each holding one JSON file per contract.
type Layout struct {
	Dir     string
	UnitExt string
}

func DefaultLayout() Layout {
	return Layout{Dir: config.DefaultArtifactsDir, UnitExt: config.DefaultUnitExt}
}

// Path returns <Dir>/<name>.<UnitExt>/<name>.json
func (l Layout) Path(name string) string {
	return filepath.Join(l.Dir, name+"."+l.UnitExt, name+config.ArtifactFileExt)
}

// Load reads and parses the artifact for name.
func (l Layout) Load(name string) (Record, error) {
	path := l.Path(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Name: name, Path: path, Err: err}
	}
	record, err := Parse(raw)
	if err != nil {
		return nil, &ParseError{Name: name, Path: path, Err: err}
	}
	return record, nil
}

// Record is a parsed artifact. Values are kept raw so that whatever is
// extracted is written back untouched.
type Record map[string]json.RawMessage

// Parse decodes an artifact. Any well-formed JSON is accepted; values other
// than an object yield an empty record, except null which cannot be indexed.
func Parse(raw []byte) (Record, error) {
	var value json.RawMessage
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	value = bytes.TrimSpace(value)

	switch value[0] {
	case 'n':
		return nil, errors.New(config.ErrNullArtifact)
	case '{':
		var record Record
		if err := json.Unmarshal(value, &record); err != nil {
			return nil, err
		}
		return record, nil
	default:
		return Record{}, nil
	}
}

// ABI returns the entries of the abi field in their original order. ok is
// false when the field is absent or is not an array.
func (r Record) ABI() (entries []json.RawMessage, ok bool) {
	raw := bytes.TrimSpace(r[config.ABIField])
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries, true
}
