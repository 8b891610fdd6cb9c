package combiner

import (
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/LendBit-p2p/lendbit-localised/artifacts"
	"github.com/LendBit-p2p/lendbit-localised/config"
)

// Facet is the ABI taken from one artifact.
type Facet struct {
	Name    string
	Entries []json.RawMessage
	// HasABI is false when the artifact had no abi array and was skipped.
	HasABI bool
}

type Result struct {
	Facets []Facet
}

// Entries returns every facet's entries concatenated in facet order.
func (r *Result) Entries() []json.RawMessage {
	total := 0
	for _, f := range r.Facets {
		total += len(f.Entries)
	}
	entries := make([]json.RawMessage, 0, total)
	for _, f := range r.Facets {
		entries = append(entries, f.Entries...)
	}
	return entries
}

type Combiner struct {
	layout artifacts.Layout
	facets []string
}

func New(layout artifacts.Layout, facets []string) (*Combiner, error) {
	if len(facets) == 0 {
		return nil, errors.New(config.ErrNoFacets)
	}
	for i, name := range facets {
		if name == "" {
			return nil, errors.Errorf(config.ErrEmptyFacetName, i)
		}
	}
	return &Combiner{
		layout: layout,
		facets: append([]string(nil), facets...),
	}, nil
}

// Combine loads every facet in order. The first read or parse failure aborts
// the pass.
func (c *Combiner) Combine() (*Result, error) {
	result := &Result{Facets: make([]Facet, 0, len(c.facets))}
	for _, name := range c.facets {
		record, err := c.layout.Load(name)
		if err != nil {
			return nil, err
		}

		entries, ok := record.ABI()
		if !ok {
			slog.Debug("artifact has no abi array, skipping", "facet", name, "path", c.layout.Path(name))
		} else {
			slog.Debug("extracted abi", "facet", name, "entries", len(entries))
		}
		result.Facets = append(result.Facets, Facet{Name: name, Entries: entries, HasABI: ok})
	}
	return result, nil
}

// Run combines all facets and writes the combined ABI to output. Nothing is
// written unless every artifact was read and parsed.
func (c *Combiner) Run(output string) (*Result, error) {
	result, err := c.Combine()
	if err != nil {
		return nil, err
	}
	data, err := Encode(result.Entries())
	if err != nil {
		return nil, err
	}
	if err := WriteFile(output, data); err != nil {
		return nil, err
	}
	return result, nil
}
