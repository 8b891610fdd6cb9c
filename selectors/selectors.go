// Package selectors derives the function selectors, event topics and error
// selectors exposed by each facet, and finds function selectors shared by more
// than one facet. A diamond routes calls by selector, so such a collision
// means one of the facets can never be reached.
package selectors

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/LendBit-p2p/lendbit-localised/combiner"
	"github.com/LendBit-p2p/lendbit-localised/config"
)

type Selector struct {
	Facet     string
	Kind      string
	Name      string
	Signature string
	// 4 bytes for functions and errors, the full topic for events
	Selector string
}

type Collision struct {
	Selector   string
	Signatures []string
	Facets     []string
}

type FacetSummary struct {
	Name      string
	Functions int
	Events    int
	Errors    int
}

type Report struct {
	Selectors  []Selector
	Collisions []Collision
	Facets     []FacetSummary
	Skipped    []SkippedFacet
}

// SkippedFacet is a facet whose entries could not be parsed as an ABI.
type SkippedFacet struct {
	Name string
	Err  error
}

// FromFacet parses a facet's entries and lists what it exposes, ordered by
// kind and then signature.
func FromFacet(name string, entries []json.RawMessage) ([]Selector, error) {
	if entries == nil {
		entries = []json.RawMessage{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf(config.ErrFailedToParseABI, name, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf(config.ErrFailedToParseABI, name, err)
	}

	rows := make([]Selector, 0, len(parsed.Methods)+len(parsed.Events)+len(parsed.Errors))
	for _, m := range parsed.Methods {
		rows = append(rows, Selector{
			Facet:     name,
			Kind:      config.KindFunction,
			Name:      m.RawName,
			Signature: m.Sig,
			Selector:  hexutil.Encode(m.ID),
		})
	}
	for _, ev := range parsed.Events {
		rows = append(rows, Selector{
			Facet:     name,
			Kind:      config.KindEvent,
			Name:      ev.RawName,
			Signature: ev.Sig,
			Selector:  ev.ID.Hex(),
		})
	}
	for _, e := range parsed.Errors {
		rows = append(rows, Selector{
			Facet:     name,
			Kind:      config.KindError,
			Name:      e.Name,
			Signature: e.Sig,
			Selector:  hexutil.Encode(e.ID[:4]),
		})
	}

	slices.SortFunc(rows, func(a, b Selector) int {
		if c := cmp.Compare(kindOrder(a.Kind), kindOrder(b.Kind)); c != 0 {
			return c
		}
		return cmp.Compare(a.Signature, b.Signature)
	})
	return rows, nil
}

func kindOrder(kind string) int {
	switch kind {
	case config.KindFunction:
		return 0
	case config.KindEvent:
		return 1
	default:
		return 2
	}
}

// Build lists the selectors of every facet, in facet order, and the function
// selectors claimed by more than one facet.
func Build(facets []combiner.Facet) *Report {
	report := &Report{}

	for _, facet := range facets {
		rows, err := FromFacet(facet.Name, facet.Entries)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFacet{Name: facet.Name, Err: err})
			continue
		}
		summary := FacetSummary{Name: facet.Name}
		for _, row := range rows {
			switch row.Kind {
			case config.KindFunction:
				summary.Functions++
			case config.KindEvent:
				summary.Events++
			case config.KindError:
				summary.Errors++
			}
		}
		report.Facets = append(report.Facets, summary)
		report.Selectors = append(report.Selectors, rows...)
	}

	report.Collisions = collisions(report.Selectors)
	return report
}

func collisions(rows []Selector) []Collision {
	bySelector := make(map[string]*Collision)
	var order []string
	for _, row := range rows {
		if row.Kind != config.KindFunction {
			continue
		}
		c, ok := bySelector[row.Selector]
		if !ok {
			c = &Collision{Selector: row.Selector}
			bySelector[row.Selector] = c
			order = append(order, row.Selector)
		}
		if !slices.Contains(c.Facets, row.Facet) {
			c.Facets = append(c.Facets, row.Facet)
		}
		if !slices.Contains(c.Signatures, row.Signature) {
			c.Signatures = append(c.Signatures, row.Signature)
		}
	}

	var out []Collision
	for _, sel := range order {
		if c := bySelector[sel]; len(c.Facets) > 1 {
			out = append(out, *c)
		}
	}
	slices.SortFunc(out, func(a, b Collision) int { return cmp.Compare(a.Selector, b.Selector) })
	return out
}
