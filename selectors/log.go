package selectors

import (
	"log/slog"
	"strings"
)

// Log writes one line per facet and one warning per collision or skipped facet.
func (r *Report) Log() {
	for _, f := range r.Facets {
		slog.Info("facet selectors",
			"facet", f.Name,
			"functions", f.Functions,
			"events", f.Events,
			"errors", f.Errors,
		)
	}
	for _, s := range r.Skipped {
		slog.Warn("skipped facet in selector report", "facet", s.Name, "error", s.Err)
	}
	for _, c := range r.Collisions {
		slog.Warn("function selector claimed by more than one facet",
			"selector", c.Selector,
			"signatures", strings.Join(c.Signatures, ","),
			"facets", strings.Join(c.Facets, ","),
		)
	}
}
