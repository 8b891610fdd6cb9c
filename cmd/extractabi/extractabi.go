package extractabi

import (
	"log/slog"
	"slices"

	"github.com/pkg/errors"

	"github.com/LendBit-p2p/lendbit-localised/artifacts"
	"github.com/LendBit-p2p/lendbit-localised/combiner"
	"github.com/LendBit-p2p/lendbit-localised/config"
	"github.com/LendBit-p2p/lendbit-localised/excel"
	"github.com/LendBit-p2p/lendbit-localised/selectors"
)

type Cmd struct {
	combiner      *combiner.Combiner
	output        string
	selectors     bool
	selectorsXLSX string
}

type Options struct {
	ArtifactsDir string
	UnitExt      string
	Facets       []string
	Output       string
	// Log a per-facet selector summary and any selector collisions
	Selectors bool
	// If set, also save the selector report as a spreadsheet
	SelectorsXLSX string
}

func DefaultOptions() Options {
	return Options{
		ArtifactsDir: config.DefaultArtifactsDir,
		UnitExt:      config.DefaultUnitExt,
		Facets:       slices.Clone(config.DefaultFacets),
		Output:       config.DefaultOutputFile,
	}
}

func New(opts Options) (*Cmd, error) {
	slog.Debug("initializing extractabi",
		"artifacts-dir", opts.ArtifactsDir,
		"unit-ext", opts.UnitExt,
		"facets", opts.Facets,
		"output", opts.Output,
	)

	c, err := combiner.New(artifacts.Layout{Dir: opts.ArtifactsDir, UnitExt: opts.UnitExt}, opts.Facets)
	if err != nil {
		return nil, err
	}
	return &Cmd{
		combiner:      c,
		output:        opts.Output,
		selectors:     opts.Selectors || opts.SelectorsXLSX != "",
		selectorsXLSX: opts.SelectorsXLSX,
	}, nil
}

// Run writes the combined ABI, then produces the selector report if asked.
func (c *Cmd) Run() error {
	result, err := c.combiner.Run(c.output)
	if err != nil {
		return err
	}
	slog.Debug("combined abi written", "output", c.output, "facets", len(result.Facets), "entries", len(result.Entries()))

	if !c.selectors {
		return nil
	}
	report := selectors.Build(result.Facets)
	report.Log()

	if c.selectorsXLSX != "" {
		if err := excel.WriteSelectorsXLSX(c.selectorsXLSX, report); err != nil {
			return errors.Wrap(err, config.ErrFailedToWriteXLSX)
		}
		slog.Info("selector spreadsheet written", "path", c.selectorsXLSX)
	}
	return nil
}

func (c *Cmd) Output() string {
	return c.output
}
