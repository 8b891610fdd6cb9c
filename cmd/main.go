package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kouhin/envflag"

	"github.com/LendBit-p2p/lendbit-localised/cmd/extractabi"
	"github.com/LendBit-p2p/lendbit-localised/config"
)

type flags struct {
	outDir        string
	unitExt       string
	facets        string
	output        string
	selectors     bool
	selectorsXLSX string
	verbose       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cli := flag.NewFlagSet("extractabi", flag.ContinueOnError)
	opts, verbose, err := parseFlags(cli, args)
	if errors.Is(err, flag.ErrHelp) {
		cli.SetOutput(stderr)
		cli.PrintDefaults()
		return 0
	}
	if err != nil {
		slog.Error("failed to parse flags", "error", err)
		cli.SetOutput(stderr)
		cli.PrintDefaults()
		return 1
	}
	if verbose {
		level.Set(slog.LevelDebug)
	}

	cmd, err := extractabi.New(opts)
	if err != nil {
		slog.Error("failed to create extractabi command", "error", err)
		return 1
	}
	if err := cmd.Run(); err != nil {
		slog.Error("failed to extract abi", "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s written.\n", cmd.Output())
	return 0
}

// parseFlags applies EXTRACTABI_* environment variables first, then args.
// Env values go through a separate flag set whose names carry the prefix, so
// unrelated variables such as OUTPUT are never picked up.
func parseFlags(cli *flag.FlagSet, args []string) (extractabi.Options, bool, error) {
	var f flags
	env := flag.NewFlagSet("extractabi-env", flag.ContinueOnError)
	bindFlags(env, config.EnvPrefix, &f)
	bindFlags(cli, "", &f)
	cli.SetOutput(io.Discard)

	if err := envflag.NewEnvFlag(env, 3, map[string]string{}, false, false).ProcessFlagWithEnv(); err != nil {
		return extractabi.Options{}, false, err
	}
	if err := cli.Parse(args); err != nil {
		return extractabi.Options{}, false, err
	}

	opts := extractabi.DefaultOptions()
	opts.ArtifactsDir = f.outDir
	opts.UnitExt = f.unitExt
	opts.Facets = splitFacets(f.facets)
	opts.Output = f.output
	opts.Selectors = f.selectors
	opts.SelectorsXLSX = f.selectorsXLSX
	return opts, f.verbose, nil
}

func bindFlags(fs *flag.FlagSet, prefix string, f *flags) {
	fs.StringVar(&f.outDir, prefix+"out-dir", config.DefaultArtifactsDir, "compiled artifacts directory"+envHint("out-dir"))
	fs.StringVar(&f.unitExt, prefix+"unit-ext", config.DefaultUnitExt, "extension of the per-unit artifact directories"+envHint("unit-ext"))
	fs.StringVar(&f.facets, prefix+"facets", config.DefaultFacetsFlag, "comma separated facet names, in output order"+envHint("facets"))
	fs.StringVar(&f.output, prefix+"output", config.DefaultOutputFile, "combined abi output file"+envHint("output"))
	fs.BoolVar(&f.selectors, prefix+"selectors", false, "log facet selectors and selector collisions"+envHint("selectors"))
	fs.StringVar(&f.selectorsXLSX, prefix+"selectors-xlsx", "", "write the selector report to this xlsx file"+envHint("selectors-xlsx"))
	fs.BoolVar(&f.verbose, prefix+"verbose", false, "enable debug logs"+envHint("verbose"))
}

func envHint(name string) string {
	return " (env var: " + strings.ToUpper(strings.ReplaceAll(config.EnvPrefix+name, "-", "_")) + ")"
}

func splitFacets(list string) []string {
	var facets []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			facets = append(facets, name)
		}
	}
	return facets
}
