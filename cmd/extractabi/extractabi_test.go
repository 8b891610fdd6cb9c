package extractabi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/LendBit-p2p/lendbit-localised/config"
)

func writeFacet(t *testing.T, dir, name, content string) {
	t.Helper()
	unit := filepath.Join(dir, name+".sol")
	require.NoError(t, os.MkdirAll(unit, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(unit, name+".json"), []byte(content), 0o644))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "out", opts.ArtifactsDir)
	assert.Equal(t, "sol", opts.UnitExt)
	assert.Equal(t, "CombinedABI.json", opts.Output)
	assert.Equal(t, []string{
		"OwnershipFacet",
		"ProtocolFacet",
		"PositionManagerFacet",
		"VaultManagerFacet",
		"PriceOracleFacet",
		"LiquidationFacet",
	}, opts.Facets)
	assert.False(t, opts.Selectors)
}

func TestRun_WithSelectorSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	artifactsDir := filepath.Join(dir, "out")
	writeFacet(t, artifactsDir, "OwnershipFacet", `{"abi":[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]}]}`)
	writeFacet(t, artifactsDir, "ProtocolFacet", `{"abi":[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]}]}`)

	opts := DefaultOptions()
	opts.ArtifactsDir = artifactsDir
	opts.Facets = []string{"OwnershipFacet", "ProtocolFacet"}
	opts.Output = filepath.Join(dir, config.DefaultOutputFile)
	opts.SelectorsXLSX = filepath.Join(dir, "selectors.xlsx")

	cmd, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, cmd.Run())
	assert.Equal(t, opts.Output, cmd.Output())

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]}
	]`, string(data))

	f, err := excelize.OpenFile(opts.SelectorsXLSX)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	rows, err := f.GetRows(config.CollisionsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"0x8da5cb5b", "owner()", "OwnershipFacet, ProtocolFacet"}, rows[1])
}

func TestRun_MissingFacetFails(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.ArtifactsDir = filepath.Join(dir, "out")
	opts.Output = filepath.Join(dir, config.DefaultOutputFile)

	cmd, err := New(opts)
	require.NoError(t, err)
	require.Error(t, cmd.Run())

	_, err = os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestNew_NoFacets(t *testing.T) {
	opts := DefaultOptions()
	opts.Facets = nil
	_, err := New(opts)
	require.Error(t, err)
}

func TestDefaultOptions_FacetsAreACopy(t *testing.T) {
	opts := DefaultOptions()
	opts.Facets[0] = "Changed"

	assert.Equal(t, "OwnershipFacet", config.DefaultFacets[0])
	assert.Equal(t, "OwnershipFacet", DefaultOptions().Facets[0])
}
