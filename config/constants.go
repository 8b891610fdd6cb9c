package config

import "strings"

// Artifact layout
const (
	// Foundry writes out/<Name>.sol/<Name>.json
	DefaultArtifactsDir = "out"
	DefaultUnitExt      = "sol"
	ArtifactFileExt     = ".json"

	// Key holding a contract's interface entries in an artifact
	ABIField = "abi"
)

// Output
const (
	DefaultOutputFile = "CombinedABI.json"
	OutputIndent      = "    "
	OutputFileMode    = 0o644
)

// Only variables carrying this prefix are read from the environment,
// e.g. EXTRACTABI_OUTPUT for -output.
const EnvPrefix = "extractabi-"

// Diamond facets, in the order their ABIs are concatenated
var DefaultFacets = []string{
	"OwnershipFacet",
	"ProtocolFacet",
	"PositionManagerFacet",
	"VaultManagerFacet",
	"PriceOracleFacet",
	"LiquidationFacet",
}

// DefaultFacetsFlag is DefaultFacets joined for use as a flag default.
var DefaultFacetsFlag = strings.Join(DefaultFacets, ",")

// Selector report
const (
	SelectorsSheet  = "Selectors"
	CollisionsSheet = "Collisions"

	KindFunction = "function"
	KindEvent    = "event"
	KindError    = "error"
)

// Error messages
const (
	ErrNoFacets          = "at least one facet name is required"
	ErrEmptyFacetName    = "facet name at position %d is empty"
	ErrFailedToRead      = "failed to read artifact %s"
	ErrFailedToParse     = "failed to parse artifact %s"
	ErrNullArtifact      = "artifact is null"
	ErrFailedToEncode    = "failed to encode combined abi"
	ErrFailedToWrite     = "failed to write %s"
	ErrFailedToParseABI  = "failed to parse abi of facet %s: %w"
	ErrFailedToWriteXLSX = "failed to write selectors spreadsheet"
)
