// Package config provides configuration defaults for parquet-flamegraph.
//
// This package defines all configurable constants with documented defaults.
// Users can override these values via a config file, environment variables
// or command line flags.
package config

// =============================================================================
// Input / Output Defaults
// =============================================================================

const (
	// ParquetExtension is the file extension recognized in directory mode.
	ParquetExtension = ".parquet"

	// DefaultUnit is the unit compressed sizes are displayed in.
	// Override via config: unit, env: PARQUET_FLAMEGRAPH_UNIT, flag: --unit
	DefaultUnit = "b"

	// DefaultFormat is the output format.
	// Override via config: format, flag: --format
	DefaultFormat = "svg"

	// TempFilePrefix prefixes the auto-generated output file name, which is
	// followed by a random UUID and the format extension.
	TempFilePrefix = "flamegraph_parquet-"

	// DefaultTitlePrefix starts the flame graph title; the input name follows.
	DefaultTitlePrefix = "Flamegraph parquet"
)

// =============================================================================
// Flame Graph Defaults
// =============================================================================

const (
	// DefaultImageWidth is the SVG width in pixels.
	// Override via config: flamegraph.width, flag: --width
	DefaultImageWidth = 1200

	// DefaultFrameHeight is the height of one frame in pixels.
	DefaultFrameHeight = 16

	// DefaultFontType is the font family used for every text element.
	DefaultFontType = "Verdana"

	// DefaultFontSize is the font size in pixels.
	DefaultFontSize = 12

	// DefaultFontWidth is the average glyph width relative to the font size.
	// It decides how many characters of a frame name fit in a frame.
	DefaultFontWidth = 0.59

	// DefaultMinWidth drops frames narrower than this many pixels.
	DefaultMinWidth = 0.1

	// DefaultPalette is the frame color scheme.
	// Override via config: flamegraph.palette, flag: --palette
	DefaultPalette = "hot"

	// DefaultHash colors frames by a hash of their name so repeated runs
	// produce the same colors.
	DefaultHash = true
)

// =============================================================================
// Parquet Export Defaults
// =============================================================================

const (
	// DefaultExportCompression is the codec used when exporting a profile as
	// a Parquet table.
	// Override via config: export.compression
	DefaultExportCompression = "zstd"
)

// =============================================================================
// Logging Defaults
// =============================================================================

const (
	// DefaultLogLevel is the minimum level written to stderr.
	// Override via config: log.level, env: PARQUET_FLAMEGRAPH_LOG_LEVEL
	DefaultLogLevel = "warn"
)
