// Package constants provides the enumerated string values shared between the
// command line, the config loader and the output sinks.
package constants

// =============================================================================
// Output Format
// =============================================================================

const (
	// FormatSVG renders an interactive flame graph.
	FormatSVG = "svg"

	// FormatFolded writes the raw folded stack lines.
	FormatFolded = "folded"

	// FormatParquet exports the stack lines as a Parquet table.
	FormatParquet = "parquet"
)

// ValidFormats contains all valid output formats
var ValidFormats = []string{FormatSVG, FormatFolded, FormatParquet}

// IsValidFormat checks if a format is valid
func IsValidFormat(format string) bool {
	return contains(ValidFormats, format)
}

// FormatExtension returns the file extension used for auto-generated
// output paths of the given format.
func FormatExtension(format string) string {
	switch format {
	case FormatFolded:
		return "txt"
	case FormatParquet:
		return "parquet"
	default:
		return "svg"
	}
}

// =============================================================================
// Palette - Flame graph color schemes
// =============================================================================

const (
	PaletteHot  = "hot"
	PaletteMem  = "mem"
	PaletteIO   = "io"
	PaletteAqua = "aqua"
)

// ValidPalettes contains all valid palettes
var ValidPalettes = []string{PaletteHot, PaletteMem, PaletteIO, PaletteAqua}

// IsValidPalette checks if a palette is valid
func IsValidPalette(palette string) bool {
	return contains(ValidPalettes, palette)
}

// =============================================================================
// Compression - Parquet export codecs
// =============================================================================

const (
	CompressionNone   = "none"
	CompressionSnappy = "snappy"
	CompressionZstd   = "zstd"
	CompressionLZ4    = "lz4"
	CompressionGzip   = "gzip"
)

// ValidCompressions contains all valid export codecs
var ValidCompressions = []string{
	CompressionNone, CompressionSnappy, CompressionZstd, CompressionLZ4, CompressionGzip,
}

// IsValidCompression checks if a codec name is valid
func IsValidCompression(name string) bool {
	return contains(ValidCompressions, name)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
