// Package loader - Configuration Types
//
// Defines the YAML configuration structure for parquet-flamegraph. Every
// field can also be set through the environment variable named in its env
// tag; command line flags win over both.
package loader

import (
	"github.com/xtxerr/parquet-flamegraph/config"
	"github.com/xtxerr/parquet-flamegraph/internal/flamegraph"
)

// =============================================================================
// Root Configuration
// =============================================================================

// Config is the root configuration structure.
type Config struct {
	// InputPath is a Parquet file or a directory of Parquet files.
	InputPath string `yaml:"input_path" env:"PARQUET_FLAMEGRAPH_INPUT_PATH" env-description:"Parquet file or directory"`

	// OutputPath is the destination file. Empty means a new temp file.
	OutputPath string `yaml:"output_path" env:"PARQUET_FLAMEGRAPH_OUTPUT_PATH" env-description:"Destination file (default: temp file)"`

	// Unit is one of b, kb, mb, gb.
	// Default: "b"
	Unit string `yaml:"unit" env:"PARQUET_FLAMEGRAPH_UNIT" env-description:"Display unit: b, kb, mb, gb"`

	// Format is one of svg, folded, parquet.
	// Default: "svg"
	Format string `yaml:"format" env:"PARQUET_FLAMEGRAPH_FORMAT" env-description:"Output format: svg, folded, parquet"`

	// Summary prints a per-column size table to stdout.
	Summary bool `yaml:"summary" env:"PARQUET_FLAMEGRAPH_SUMMARY" env-description:"Print a per-column size table"`

	// Flamegraph configures the SVG renderer.
	Flamegraph FlamegraphConfig `yaml:"flamegraph"`

	// Export configures the Parquet export format.
	Export ExportConfig `yaml:"export"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// FlamegraphConfig configures the SVG renderer.
type FlamegraphConfig struct {
	// Title overrides "Flamegraph parquet <input name>".
	Title string `yaml:"title" env:"PARQUET_FLAMEGRAPH_TITLE" env-description:"Flame graph title"`

	Subtitle string `yaml:"subtitle" env:"PARQUET_FLAMEGRAPH_SUBTITLE"`

	// Palette is one of hot, mem, io, aqua.
	Palette string `yaml:"palette" env:"PARQUET_FLAMEGRAPH_PALETTE" env-description:"Frame palette: hot, mem, io, aqua"`

	Width       int     `yaml:"width" env:"PARQUET_FLAMEGRAPH_WIDTH" env-description:"Image width in pixels"`
	FrameHeight int     `yaml:"frame_height" env:"PARQUET_FLAMEGRAPH_FRAME_HEIGHT"`
	FontType    string  `yaml:"font_type" env:"PARQUET_FLAMEGRAPH_FONT_TYPE"`
	FontSize    int     `yaml:"font_size" env:"PARQUET_FLAMEGRAPH_FONT_SIZE"`
	MinWidth    float64 `yaml:"min_width" env:"PARQUET_FLAMEGRAPH_MIN_WIDTH"`

	// Hash keeps frame colors stable across runs.
	Hash bool `yaml:"hash" env:"PARQUET_FLAMEGRAPH_HASH"`

	// Inverted draws an icicle graph.
	Inverted bool `yaml:"inverted" env:"PARQUET_FLAMEGRAPH_INVERTED"`
}

// ExportConfig configures the Parquet export format.
type ExportConfig struct {
	// Compression is one of none, snappy, zstd, lz4, gzip.
	// Default: "zstd"
	Compression string `yaml:"compression" env:"PARQUET_FLAMEGRAPH_EXPORT_COMPRESSION"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: "warn"
	Level string `yaml:"level" env:"PARQUET_FLAMEGRAPH_LOG_LEVEL" env-description:"Log level: debug, info, warn, error"`

	// JSON switches log output to JSON.
	JSON bool `yaml:"json" env:"PARQUET_FLAMEGRAPH_LOG_JSON"`
}

// =============================================================================
// Defaults
// =============================================================================

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Unit:   config.DefaultUnit,
		Format: config.DefaultFormat,

		Flamegraph: FlamegraphConfig{
			Palette:     config.DefaultPalette,
			Width:       config.DefaultImageWidth,
			FrameHeight: config.DefaultFrameHeight,
			FontType:    config.DefaultFontType,
			FontSize:    config.DefaultFontSize,
			MinWidth:    config.DefaultMinWidth,
			Hash:        config.DefaultHash,
		},

		Export: ExportConfig{
			Compression: config.DefaultExportCompression,
		},

		Log: LogConfig{
			Level: config.DefaultLogLevel,
		},
	}
}

// RendererOptions converts the flame graph section into renderer options.
// Title and CountName are left for the caller, which knows the input and unit.
func (c *FlamegraphConfig) RendererOptions() flamegraph.Options {
	opts := flamegraph.DefaultOptions()
	opts.Title = c.Title
	opts.Subtitle = c.Subtitle
	opts.Palette = c.Palette
	opts.ImageWidth = c.Width
	opts.FrameHeight = c.FrameHeight
	opts.FontType = c.FontType
	opts.FontSize = c.FontSize
	opts.MinWidth = c.MinWidth
	opts.Hash = c.Hash
	opts.Inverted = c.Inverted
	return opts
}
