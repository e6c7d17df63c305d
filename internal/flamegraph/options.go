package flamegraph

import (
	"github.com/xtxerr/parquet-flamegraph/config"
	"github.com/xtxerr/parquet-flamegraph/internal/constants"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
)

const (
	// horizontal padding on each side of the frames
	xPad = 10

	// vertical gap between stacked frames
	framePad = 1
)

// Options configures how a flame graph is drawn.
type Options struct {
	// Title is drawn centered above the frames.
	// Default: "Flame Graph", or "Icicle Graph" when Inverted.
	Title string

	// Subtitle is drawn below the title when set.
	Subtitle string

	// CountName labels counts in frame tooltips, e.g. "Bytes".
	// Default: "samples"
	CountName string

	// Hash colors frames by a hash of their name instead of at random, so
	// the same stack gets the same color on every run.
	Hash bool

	// Palette is one of hot, mem, io, aqua.
	Palette string

	// ImageWidth is the SVG width in pixels.
	ImageWidth int

	// FrameHeight is the height of one frame in pixels.
	FrameHeight int

	// FontType is the font family for all text.
	FontType string

	// FontSize is the font size in pixels.
	FontSize int

	// FontWidth is the average glyph width relative to FontSize.
	FontWidth float64

	// MinWidth drops frames narrower than this many pixels.
	MinWidth float64

	// Inverted draws an icicle graph, root at the top.
	Inverted bool
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Hash:        config.DefaultHash,
		Palette:     config.DefaultPalette,
		ImageWidth:  config.DefaultImageWidth,
		FrameHeight: config.DefaultFrameHeight,
		FontType:    config.DefaultFontType,
		FontSize:    config.DefaultFontSize,
		FontWidth:   config.DefaultFontWidth,
		MinWidth:    config.DefaultMinWidth,
	}
}

// WithDefaults fills the zero-valued fields that have a sensible default.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = "Flame Graph"
		if o.Inverted {
			o.Title = "Icicle Graph"
		}
	}
	if o.CountName == "" {
		o.CountName = "samples"
	}
	if o.Palette == "" {
		o.Palette = d.Palette
	}
	if o.ImageWidth == 0 {
		o.ImageWidth = d.ImageWidth
	}
	if o.FrameHeight == 0 {
		o.FrameHeight = d.FrameHeight
	}
	if o.FontType == "" {
		o.FontType = d.FontType
	}
	if o.FontSize == 0 {
		o.FontSize = d.FontSize
	}
	if o.FontWidth == 0 {
		o.FontWidth = d.FontWidth
	}
	return o
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	v := errors.NewValidationErrors()

	if o.ImageWidth <= 2*xPad {
		v.AddField("width", "must leave room for frames")
	}
	if o.FrameHeight <= framePad {
		v.AddField("frame_height", "must be larger than the frame padding")
	}
	if o.FontSize <= 0 {
		v.AddField("font_size", "must be positive")
	}
	if o.FontWidth <= 0 {
		v.AddField("font_width", "must be positive")
	}
	if o.MinWidth < 0 {
		v.AddField("min_width", "must not be negative")
	}
	if o.Palette != "" && !constants.IsValidPalette(o.Palette) {
		v.Add(errors.Wrapf(errors.ErrInvalidPalette, "%q", o.Palette))
	}

	return v.Err()
}
