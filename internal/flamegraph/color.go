package flamegraph

import (
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/xtxerr/parquet-flamegraph/internal/constants"
)

// weights returns three values in [0, 1] that pick a shade within a palette.
func weights(name string, hash bool) (v1, v2, v3 float64) {
	if !hash {
		return rand.Float64(), rand.Float64(), rand.Float64()
	}

	h := xxhash.Sum64String(name)
	v1 = float64(h&0xffff) / 0xffff
	v2 = float64((h>>16)&0xffff) / 0xffff
	v3 = float64((h>>32)&0xffff) / 0xffff
	return v1, v2, v3
}

// frameColor returns the fill of a frame as an SVG rgb() value.
func frameColor(palette, name string, hash bool) string {
	v1, v2, v3 := weights(name, hash)

	var r, g, b float64
	switch palette {
	case constants.PaletteMem:
		r, g, b = 0, 190+50*v2, 210*v1
	case constants.PaletteIO:
		r = 80 + 60*v1
		g, b = r, 190+55*v2
	case constants.PaletteAqua:
		r, g, b = 50+60*v1, 165+55*v1, 165+55*v1
	default:
		r, g, b = 205+50*v3, 230*v1, 55*v2
	}

	return fmt.Sprintf("rgb(%d,%d,%d)", int(r), int(g), int(b))
}
