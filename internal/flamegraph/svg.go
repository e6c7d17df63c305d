package flamegraph

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"
)

// emptyMessage is drawn instead of frames when nothing was collected.
const emptyMessage = "No valid input provided to flamegraph"

// Render writes the collected stacks to w as one SVG document.
func (c *Collector) Render(opts Options, w io.Writer) error {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	if c.total == 0 {
		writeEmpty(canvas, opts)
	} else {
		c.writeFrames(canvas, opts)
	}

	return bw.Flush()
}

func fontAttrs(opts Options) []string {
	return []string{
		fmt.Sprintf(`font-family="%s"`, html.EscapeString(opts.FontType)),
		fmt.Sprintf(`font-size="%d"`, opts.FontSize),
	}
}

func writeHeader(canvas *svg.SVG, opts Options, width, height int) {
	canvas.Start(width, height)
	canvas.Title(opts.Title)
	canvas.Def()
	canvas.LinearGradient("background", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 5, Color: "#eeeeee", Opacity: 1},
		{Offset: 95, Color: "#eeeeb0", Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Rect(0, 0, width, height, `fill="url(#background)"`)
	canvas.Group(fontAttrs(opts)...)

	canvas.Text(width/2, opts.FontSize*2, opts.Title,
		`text-anchor="middle"`, fmt.Sprintf(`font-size="%d"`, opts.FontSize+5))
	if opts.Subtitle != "" {
		canvas.Text(width/2, opts.FontSize*4, opts.Subtitle,
			`text-anchor="middle"`, `fill="#a0a0a0"`)
	}
}

func writeEmpty(canvas *svg.SVG, opts Options) {
	height := opts.FontSize * 5
	writeHeader(canvas, opts, opts.ImageWidth, height)
	canvas.Text(opts.ImageWidth/2, opts.FontSize*4, emptyMessage, `text-anchor="middle"`)
	canvas.Gend()
	canvas.End()
}

func (c *Collector) writeFrames(canvas *svg.SVG, opts Options) {
	frames := c.Layout()

	ypad1 := opts.FontSize * 3
	if opts.Subtitle != "" {
		ypad1 += opts.FontSize * 2
	}
	ypad2 := opts.FontSize*2 + 10
	height := (maxDepth(frames)+1)*opts.FrameHeight + ypad1 + ypad2

	writeHeader(canvas, opts, opts.ImageWidth, height)

	perCount := float64(opts.ImageWidth-2*xPad) / float64(c.total)
	charWidth := float64(opts.FontSize) * opts.FontWidth

	canvas.Gid("frames")
	for _, f := range frames {
		x1 := xPad + float64(f.Start)*perCount
		x2 := xPad + float64(f.Start+f.Count)*perCount
		if x2-x1 < opts.MinWidth {
			continue
		}

		var y int
		if opts.Inverted {
			y = ypad1 + f.Depth*opts.FrameHeight
		} else {
			y = height - ypad2 - (f.Depth+1)*opts.FrameHeight + framePad
		}

		left := int(math.Round(x1))
		width := int(math.Round(x2)) - left
		if width < 1 {
			width = 1
		}

		pct := 100 * float64(f.Count) / float64(c.total)

		canvas.Group(`class="func_g"`)
		canvas.Title(fmt.Sprintf("%s (%s %s, %.2f%%)",
			f.Name, humanize.Comma(int64(f.Count)), opts.CountName, pct))
		canvas.Rect(left, y, width, opts.FrameHeight-framePad,
			fmt.Sprintf(`fill="%s"`, frameColor(opts.Palette, f.Name, opts.Hash)),
			`rx="2"`, `ry="2"`)
		if label := fitLabel(f.Name, (x2-x1)/charWidth); label != "" {
			canvas.Text(left+3, y+opts.FrameHeight/2+opts.FontSize/2-2, label)
		}
		canvas.Gend()
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
}

// fitLabel shortens name to at most chars characters, marking the cut with
// "..". Frames with room for fewer than three characters get no label.
func fitLabel(name string, chars float64) string {
	n := int(chars)
	if n < 3 {
		return ""
	}
	if utf8.RuneCountInString(name) <= n {
		return name
	}
	runes := []rune(name)
	return string(runes[:n-2]) + ".."
}
