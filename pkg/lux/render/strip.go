// Package render draws light shows as PNG strips: one rectangle per event,
// width proportional to duration, filled with the event's color.
package render

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	luxcolor "github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

// Options size the output strip. Zero values fall back to defaults.
type Options struct {
	Width  int // output width in pixels (default 1024)
	Height int // output height in pixels (default 64)
}

const (
	defaultWidth  = 1024
	defaultHeight = 64
)

// Strip renders the show and writes a PNG to w.
func Strip(show *codec.LightShow, opts Options, w io.Writer) error {
	if show == nil || len(show.Events) == 0 {
		return fmt.Errorf("%w: nothing to render", codec.ErrCorruptShow)
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	// Draw at natural resolution first: one pixel per millisecond.
	var totalMs int
	for _, ev := range show.Events {
		totalMs += int(ev.Duration)
	}
	natural := image.NewRGBA(image.Rect(0, 0, totalMs, 1))
	x := 0
	for _, ev := range show.Events {
		r, g, b := luxcolor.RGB(ev.Color)
		c := stdcolor.RGBA{R: r, G: g, B: b, A: 255}
		for i := 0; i < int(ev.Duration); i++ {
			natural.SetRGBA(x, 0, c)
			x++
		}
	}

	// Scale to the requested dimensions. Nearest neighbor keeps event
	// boundaries crisp.
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), natural, natural.Bounds(), draw.Src, nil)

	return png.Encode(w, out)
}
