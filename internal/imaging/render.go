package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/region-trace/internal/segment"
)

// Overlay is one region to draw: its mask, its boundary loops and the seed the
// region was grown from.
type Overlay struct {
	Mask       *segment.Mask
	Perimeters segment.PerimeterSet
	Seed       segment.Point
}

// RenderOptions controls the colors used by Render.
type RenderOptions struct {
	RegionColor    color.Color
	PerimeterColor color.Color
	// Labels draws each overlay's index next to its seed.
	Labels bool
}

// Render draws overlays onto a copy of base.
//
// All region masks are painted first and all perimeters after, so a perimeter is
// never hidden by a neighbouring region. Points outside the image are skipped.
func Render(base image.Image, overlays []Overlay, opts RenderOptions) *image.NRGBA {
	canvas := imaging.Clone(base)

	for _, o := range overlays {
		if o.Mask == nil {
			continue
		}
		for _, p := range segment.MarkedPoints(o.Mask) {
			setPoint(canvas, p, opts.RegionColor)
		}
	}

	for _, o := range overlays {
		for _, loop := range o.Perimeters {
			for _, p := range loop {
				setPoint(canvas, p, opts.PerimeterColor)
			}
		}
	}

	if opts.Labels {
		for i, o := range overlays {
			drawLabel(canvas, o.Seed.X+2, o.Seed.Y+2, strconv.Itoa(i),
				color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBA{A: 160})
		}
	}

	return canvas
}

// Save writes img to path. The format follows the file extension.
func Save(img image.Image, path string) error {
	return imaging.Save(img, path)
}

func setPoint(img *image.NRGBA, p segment.Point, c color.Color) {
	if image.Pt(p.X, p.Y).In(img.Bounds()) {
		img.Set(p.X, p.Y, c)
	}
}

// drawLabel draws text with its top-left corner at (x, y) over a filled box.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	box := image.Rect(x-1, y-1, x+width+1, y+face.Height+1)
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(bg), image.Point{}, draw.Over)

	d.Dot = fixed.P(x, y+face.Ascent)
	d.DrawString(text)
}
