package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor is an 8-bit sRGB triple.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor is a colour in hue/saturation/lightness form, rounded to whole units.
// Comparing the lightness of two regions is usually the quickest way to pick a
// grayscale tolerance.
type HSLColor struct {
	H int `json:"h"` // degrees, 0-359
	S int `json:"s"` // percent
	L int `json:"l"` // percent
}

// ColorResult is one colour reported three ways.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB", upper case
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// String formats the result as "#RRGGBB hsl(h,s%,l%)".
func (c ColorResult) String() string {
	return fmt.Sprintf("%s hsl(%d,%d%%,%d%%)", c.Hex, c.HSL.H, c.HSL.S, c.HSL.L)
}

// ParseColor parses a "#RRGGBB" or "#RGB" string into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// SampleColor reports the colour of the pixel at (x, y), counted from the top-left
// corner of img whatever its bounds origin.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(image.Rect(0, 0, bounds.Dx(), bounds.Dy())) {
		return nil, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, bounds.Dx(), bounds.Dy())
	}

	c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
	if !ok {
		// Fully transparent pixel; report it as black.
		c = colorful.Color{}
	}
	result := describeColor(c)
	return &result, nil
}

func describeColor(c colorful.Color) ColorResult {
	c = c.Clamped()
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
