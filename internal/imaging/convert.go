package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-trace/internal/segment"
)

// ToGrid converts img into a colour grid for region growing.
//
// Parameters:
//   - img: Source image. Its top-left pixel becomes grid point (0,0).
//   - channels: 1 for a luminance grid, 3 for an RGB grid.
//
// Returns:
//   - *segment.Grid[segment.ColorSample]: One sample per pixel, alpha dropped.
//   - error: Wraps segment.ErrInvalidParameter for any other channel count.
func ToGrid(img image.Image, channels int) (*segment.Grid[segment.ColorSample], error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	cells := make([]segment.ColorSample, 0, w*h)

	switch channels {
	case 1:
		gray := effect.Grayscale(img)
		gb := gray.Bounds()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cells = append(cells, segment.Gray(gray.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y))
			}
		}
	case 3:
		nrgba := imaging.Clone(img)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := nrgba.PixOffset(x, y)
				cells = append(cells, segment.RGB(nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2]))
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d channels, want 1 or 3", segment.ErrInvalidParameter, channels)
	}

	return segment.GridFrom(w, h, cells)
}
