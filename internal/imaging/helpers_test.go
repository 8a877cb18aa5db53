package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/region-trace/internal/segment"
)

// createInMemoryImage returns a width x height image filled with c.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// quadrantColors are the fills of createPatternImage: top-left, top-right,
// bottom-left, bottom-right.
var quadrantColors = [4]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 255, 255},
}

// createPatternImage splits a width x height image into four quadrants filled with
// quadrantColors.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	mx, my := width/2, height/2
	quadrants := [4]image.Rectangle{
		image.Rect(0, 0, mx, my),
		image.Rect(mx, 0, width, my),
		image.Rect(0, my, mx, height),
		image.Rect(mx, my, width, height),
	}
	for i, r := range quadrants {
		draw.Draw(img, r, image.NewUniform(quadrantColors[i]), image.Point{}, draw.Src)
	}
	return img
}

// writeTestPNG encodes img into a PNG file under t.TempDir and returns its path.
func writeTestPNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// rectMask marks the cells of r in a width x height mask.
func rectMask(t *testing.T, width, height int, r image.Rectangle) *segment.Mask {
	t.Helper()
	mask, err := segment.NewMask(width, height)
	if err != nil {
		t.Fatalf("NewMask failed: %v", err)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mask.Set(segment.Pt(x, y), true)
		}
	}
	return mask
}

func sameNRGBA(a, b color.Color) bool {
	return color.NRGBAModel.Convert(a) == color.NRGBAModel.Convert(b)
}
