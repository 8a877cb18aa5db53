package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-trace/internal/segment"
)

// Region defines a rectangular area with (X1,Y1) inclusive and (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Centroid is the mean position of a region's pixels.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionStats summarizes one grown region.
type RegionStats struct {
	Area      int         `json:"area"`
	Bounds    Region      `json:"bounds"`
	Centroid  Centroid    `json:"centroid"`
	MeanColor ColorResult `json:"mean_color"`
}

// MaskBounds returns the bounding box of the marked cells of mask, or false
// when nothing is marked.
func MaskBounds(mask *segment.Mask) (Region, bool) {
	points := segment.MarkedPoints(mask)
	if len(points) == 0 {
		return Region{}, false
	}

	r := Region{X1: points[0].X, Y1: points[0].Y, X2: points[0].X + 1, Y2: points[0].Y + 1}
	for _, p := range points[1:] {
		r.X1 = min(r.X1, p.X)
		r.Y1 = min(r.Y1, p.Y)
		r.X2 = max(r.X2, p.X+1)
		r.Y2 = max(r.Y2, p.Y+1)
	}
	return r, true
}

// DescribeRegion measures the region marked in mask against the source image.
//
// Returns an error when the mask is empty or its dimensions differ from img.
//
// The mean color is the per-channel average of the region's pixels in sRGB,
// reported as hex and HSL.
func DescribeRegion(img image.Image, mask *segment.Mask) (*RegionStats, error) {
	bounds := img.Bounds()
	if mask == nil || mask.Width() != bounds.Dx() || mask.Height() != bounds.Dy() {
		return nil, fmt.Errorf("mask does not match %dx%d image", bounds.Dx(), bounds.Dy())
	}

	points := segment.MarkedPoints(mask)
	if len(points) == 0 {
		return nil, fmt.Errorf("region is empty")
	}

	box, _ := MaskBounds(mask)

	var sumX, sumY float64
	var sum colorful.Color
	for _, p := range points {
		sumX += float64(p.X)
		sumY += float64(p.Y)

		c, _ := colorful.MakeColor(img.At(bounds.Min.X+p.X, bounds.Min.Y+p.Y))
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}

	n := float64(len(points))
	mean := colorful.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}

	return &RegionStats{
		Area:   len(points),
		Bounds: box,
		Centroid: Centroid{
			X: math.Round(sumX/n*100) / 100,
			Y: math.Round(sumY/n*100) / 100,
		},
		MeanColor: describeColor(mean),
	}, nil
}
