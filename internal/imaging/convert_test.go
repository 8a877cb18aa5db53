package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/region-trace/internal/segment"
)

func TestToGrid_RGB(t *testing.T) {
	img := createPatternImage(4, 4)

	grid, err := ToGrid(img, 3)
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if grid.Width() != 4 || grid.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", grid.Width(), grid.Height())
	}

	tests := []struct {
		p    segment.Point
		want []uint8
	}{
		{segment.Pt(0, 0), []uint8{255, 0, 0}},
		{segment.Pt(3, 0), []uint8{0, 255, 0}},
		{segment.Pt(0, 3), []uint8{0, 0, 255}},
		{segment.Pt(3, 3), []uint8{255, 255, 255}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, grid.At(tt.p).Values()); diff != "" {
			t.Errorf("sample at %v mismatch (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestToGrid_Gray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.RGBA{128, 128, 128, 255})
	img.Set(2, 0, color.White)

	grid, err := ToGrid(img, 1)
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	black := grid.At(segment.Pt(0, 0))
	mid := grid.At(segment.Pt(1, 0))
	white := grid.At(segment.Pt(2, 0))

	if black.Channels() != 1 {
		t.Fatalf("channels: got %d, want 1", black.Channels())
	}
	if !(black.Channel(0) < mid.Channel(0) && mid.Channel(0) < white.Channel(0)) {
		t.Errorf("luminance not ordered: black=%d mid=%d white=%d",
			black.Channel(0), mid.Channel(0), white.Channel(0))
	}
}

func TestToGrid_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.RGBA{9, 8, 7, 255})

	grid, err := ToGrid(img, 3)
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if grid.Width() != 3 || grid.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", grid.Width(), grid.Height())
	}
	if diff := cmp.Diff([]uint8{9, 8, 7}, grid.At(segment.Pt(0, 0)).Values()); diff != "" {
		t.Errorf("origin sample mismatch (-want +got):\n%s", diff)
	}
}

func TestToGrid_InvalidChannels(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	for _, ch := range []int{0, 2, 4} {
		if _, err := ToGrid(img, ch); !errors.Is(err, segment.ErrInvalidParameter) {
			t.Errorf("ToGrid(%d channels): got %v, want ErrInvalidParameter", ch, err)
		}
	}
}

func TestToGrid_FeedsRegionGrowing(t *testing.T) {
	img := createPatternImage(10, 10)

	grid, err := ToGrid(img, 3)
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	mask, err := segment.Grow(grid, segment.Pt(1, 1), segment.Uniform(3, 10), segment.Uniform(3, 10))
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if got := segment.CountMarked(mask); got != 25 {
		t.Errorf("red quadrant area: got %d, want 25", got)
	}
}
