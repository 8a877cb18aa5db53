package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-trace/internal/segment"
)

// Zoom crops img to the bounding box of the region marked in mask, widened by
// margin pixels on each side and clipped to the image, then scales the crop.
//
// Resampling is nearest-neighbour, so each source pixel becomes a solid block.
func Zoom(img image.Image, mask *segment.Mask, margin int, scale float64) (*image.NRGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}
	if margin < 0 {
		return nil, fmt.Errorf("margin must not be negative, got %d", margin)
	}

	box, ok := MaskBounds(mask)
	if !ok {
		return nil, fmt.Errorf("region is empty")
	}

	bounds := img.Bounds()
	rect := box.Rect().Inset(-margin).
		Intersect(image.Rect(0, 0, bounds.Dx(), bounds.Dy())).
		Add(bounds.Min)

	cropped := imaging.Crop(img, rect)

	if scale != 1.0 {
		newWidth := max(1, int(float64(cropped.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(cropped.Bounds().Dy())*scale))
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	return cropped, nil
}
