package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Blur returns a Gaussian-blurred copy of img. radius is the blur's standard deviation.
func Blur(img image.Image, radius float64) (image.Image, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("blur radius must be positive, got %v", radius)
	}
	return blur.Gaussian(img, radius), nil
}
