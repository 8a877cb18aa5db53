// Package imaging connects decoded images to the segmentation pipeline.
//
// It is the image-source and presentation side of the tool: it loads and caches
// source images, converts them to colour grids for region growing, and draws
// regions and perimeters back onto a display buffer that can be written to disk.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For bounding boxes, (X1,Y1) is inclusive and (X2,Y2) is exclusive
//
// Images whose bounds do not start at the origin are converted with their
// top-left pixel mapped to (0,0).
//
// # Channels
//
// ToGrid produces either a single-channel grid (luminance) or a three-channel
// RGB grid. Alpha is ignored. The channel count decides how many tolerance values
// region growing expects.
//
// # Rendering
//
// Render draws every region in one colour and then every perimeter in another,
// optionally labelling each region with its index near its seed. The result is a
// fresh *image.NRGBA; the source image is never modified.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Conversion, rendering and
// statistics are stateless and can be called concurrently.
package imaging
