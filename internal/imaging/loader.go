package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/region-trace/internal/segment"
)

// ImageInfo describes a decoded image file.
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // from the file extension; "unknown" if unrecognised
	Bytes  int64  `json:"bytes"`
}

// Source is a decoded image together with the path it was read from.
type Source struct {
	Path  string
	Image image.Image
	Info  ImageInfo
}

type gridKey struct {
	path     string
	channels int
}

// ImageCache keeps decoded sources and their colour grids so that a path is read
// and converted at most once per channel count.
//
// ImageCache is safe for concurrent use.
type ImageCache struct {
	mu      sync.RWMutex
	sources map[string]*Source
	grids   map[gridKey]*segment.Grid[segment.ColorSample]
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		sources: make(map[string]*Source),
		grids:   make(map[gridKey]*segment.Grid[segment.ColorSample]),
	}
}

// Open returns the source for path, decoding it on first use.
//
// Decoding goes through imaging.Open (PNG, JPEG, GIF, BMP, TIFF, plus WebP) with
// EXIF orientation applied, so grid coordinates match what a viewer shows.
func (c *ImageCache) Open(path string) (*Source, error) {
	c.mu.RLock()
	src, ok := c.sources[path]
	c.mu.RUnlock()
	if ok {
		return src, nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	b := img.Bounds()
	src = &Source{
		Path:  path,
		Image: img,
		Info: ImageInfo{
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: formatFromExt(path),
			Bytes:  stat.Size(),
		},
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.sources[path]; ok {
		return existing, nil
	}
	c.sources[path] = src
	return src, nil
}

// Grid returns the colour grid of path with the given channel count, opening and
// converting the image on first use. Callers must not modify the grid.
func (c *ImageCache) Grid(path string, channels int) (*segment.Grid[segment.ColorSample], error) {
	key := gridKey{path: path, channels: channels}

	c.mu.RLock()
	g, ok := c.grids[key]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	src, err := c.Open(path)
	if err != nil {
		return nil, err
	}
	g, err = ToGrid(src.Image, channels)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.grids[key] = g
	c.mu.Unlock()
	return g, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
