package cli

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/region-trace/internal/config"
	"github.com/ironsheep/region-trace/internal/imaging"
	"github.com/ironsheep/region-trace/internal/segment"
	"github.com/ironsheep/region-trace/internal/store"
)

// Region is a grown region with the seed it came from and its boundary loops.
type Region struct {
	Seed       segment.Point
	Mask       *segment.Mask
	Perimeters segment.PerimeterSet
}

// Session holds the interpreter's state between commands.
type Session struct {
	cache   *imaging.ImageCache
	source  *imaging.Source
	working image.Image
	grid    *segment.Grid[segment.ColorSample] // nil until the blurred image is converted
	blurred bool

	channels   int
	upperBound segment.Tolerance
	stepDiff   segment.Tolerance

	regions []Region
}

// NewSession starts a session on src with the tolerances and channel count of cfg.
// The unblurred colour grid is read through cache.
func NewSession(cache *imaging.ImageCache, src *imaging.Source, cfg *config.Config) *Session {
	return &Session{
		cache:      cache,
		source:     src,
		working:    src.Image,
		channels:   cfg.Channels,
		upperBound: cfg.UpperBound,
		stepDiff:   cfg.StepDiff,
	}
}

// Regions returns the grown regions in creation order.
func (s *Session) Regions() []Region {
	return s.regions
}

// Working returns the image region growing currently reads.
func (s *Session) Working() image.Image {
	return s.working
}

// Tolerances returns the current seed and step tolerances.
func (s *Session) Tolerances() (upper, step segment.Tolerance) {
	return s.upperBound, s.stepDiff
}

// SetTolerances replaces both tolerances after checking them against the
// session's channel count.
func (s *Session) SetTolerances(upper, step segment.Tolerance) error {
	if err := upper.Validate(s.channels); err != nil {
		return fmt.Errorf("upper bound: %w", err)
	}
	if err := step.Validate(s.channels); err != nil {
		return fmt.Errorf("step difference: %w", err)
	}
	s.upperBound, s.stepDiff = upper, step
	return nil
}

// colorGrid returns the grid of the working image. The source grid lives in the
// image cache; a blurred image is converted once per blur.
func (s *Session) colorGrid() (*segment.Grid[segment.ColorSample], error) {
	if !s.blurred {
		g, err := s.cache.Grid(s.source.Path, s.channels)
		if err != nil {
			return nil, fmt.Errorf("failed to convert image: %w", err)
		}
		return g, nil
	}
	if s.grid == nil {
		g, err := imaging.ToGrid(s.working, s.channels)
		if err != nil {
			return nil, fmt.Errorf("failed to convert image: %w", err)
		}
		s.grid = g
	}
	return s.grid, nil
}

// GrowRegions grows and traces one region per seed, at most workers at a time.
//
// The new regions are appended in seed order. If any seed fails nothing is
// appended.
func (s *Session) GrowRegions(ctx context.Context, seeds []segment.Point, workers int) ([]Region, error) {
	grid, err := s.colorGrid()
	if err != nil {
		return nil, err
	}
	upper, step := s.upperBound, s.stepDiff

	grown := make([]Region, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mask, err := segment.Grow(grid, seed, upper, step)
			if err != nil {
				return fmt.Errorf("seed %v: %w", seed, err)
			}
			perimeters, err := segment.TraceAll(mask)
			if err != nil {
				return fmt.Errorf("seed %v: %w", seed, err)
			}
			grown[i] = Region{Seed: seed, Mask: mask, Perimeters: perimeters}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.regions = append(s.regions, grown...)
	return grown, nil
}

// SmoothPerimeters replaces every region's perimeters with their smoothed
// versions. On error no region is changed.
func (s *Session) SmoothPerimeters(k segment.Kernel) (int, error) {
	return s.mapPerimeters(func(set segment.PerimeterSet) (segment.PerimeterSet, error) {
		return segment.SmoothAllWithKernel(set, k)
	})
}

// FillPerimeterGaps runs segment.FillGaps over every perimeter.
func (s *Session) FillPerimeterGaps() (int, error) {
	return s.mapPerimeters(func(set segment.PerimeterSet) (segment.PerimeterSet, error) {
		out := make(segment.PerimeterSet, len(set))
		for i, loop := range set {
			filled, err := segment.FillGaps(loop)
			if err != nil {
				return nil, fmt.Errorf("perimeter %d: %w", i, err)
			}
			out[i] = filled
		}
		return out, nil
	})
}

func (s *Session) mapPerimeters(fn func(segment.PerimeterSet) (segment.PerimeterSet, error)) (int, error) {
	updated := make([]segment.PerimeterSet, len(s.regions))
	loops := 0
	for i, r := range s.regions {
		set, err := fn(r.Perimeters)
		if err != nil {
			return 0, fmt.Errorf("region %d: %w", i, err)
		}
		updated[i] = set
		loops += len(set)
	}
	for i := range s.regions {
		s.regions[i].Perimeters = updated[i]
	}
	return loops, nil
}

// Blur replaces the working image with a blurred copy. Existing regions are kept.
func (s *Session) Blur(radius float64) error {
	blurred, err := imaging.Blur(s.working, radius)
	if err != nil {
		return err
	}
	s.working = blurred
	s.grid = nil
	s.blurred = true
	return nil
}

// Clean drops every region and restores the working image from the source.
// It returns the number of regions dropped.
func (s *Session) Clean() int {
	n := len(s.regions)
	s.regions = nil
	s.working = s.source.Image
	s.grid = nil
	s.blurred = false
	return n
}

// Overlays returns the regions in the form imaging.Render draws.
func (s *Session) Overlays() []imaging.Overlay {
	overlays := make([]imaging.Overlay, len(s.regions))
	for i, r := range s.regions {
		overlays[i] = imaging.Overlay{Mask: r.Mask, Perimeters: r.Perimeters, Seed: r.Seed}
	}
	return overlays
}

// Records returns the regions in the form the store package writes.
func (s *Session) Records() []store.Record {
	records := make([]store.Record, len(s.regions))
	for i, r := range s.regions {
		records[i] = store.Record{Seed: r.Seed, Mask: r.Mask, Perimeters: r.Perimeters}
	}
	return records
}
