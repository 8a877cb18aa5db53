package segment

import "fmt"

// growOrder is the neighbour visiting order: up, down, left, right.
var growOrder = [...]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Grow finds the connected region of similar colour around seed.
//
// Parameters:
//   - img: Source colour grid. Every sample must have the seed's channel count.
//   - seed: Starting point; it is always part of the region.
//   - upperBound: Maximum per-channel difference between a member and the seed colour.
//   - stepDiff: Maximum per-channel difference between a member and the adjacent
//     member it was reached from.
//
// Returns:
//   - *Mask: Same dimensions as img; marked cells form a 4-connected set containing seed.
//   - error: ErrInvalidSeed when seed is outside img, ErrInvalidParameter when a
//     tolerance does not match the channel count or is negative,
//     ErrPreconditionViolation when img is malformed or mixes channel counts.
//
// # Algorithm
//
// Breadth-first expansion from seed over 4-connected neighbours (up, down, left,
// right). An unmarked neighbour is marked and queued when it is within upperBound of
// the seed colour and within stepDiff of the current pixel. A marked pixel is never
// revisited, so the result does not depend on the visiting order: it is the set of
// pixels reachable through steps that satisfy both bounds.
func Grow(img *Grid[ColorSample], seed Point, upperBound, stepDiff Tolerance) (*Mask, error) {
	if err := img.check(); err != nil {
		return nil, err
	}
	if !img.InBounds(seed) {
		return nil, fmt.Errorf("%w: seed %v outside %dx%d image", ErrInvalidSeed, seed, img.width, img.height)
	}

	target := img.At(seed)
	channels := target.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("%w: seed %v has no colour channels", ErrPreconditionViolation, seed)
	}
	if err := upperBound.Validate(channels); err != nil {
		return nil, fmt.Errorf("upper bound: %w", err)
	}
	if err := stepDiff.Validate(channels); err != nil {
		return nil, fmt.Errorf("step difference: %w", err)
	}

	region, err := NewMask(img.width, img.height)
	if err != nil {
		return nil, err
	}
	region.Set(seed, true)

	queue := []Point{seed}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		current := img.At(p)

		for _, d := range growOrder {
			n := p.Add(d)
			if !img.InBounds(n) || region.At(n) {
				continue
			}
			c := img.At(n)
			if c.Channels() != channels {
				return nil, fmt.Errorf("%w: pixel %v has %d channels, seed has %d",
					ErrPreconditionViolation, n, c.Channels(), channels)
			}
			if within(c, target, upperBound) && within(c, current, stepDiff) {
				region.Set(n, true)
				queue = append(queue, n)
			}
		}
	}

	return region, nil
}
