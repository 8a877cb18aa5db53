// Package segment implements the region and contour pipeline: similarity-bounded
// region growing, boundary tracing over a binary mask, and closed-curve smoothing.
//
// The three stages compose by value:
//
//	mask, err := segment.Grow(img, seed, upper, step)
//	loops, err := segment.TraceAll(mask)
//	smoothed, err := segment.SmoothAll(loops, 1.5)
//
// Each stage allocates and returns a fresh value and keeps no state between calls,
// so independent pipeline runs (several seeds against the same image, for example)
// may run concurrently without coordination.
//
// # Coordinate System
//
// Grids are row-major with (0,0) at the top-left corner:
//   - X increases rightward (the fast axis)
//   - Y increases downward
//
// Directions used by the tracer follow the same convention, so a left turn from
// "moving right" (1,0) is "moving up" (0,-1).
//
// # Region Growing
//
// Grow performs a breadth-first expansion over 4-connected neighbours. A neighbour
// joins the region when every channel is within upperBound of the seed colour and
// within stepDiff of the pixel it was reached from. The seed is always a member.
//
// # Boundary Tracing
//
// TraceAll scans the mask row by row and starts a trace at every marked cell that
// sits on the horizontal edge of a run and is not already part of a traced loop.
// TraceOne follows the boundary with left-turn priority and stops when it is about
// to repeat a step it has already taken. A loop of one point marks an isolated pixel.
//
// # Smoothing
//
// Smooth replaces every point of a closed loop with a weighted average of its
// neighbours along the loop, indexing circularly. The canonical kernel is a
// normalised Gaussian whose width is derived from the smoothing factor; the fixed
// 5-tap kernel [1 3 16 3 1] is available through FixedKernel. Averaged points are
// rounded to the grid and consecutive duplicates are collapsed.
//
// # Error Handling
//
// Failures wrap one of three sentinel errors and should be tested with errors.Is:
//   - ErrInvalidSeed: a seed or start point outside the grid (or unmarked)
//   - ErrInvalidParameter: tolerance/channel mismatch, bad factor, empty loop
//   - ErrPreconditionViolation: a grid that does not meet the shape contract
//
// Degenerate but valid inputs, such as a one-pixel region, are not errors.
package segment
