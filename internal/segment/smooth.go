package segment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MaxSmoothingFactor is the largest sigma GaussianKernel accepts. Its kernel has
// 3761 weights, already wider than any loop of a practical image.
const MaxSmoothingFactor = 1000

// fixedWeights is the integer 5-tap kernel; its weights sum to 24.
var fixedWeights = [...]float64{1, 3, 16, 3, 1}

// Kernel is a normalised sequence of weights applied along a closed loop.
// Output point i averages input points i-Center() .. i-Center()+Size()-1.
type Kernel struct {
	weights []float64
	center  int
}

// FixedKernel returns the [1 3 16 3 1] kernel centred on index 2.
func FixedKernel() Kernel {
	w := make([]float64, len(fixedWeights))
	copy(w, fixedWeights[:])
	floats.Scale(1/floats.Sum(w), w)
	return Kernel{weights: w, center: len(w) / 2}
}

// GaussianKernel returns a normalised Gaussian kernel with standard deviation sigma.
//
// # Construction
//
// The kernel size is 2*round(sigma*3*sqrt(2*pi)/4), incremented to the next odd
// number, so it always has a middle element. The centre is the zero-based middle
// index size/2. The weight at index i is the normal density with mean centre and
// standard deviation sigma, and the weights are divided by their sum.
//
// A sigma small enough to round the size to 0 gives a single-weight identity kernel.
// A sigma above MaxSmoothingFactor is rejected with ErrInvalidParameter.
func GaussianKernel(sigma float64) (Kernel, error) {
	if !(sigma > 0) || sigma > MaxSmoothingFactor {
		return Kernel{}, fmt.Errorf("%w: smoothing factor must be in (0, %d], got %v",
			ErrInvalidParameter, MaxSmoothingFactor, sigma)
	}

	size := 2 * int(math.Round(sigma*3*math.Sqrt(2*math.Pi)/4))
	if size%2 == 0 {
		size++
	}
	center := size / 2

	density := distuv.Normal{Mu: float64(center), Sigma: sigma}
	w := make([]float64, size)
	for i := range w {
		w[i] = density.Prob(float64(i))
	}
	floats.Scale(1/floats.Sum(w), w)

	return Kernel{weights: w, center: center}, nil
}

// Size returns the number of weights.
func (k Kernel) Size() int { return len(k.weights) }

// Center returns the index of the weight applied to the point being replaced.
func (k Kernel) Center() int { return k.center }

// Weights returns a copy of the normalised weights.
func (k Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Smooth smooths a closed loop with the Gaussian kernel for factor.
//
// Returns ErrInvalidParameter when factor is not positive or the loop has fewer
// than two points. The input is not modified.
func Smooth(perimeter Perimeter, factor float64) (Perimeter, error) {
	k, err := GaussianKernel(factor)
	if err != nil {
		return nil, err
	}
	return SmoothWithKernel(perimeter, k)
}

// SmoothWithKernel convolves a closed loop with k using circular indexing.
//
// Each averaged point is rounded to the nearest grid point. Runs of identical
// consecutive points are collapsed, including across the wrap from last to first,
// so the result is never longer than the input and never repeats a point in
// adjacent positions.
func SmoothWithKernel(perimeter Perimeter, k Kernel) (Perimeter, error) {
	if len(k.weights) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidParameter)
	}
	n := len(perimeter)
	if n < 2 {
		return nil, fmt.Errorf("%w: perimeter of %d points has nothing to smooth", ErrInvalidParameter, n)
	}

	smoothed := make(Perimeter, 0, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for j, w := range k.weights {
			q := perimeter[wrapIndex(i-k.center+j, n)]
			sx += w * float64(q.X)
			sy += w * float64(q.Y)
		}
		p := Point{X: int(math.Round(sx)), Y: int(math.Round(sy))}
		if len(smoothed) > 0 && smoothed[len(smoothed)-1] == p {
			continue
		}
		smoothed = append(smoothed, p)
	}

	for len(smoothed) > 1 && smoothed[len(smoothed)-1] == smoothed[0] {
		smoothed = smoothed[:len(smoothed)-1]
	}

	return smoothed, nil
}

// SmoothAll applies Smooth to every loop of set.
//
// One-point loops (isolated pixels) are copied through unchanged; an empty loop or
// an invalid factor fails the whole call.
func SmoothAll(set PerimeterSet, factor float64) (PerimeterSet, error) {
	k, err := GaussianKernel(factor)
	if err != nil {
		return nil, err
	}
	return SmoothAllWithKernel(set, k)
}

// SmoothAllWithKernel applies SmoothWithKernel to every loop of set, with the same
// one-point pass-through as SmoothAll.
func SmoothAllWithKernel(set PerimeterSet, k Kernel) (PerimeterSet, error) {
	out := make(PerimeterSet, len(set))
	for i, loop := range set {
		if len(loop) == 1 {
			out[i] = Perimeter{loop[0]}
			continue
		}
		smoothed, err := SmoothWithKernel(loop, k)
		if err != nil {
			return nil, fmt.Errorf("perimeter %d: %w", i, err)
		}
		out[i] = smoothed
	}
	return out, nil
}

// wrapIndex maps any integer onto [0, n).
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
