package segment

import "fmt"

// MaxChannels is the largest channel count a ColorSample can hold.
const MaxChannels = 4

// ColorSample is an immutable tuple of 8-bit channel values. Grayscale images use
// one channel and RGB images three.
type ColorSample struct {
	values   [MaxChannels]uint8
	channels uint8
}

// Gray returns a single-channel sample.
func Gray(v uint8) ColorSample {
	return ColorSample{values: [MaxChannels]uint8{v}, channels: 1}
}

// RGB returns a three-channel sample.
func RGB(r, g, b uint8) ColorSample {
	return ColorSample{values: [MaxChannels]uint8{r, g, b}, channels: 3}
}

// Channels returns the number of channels; zero for the zero value.
func (c ColorSample) Channels() int { return int(c.channels) }

// Channel returns channel i, or 0 when i is out of range.
func (c ColorSample) Channel(i int) uint8 {
	if i < 0 || i >= int(c.channels) {
		return 0
	}
	return c.values[i]
}

// Values returns a copy of the channel values.
func (c ColorSample) Values() []uint8 {
	out := make([]uint8, c.channels)
	copy(out, c.values[:c.channels])
	return out
}

// Tolerance holds one non-negative bound per channel.
type Tolerance []int

// Uniform returns a tolerance with the same bound on every channel.
func Uniform(channels, bound int) Tolerance {
	t := make(Tolerance, channels)
	for i := range t {
		t[i] = bound
	}
	return t
}

// Validate checks that t has one non-negative bound for each of the given channels.
func (t Tolerance) Validate(channels int) error {
	if len(t) != channels {
		return fmt.Errorf("%w: tolerance has %d channels, image has %d", ErrInvalidParameter, len(t), channels)
	}
	for i, v := range t {
		if v < 0 {
			return fmt.Errorf("%w: tolerance channel %d is negative (%d)", ErrInvalidParameter, i, v)
		}
	}
	return nil
}

// within reports whether every channel of a and b differs by at most t.
// Channel counts must already agree.
func within(a, b ColorSample, t Tolerance) bool {
	for i := 0; i < int(a.channels); i++ {
		if absDiff(a.values[i], b.values[i]) > t[i] {
			return false
		}
	}
	return true
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
