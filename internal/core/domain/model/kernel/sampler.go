package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrExhaustedRange is returned when every value of a sampling range is excluded.
var ErrExhaustedRange = errors.New("no valid numbers available in range after applying exclusions")

// ExhaustedRangeError describes the range that ran dry.
type ExhaustedRangeError struct {
	Min      int
	Max      int
	Excluded int
}

func (e *ExhaustedRangeError) Error() string {
	return fmt.Sprintf("%s: range [%d, %d], %d excluded", ErrExhaustedRange, e.Min, e.Max, e.Excluded)
}

func (e *ExhaustedRangeError) Unwrap() error {
	return ErrExhaustedRange
}

// Sampler draws one integer from [min, max] that is not in excluded.
//
// Implementations must be deterministic for a given seed. Callers advance the seed
// by one after every successful draw.
type Sampler interface {
	Sample(min, max int, seed int64, excluded map[int]struct{}) (int, error)
}

// SeededSampler is the production Sampler. The zero value is ready to use.
type SeededSampler struct{}

// NewSeededSampler returns a SeededSampler.
func NewSeededSampler() SeededSampler {
	return SeededSampler{}
}

// Sample builds the ascending list of candidates in [min, max] minus excluded and
// returns the candidate selected by SeededFloat(seed).
//
// Returns *ExhaustedRangeError when no candidate is left.
func (SeededSampler) Sample(min, max int, seed int64, excluded map[int]struct{}) (int, error) {
	var candidates []int
	if max >= min {
		candidates = make([]int, 0, max-min+1)
	}
	for v := min; v <= max; v++ {
		if _, skip := excluded[v]; !skip {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) == 0 {
		return 0, &ExhaustedRangeError{Min: min, Max: max, Excluded: len(excluded)}
	}

	idx := int(SeededFloat(seed) * float64(len(candidates)))
	if idx >= len(candidates) {
		// x - floor(x) can round up to 1.0 for tiny negative x
		idx = len(candidates) - 1
	}

	return candidates[idx], nil
}

// SeededFloat maps an integer seed to a float in [0, 1) using the fractional part
// of sin(seed) * 10000. It keeps no state.
//
// Seeds should stay well inside float64's exact integer range (Unix milliseconds
// are fine, Unix nanoseconds are not: neighbouring seeds would collapse).
func SeededFloat(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}
