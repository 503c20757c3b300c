package generator

import (
	"fmt"
	"iter"
)

// Ints returns an endless sequence of values in [0, math.MaxInt32).
// Values are drawn only as the consumer pulls them, so ranging over the
// sequence again continues from the generator's current state.
func Ints(g *Generator) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// IntsRange returns an endless sequence of values in [minValue, maxValue).
func IntsRange(g *Generator, minValue, maxValue int32) (iter.Seq[int32], error) {
	if minValue >= maxValue {
		return nil, fmt.Errorf("%w: %s (min=%d, max=%d)", ErrInvalidArgument, msgMinNotBelowMax, minValue, maxValue)
	}
	return func(yield func(int32) bool) {
		for {
			v, _ := g.NextRange(minValue, maxValue)
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Float64s returns an endless sequence of values in [0.0, 1.0).
func Float64s(g *Generator) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			if !yield(g.NextFloat64()) {
				return
			}
		}
	}
}

// Bools returns an endless sequence of buffered booleans.
func Bools(g *Generator) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for {
			if !yield(g.NextBool()) {
				return
			}
		}
	}
}
