// Package generator provides seedable uniform pseudo-random generators.
//
// Every algorithm implements the small Source interface. The Generator type
// layers the shared behaviour once on top of any Source: exclusive and
// ranged integers, unsigned integers, doubles, buffered booleans and byte
// filling. All algorithms are deterministic for a given seed and can be reset
// to reproduce their output exactly.
//
// None of the generators are safe for concurrent use and none are suitable for
// cryptographic purposes.
//
// Basic usage:
//
//	g := generator.NewXorShift128(42)
//	n, err := g.NextRange(10, 20)
package generator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a range or buffer argument is malformed.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	msgMaxNotPositive = "maximum value must be positive"
	msgMinNotBelowMax = "minimum value must be less than maximum value"
	msgNotFinite      = "range must be finite"
	msgNilBuffer      = "buffer must not be nil"
	msgNilSource      = "source must not be nil"
)

const (
	// intToFloat maps a 31-bit integer into [0, 1).
	intToFloat = 1.0 / (1 << 31)
	// uintToFloat maps a 32-bit integer into [0, 1).
	uintToFloat = 1.0 / (1 << 32)
	// ulongToFloat maps the top 53 bits of a 64-bit integer into [0, 1).
	ulongToFloat = 1.0 / (1 << 53)
)

// Source is the minimal set of primitives a generator algorithm provides.
type Source interface {
	// Uint32 returns a value over the full 32-bit range.
	Uint32() uint32
	// Int31 returns a value in [0, math.MaxInt32].
	Int31() int32
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Seed reinitializes the state deterministically from seed.
	Seed(seed uint32)
}

// Generator adds ranged, boolean and byte-filling draws to a Source and
// records the seed so the sequence can be replayed with Reset.
type Generator struct {
	src  Source
	alg  Algorithm
	seed uint32

	// Bits consumed by NextBool, least significant first.
	bitBuffer uint32
	bitCount  int
}

func newGenerator(alg Algorithm, src Source, seed uint32) *Generator {
	g := &Generator{src: src, alg: alg}
	g.ResetSeed(seed)
	return g
}

// NewFromSource wraps a caller supplied algorithm. The source is seeded with
// seed before the generator is returned.
func NewFromSource(src Source, seed uint32) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, msgNilSource)
	}
	return newGenerator(Custom, src, seed), nil
}

// Algorithm reports which algorithm backs the generator.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Seed returns the seed the current sequence was started from.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// CanReset reports whether Reset reproduces the sequence. Every algorithm in
// this package supports it.
func (g *Generator) CanReset() bool {
	return true
}

// Reset restarts the sequence from the stored seed.
func (g *Generator) Reset() bool {
	return g.ResetSeed(g.seed)
}

// ResetSeed stores seed and restarts the sequence from it.
func (g *Generator) ResetSeed(seed uint32) bool {
	g.seed = seed
	g.src.Seed(seed)
	g.bitBuffer = 0
	g.bitCount = 0
	return true
}

// Next returns a value in [0, math.MaxInt32).
func (g *Generator) Next() int32 {
	for {
		if v := g.src.Int31(); v != math.MaxInt32 {
			return v
		}
	}
}

// NextInclusiveMaxValue returns a value in [0, math.MaxInt32].
func (g *Generator) NextInclusiveMaxValue() int32 {
	return g.src.Int31()
}

// NextN returns a value in [0, maxValue).
func (g *Generator) NextN(maxValue int32) (int32, error) {
	if maxValue <= 0 {
		return 0, fmt.Errorf("%w: %s (max=%d)", ErrInvalidArgument, msgMaxNotPositive, maxValue)
	}
	return int32(float64(g.src.Int31()) * intToFloat * float64(maxValue)), nil
}

// NextRange returns a value in [minValue, maxValue).
//
// Ranges that fit in 31 bits scale a shifted 31-bit draw. Wider ranges, up to
// the full 2^32-1 span of int32, scale a 32-bit draw in 64-bit arithmetic.
func (g *Generator) NextRange(minValue, maxValue int32) (int32, error) {
	if minValue >= maxValue {
		return 0, fmt.Errorf("%w: %s (min=%d, max=%d)", ErrInvalidArgument, msgMinNotBelowMax, minValue, maxValue)
	}
	span := int64(maxValue) - int64(minValue)
	if span <= math.MaxInt32 {
		return minValue + int32(float64(g.src.Int31())*intToFloat*float64(span)), nil
	}
	return int32(int64(minValue) + int64(float64(g.src.Uint32())*uintToFloat*float64(span))), nil
}

// NextUint32 returns a value in [0, math.MaxUint32).
func (g *Generator) NextUint32() uint32 {
	for {
		if v := g.src.Uint32(); v != math.MaxUint32 {
			return v
		}
	}
}

// NextUint32InclusiveMaxValue returns a value over the full 32-bit range.
func (g *Generator) NextUint32InclusiveMaxValue() uint32 {
	return g.src.Uint32()
}

// NextUint32N returns a value in [0, maxValue).
func (g *Generator) NextUint32N(maxValue uint32) (uint32, error) {
	if maxValue == 0 {
		return 0, fmt.Errorf("%w: %s (max=%d)", ErrInvalidArgument, msgMaxNotPositive, maxValue)
	}
	return uint32(float64(g.src.Uint32()) * uintToFloat * float64(maxValue)), nil
}

// NextUint32Range returns a value in [minValue, maxValue).
func (g *Generator) NextUint32Range(minValue, maxValue uint32) (uint32, error) {
	if minValue >= maxValue {
		return 0, fmt.Errorf("%w: %s (min=%d, max=%d)", ErrInvalidArgument, msgMinNotBelowMax, minValue, maxValue)
	}
	return minValue + uint32(float64(g.src.Uint32())*uintToFloat*float64(maxValue-minValue)), nil
}

// NextFloat64 returns a value in [0.0, 1.0).
func (g *Generator) NextFloat64() float64 {
	return g.src.Float64()
}

// NextFloat64N returns a value in [0.0, maxValue).
func (g *Generator) NextFloat64N(maxValue float64) (float64, error) {
	if !(maxValue > 0) {
		return 0, fmt.Errorf("%w: %s (max=%g)", ErrInvalidArgument, msgMaxNotPositive, maxValue)
	}
	if math.IsInf(maxValue, 0) {
		return 0, fmt.Errorf("%w: %s (max=%g)", ErrInvalidArgument, msgNotFinite, maxValue)
	}
	return g.src.Float64() * maxValue, nil
}

// NextFloat64Range returns a value in [minValue, maxValue).
func (g *Generator) NextFloat64Range(minValue, maxValue float64) (float64, error) {
	if !(minValue < maxValue) {
		return 0, fmt.Errorf("%w: %s (min=%g, max=%g)", ErrInvalidArgument, msgMinNotBelowMax, minValue, maxValue)
	}
	span := maxValue - minValue
	if math.IsInf(span, 0) {
		return 0, fmt.Errorf("%w: %s (min=%g, max=%g)", ErrInvalidArgument, msgNotFinite, minValue, maxValue)
	}
	v := minValue + g.src.Float64()*span
	if v >= maxValue {
		// Rounding of min + u*span can land on the excluded bound.
		v = math.Nextafter(maxValue, minValue)
	}
	return v, nil
}

// NextBool returns one bit of a buffered 32-bit draw. The buffer is consumed
// least significant bit first and refilled only when empty.
func (g *Generator) NextBool() bool {
	if g.bitCount == 0 {
		g.bitBuffer = g.src.Uint32()
		g.bitCount = 32
	}
	b := g.bitBuffer&1 == 1
	g.bitBuffer >>= 1
	g.bitCount--
	return b
}

// NextBytes fills buf with random bytes, four per 32-bit draw in
// little-endian order. A trailing partial word takes the low-order bytes of
// one more draw.
func (g *Generator) NextBytes(buf []byte) error {
	if buf == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, msgNilBuffer)
	}
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		w := g.src.Uint32()
		buf[i] = byte(w)
		buf[i+1] = byte(w >> 8)
		buf[i+2] = byte(w >> 16)
		buf[i+3] = byte(w >> 24)
	}
	if i < len(buf) {
		w := g.src.Uint32()
		for ; i < len(buf); i++ {
			buf[i] = byte(w)
			w >>= 8
		}
	}
	return nil
}
