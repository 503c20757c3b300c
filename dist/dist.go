// Package dist implements probability distributions driven by the uniform
// generators of package generator.
//
// Every distribution wraps one *generator.Generator, which may be shared with
// other distributions; draws from any of them advance the same sequence.
// Parameters are validated on construction and on every update, and a
// rejected update leaves the previous value in effect.
//
// The validity predicate and the sampling function of each distribution type
// live in a Strategy value (for example NormalStrategy). Replacing either
// function affects every instance of that type from then on.
//
// Basic usage:
//
//	gen := dist.SeededGenerator(42)
//	n, err := dist.NewNormal(gen, 5, 2)
//	x := n.NextFloat64()
package dist

import (
	"errors"
	"fmt"
	"iter"

	"github.com/nozzle/prng/generator"
)

var (
	// ErrInvalidArgument is returned for a nil generator or parameters
	// rejected by a distribution's validity predicate.
	ErrInvalidArgument = generator.ErrInvalidArgument

	// ErrNotSupported is returned when a statistic is undefined for the
	// distribution or its current parameters.
	ErrNotSupported = errors.New("not supported")
)

const (
	msgNilGenerator  = "generator must not be nil"
	msgInvalidParams = "invalid parameters"
	msgInvalidParam  = "invalid parameter"
	msgUndefined     = "undefined for current parameters"
)

// Distribution is the behaviour shared by every distribution.
type Distribution interface {
	// Generator returns the uniform generator the samples are drawn from.
	Generator() *generator.Generator
	// CanReset reports whether Reset can replay the sample sequence.
	CanReset() bool
	// Reset restarts the underlying generator from its seed.
	Reset() bool

	Minimum() float64
	Maximum() float64
	Mean() (float64, error)
	Median() (float64, error)
	Variance() (float64, error)
	// Mode returns every mode; multimodal laws report more than one value.
	Mode() ([]float64, error)
}

// Continuous distributions draw real-valued samples.
type Continuous interface {
	Distribution
	NextFloat64() float64
}

// Discrete distributions draw integer samples.
type Discrete interface {
	Distribution
	Next() int
	// NextFloat64 returns Next as a float64.
	NextFloat64() float64
}

// DefaultGenerator returns a generator of the default algorithm seeded from
// generator.NewSeed.
func DefaultGenerator() *generator.Generator {
	return SeededGenerator(generator.NewSeed())
}

// SeededGenerator returns a generator of the default algorithm.
func SeededGenerator(seed uint32) *generator.Generator {
	g, _ := generator.New(generator.Default, seed)
	return g
}

// Samples returns an endless lazy sequence of draws from d.
func Samples(d Continuous) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			if !yield(d.NextFloat64()) {
				return
			}
		}
	}
}

// Draws returns an endless lazy sequence of draws from d.
func Draws(d Discrete) iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			if !yield(d.Next()) {
				return
			}
		}
	}
}

// base holds the generator reference every distribution embeds.
type base struct {
	gen *generator.Generator
}

func newBase(gen *generator.Generator) (base, error) {
	if gen == nil {
		return base{}, fmt.Errorf("%w: %s", ErrInvalidArgument, msgNilGenerator)
	}
	return base{gen: gen}, nil
}

func (b base) Generator() *generator.Generator { return b.gen }
func (b base) CanReset() bool                  { return b.gen.CanReset() }
func (b base) Reset() bool                     { return b.gen.Reset() }

// construct validates p with s and builds the distribution only when both the
// generator and the parameters are acceptable.
func construct[P, T, D any](gen *generator.Generator, s *Strategy[P, T], p P, build func(base, P) D) (D, error) {
	var zero D
	b, err := newBase(gen)
	if err != nil {
		return zero, err
	}
	if !s.IsValid(p) {
		return zero, fmt.Errorf("%w: %s: %s %+v", ErrInvalidArgument, s.Name(), msgInvalidParams, p)
	}
	return build(b, p), nil
}

// update assigns next to *dst if s accepts it.
func update[P, T any](s *Strategy[P, T], dst *P, next P, param string, value any) error {
	if !s.IsValid(next) {
		return fmt.Errorf("%w: %s: %s %s=%v", ErrInvalidArgument, s.Name(), msgInvalidParam, param, value)
	}
	*dst = next
	return nil
}

func notSupported(name, stat string) error {
	return fmt.Errorf("%w: %s %s %s", ErrNotSupported, name, stat, msgUndefined)
}
