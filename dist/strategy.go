package dist

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/nozzle/prng/generator"
)

// Validator reports whether a parameter tuple is admissible.
type Validator[P any] func(p P) bool

// Sampler draws one value for a parameter tuple, consuming generator state
// and nothing else.
type Sampler[P, T any] func(g *generator.Generator, p P) T

// Strategy holds the replaceable validity predicate and sampling function of
// one distribution type. Replacements apply to every instance of the type,
// existing or future, until Restore is called.
type Strategy[P, T any] struct {
	name     string
	defaults *strategyFuncs[P, T]
	funcs    atomic.Pointer[strategyFuncs[P, T]]
}

type strategyFuncs[P, T any] struct {
	validate Validator[P]
	sample   Sampler[P, T]
}

// Slot is the type-independent view of a Strategy held in the registry.
type Slot interface {
	Name() string
	// Replaced reports whether either function differs from the default.
	Replaced() bool
	// Restore reinstates the default functions.
	Restore()
}

// registry maps distribution names to their strategies. It is only written
// during package initialization.
var registry = map[string]Slot{}

func newStrategy[P, T any](name string, validate Validator[P], sample Sampler[P, T]) *Strategy[P, T] {
	s := &Strategy[P, T]{
		name:     name,
		defaults: &strategyFuncs[P, T]{validate: validate, sample: sample},
	}
	s.Restore()
	registry[name] = s
	return s
}

// Name returns the distribution name the strategy is registered under.
func (s *Strategy[P, T]) Name() string {
	return s.name
}

// IsValid applies the current validity predicate.
func (s *Strategy[P, T]) IsValid(p P) bool {
	return s.funcs.Load().validate(p)
}

// Sample applies the current sampling function.
func (s *Strategy[P, T]) Sample(g *generator.Generator, p P) T {
	return s.funcs.Load().sample(g, p)
}

// SetValidator replaces the validity predicate for all instances of the type.
func (s *Strategy[P, T]) SetValidator(fn Validator[P]) error {
	if fn == nil {
		return fmt.Errorf("%w: %s: validator must not be nil", ErrInvalidArgument, s.name)
	}
	cur := s.funcs.Load()
	s.funcs.Store(&strategyFuncs[P, T]{validate: fn, sample: cur.sample})
	return nil
}

// SetSampler replaces the sampling function for all instances of the type.
func (s *Strategy[P, T]) SetSampler(fn Sampler[P, T]) error {
	if fn == nil {
		return fmt.Errorf("%w: %s: sampler must not be nil", ErrInvalidArgument, s.name)
	}
	cur := s.funcs.Load()
	s.funcs.Store(&strategyFuncs[P, T]{validate: cur.validate, sample: fn})
	return nil
}

// Replaced reports whether either function has been swapped out.
func (s *Strategy[P, T]) Replaced() bool {
	// Function values are not comparable; the default pair is identified
	// by the pointer Restore stores.
	return s.funcs.Load() != s.defaults
}

// Restore reinstates the default predicate and sampler.
func (s *Strategy[P, T]) Restore() {
	s.funcs.Store(s.defaults)
}

// Strategies returns the names of all registered distribution strategies.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupStrategy returns the registered strategy for a distribution name.
func LookupStrategy(name string) (Slot, bool) {
	s, ok := registry[name]
	return s, ok
}

// RestoreDefaults reinstates the default functions of every strategy.
func RestoreDefaults() {
	for _, s := range registry {
		s.Restore()
	}
}
