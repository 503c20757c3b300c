package generator

import (
	"fmt"
	"strings"
)

// Algorithm identifies a generator algorithm.
type Algorithm int

const (
	// Custom marks generators built with NewFromSource.
	Custom Algorithm = iota
	XorShift128
	NR3
	NR3Q1
	NR3Q2
	MT19937
	ALF
	Standard
	Tausworthe
)

// Default is the algorithm used when callers do not pick one.
const Default = XorShift128

var algorithmNames = map[Algorithm]string{
	Custom:      "custom",
	XorShift128: "xorshift128",
	NR3:         "nr3",
	NR3Q1:       "nr3q1",
	NR3Q2:       "nr3q2",
	MT19937:     "mt19937",
	ALF:         "alf",
	Standard:    "standard",
	Tausworthe:  "tausworthe",
}

// constructors maps each built-in algorithm to its constructor.
var constructors = map[Algorithm]func(seed uint32) *Generator{
	XorShift128: NewXorShift128,
	NR3:         NewNR3,
	NR3Q1:       NewNR3Q1,
	NR3Q2:       NewNR3Q2,
	MT19937:     NewMT19937,
	ALF:         NewALF,
	Standard:    NewStandard,
	Tausworthe:  NewTausworthe,
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Algorithms returns every built-in algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{XorShift128, NR3, NR3Q1, NR3Q2, MT19937, ALF, Standard, Tausworthe}
}

// ParseAlgorithm looks an algorithm up by name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if algorithmNames[a] == name {
			return a, nil
		}
	}
	return Custom, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, name)
}

// New builds a generator for a built-in algorithm.
func New(alg Algorithm, seed uint32) (*Generator, error) {
	ctor, ok := constructors[alg]
	if !ok {
		return nil, fmt.Errorf("%w: no constructor for %s", ErrInvalidArgument, alg)
	}
	return ctor(seed), nil
}
