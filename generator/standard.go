package generator

import "math/rand"

// standard delegates to the platform generator from math/rand, reseeded
// from the stored seed on every reset.
type standard struct {
	r *rand.Rand
}

// NewStandard returns a generator backed by math/rand.
func NewStandard(seed uint32) *Generator {
	return newGenerator(Standard, &standard{}, seed)
}

func (s *standard) Seed(seed uint32) {
	if s.r == nil {
		s.r = rand.New(rand.NewSource(int64(seed)))
		return
	}
	s.r.Seed(int64(seed))
}

func (s *standard) Uint32() uint32   { return s.r.Uint32() }
func (s *standard) Int31() int32     { return s.r.Int31() }
func (s *standard) Float64() float64 { return s.r.Float64() }
