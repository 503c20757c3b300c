package generator

import "math/rand"

const (
	alfShortLag = 24
	alfLongLag  = 55
)

// alf is an additive lagged Fibonacci generator,
// x[n] = x[n-24] + x[n-55] mod 2^32. The lag window is produced a block at a
// time and initialized from the platform generator seeded with the seed.
type alf struct {
	x [alfLongLag]uint32
	i int
}

// NewALF returns a generator backed by the additive lagged Fibonacci algorithm.
func NewALF(seed uint32) *Generator {
	return newGenerator(ALF, &alf{}, seed)
}

func (s *alf) Seed(seed uint32) {
	r := rand.New(rand.NewSource(int64(seed)))
	for i := range s.x {
		s.x[i] = r.Uint32()
	}
	// At least one odd word is required for the full period.
	s.x[0] |= 1
	s.i = alfLongLag
}

// fill replaces the whole window with the next 55 outputs.
func (s *alf) fill() {
	for i := 0; i < alfShortLag; i++ {
		s.x[i] += s.x[i+alfLongLag-alfShortLag]
	}
	for i := alfShortLag; i < alfLongLag; i++ {
		s.x[i] += s.x[i-alfShortLag]
	}
	s.i = 0
}

func (s *alf) Uint32() uint32 {
	if s.i >= alfLongLag {
		s.fill()
	}
	v := s.x[s.i]
	s.i++
	return v
}

func (s *alf) Int31() int32 {
	return int32(s.Uint32() >> 1)
}

func (s *alf) Float64() float64 {
	return float64(s.Uint32()) * uintToFloat
}
