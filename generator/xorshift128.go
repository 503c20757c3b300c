package generator

// xorShift128 is the xorshift128+ generator of Marsaglia and Vigna.
// Its period is 2^128-1.
type xorShift128 struct {
	x, y uint64
}

// NewXorShift128 returns a generator backed by xorshift128+.
func NewXorShift128(seed uint32) *Generator {
	return newGenerator(XorShift128, &xorShift128{}, seed)
}

// Seed spreads the 32-bit seed across both words. The state must never be
// all zero.
func (s *xorShift128) Seed(seed uint32) {
	z := uint64(seed)
	s.x = splitMix64(&z)
	s.y = splitMix64(&z)
	if s.x == 0 && s.y == 0 {
		s.y = 1
	}
}

func (s *xorShift128) next() uint64 {
	x, y := s.x, s.y
	s.x = y
	x ^= x << 23
	s.y = x ^ y ^ (x >> 17) ^ (y >> 26)
	return s.y + y
}

func (s *xorShift128) Uint32() uint32 {
	return uint32(s.next() >> 32)
}

func (s *xorShift128) Int31() int32 {
	return int32(s.next() >> 33)
}

func (s *xorShift128) Float64() float64 {
	return float64(s.next()>>11) * ulongToFloat
}
