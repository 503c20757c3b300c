package generator

// tausworthe is L'Ecuyer's maximally equidistributed combined Tausworthe
// generator (taus88). Each component word has a lower bound below which it
// degenerates; Seed enforces those bounds.
type tausworthe struct {
	s [3]uint32
}

// NewTausworthe returns a generator backed by the combined Tausworthe algorithm.
func NewTausworthe(seed uint32) *Generator {
	return newGenerator(Tausworthe, &tausworthe{}, seed)
}

func (s *tausworthe) Seed(seed uint32) {
	// Initialize state from seed using simple LCG
	x := uint64(seed)
	if x == 0 {
		x = 1
	}
	for i := range s.s {
		x = x*6364136223846793005 + 1442695040888963407
		s.s[i] = uint32(x >> 32)
	}
	if s.s[0] < 2 {
		s.s[0] += 2
	}
	if s.s[1] < 8 {
		s.s[1] += 8
	}
	if s.s[2] < 16 {
		s.s[2] += 16
	}
	// Warm up
	for i := 0; i < 10; i++ {
		s.Uint32()
	}
}

func (s *tausworthe) Uint32() uint32 {
	s.s[0] = ((s.s[0] & 4294967294) << 12) ^ (((s.s[0] << 13) ^ s.s[0]) >> 19)
	s.s[1] = ((s.s[1] & 4294967288) << 4) ^ (((s.s[1] << 2) ^ s.s[1]) >> 25)
	s.s[2] = ((s.s[2] & 4294967280) << 17) ^ (((s.s[2] << 3) ^ s.s[2]) >> 11)
	return s.s[0] ^ s.s[1] ^ s.s[2]
}

func (s *tausworthe) Int31() int32 {
	return int32(s.Uint32() >> 1)
}

func (s *tausworthe) Float64() float64 {
	return float64(s.Uint32()) * uintToFloat
}
