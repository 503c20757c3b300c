package generator

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// mt19937 is the Mersenne Twister of Matsumoto and Nishimura.
// Seeding and Float64 follow the reference init_genrand and genrand_res53,
// so a seed reproduces numpy.random.RandomState(seed).random_sample().
type mt19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 returns a generator backed by MT19937.
func NewMT19937(seed uint32) *Generator {
	return newGenerator(MT19937, &mt19937{}, seed)
}

func (s *mt19937) Seed(seed uint32) {
	s.mt[0] = seed
	for i := 1; i < mtN; i++ {
		s.mt[i] = 1812433253*(s.mt[i-1]^(s.mt[i-1]>>30)) + uint32(i)
	}
	s.mti = mtN
}

// twist regenerates all N words at once.
func (s *mt19937) twist() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (s.mt[mtN-1] & upperMask) | (s.mt[0] & lowerMask)
	s.mt[mtN-1] = s.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	s.mti = 0
}

func (s *mt19937) Uint32() uint32 {
	if s.mti >= mtN {
		s.twist()
	}
	y := s.mt[s.mti]
	s.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

func (s *mt19937) Int31() int32 {
	return int32(s.Uint32() >> 1)
}

// Float64 uses two draws for 53 bits of precision.
func (s *mt19937) Float64() float64 {
	a := s.Uint32() >> 5
	b := s.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * ulongToFloat
}
