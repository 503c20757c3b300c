package generator

// The three generators below follow Numerical Recipes, 3rd edition, §7.1.
// All of them draw 64 bits per step; 32-bit outputs take the high word and
// doubles take the top 53 bits.

const (
	nr3V    = 4101842887655102017
	nr3Mult = 4294957665
)

// nr3 is the recommended NR3 generator Ran: a 64-bit LCG, a 64-bit xorshift
// and a multiply-with-carry combined. Period about 3.138e57.
type nr3 struct {
	u, v, w uint64
}

// NewNR3 returns a generator backed by the Numerical Recipes Ran algorithm.
func NewNR3(seed uint32) *Generator {
	return newGenerator(NR3, &nr3{}, seed)
}

func (s *nr3) Seed(seed uint32) {
	j := uint64(seed)
	s.v = nr3V
	s.w = 1
	s.u = j ^ s.v
	s.next()
	s.v = s.u
	s.next()
	s.w = s.v
	s.next()
}

func (s *nr3) next() uint64 {
	s.u = s.u*2862933555777941757 + 7046029254386353087
	s.v ^= s.v >> 17
	s.v ^= s.v << 31
	s.v ^= s.v >> 8
	s.w = nr3Mult*(s.w&0xffffffff) + (s.w >> 32)
	x := s.u ^ (s.u << 21)
	x ^= x >> 35
	x ^= x << 4
	return (x + s.v) ^ s.w
}

func (s *nr3) Uint32() uint32   { return uint32(s.next() >> 32) }
func (s *nr3) Int31() int32     { return int32(s.next() >> 33) }
func (s *nr3) Float64() float64 { return float64(s.next()>>11) * ulongToFloat }

// nr3Q1 is Ranq1: a single xorshift word followed by a multiplicative mix.
// Period about 1.8e19.
type nr3Q1 struct {
	v uint64
}

// NewNR3Q1 returns a generator backed by the Numerical Recipes Ranq1 algorithm.
func NewNR3Q1(seed uint32) *Generator {
	return newGenerator(NR3Q1, &nr3Q1{}, seed)
}

func (s *nr3Q1) Seed(seed uint32) {
	s.v = nr3V ^ uint64(seed)
	s.v = s.next()
}

func (s *nr3Q1) next() uint64 {
	s.v ^= s.v >> 21
	s.v ^= s.v << 35
	s.v ^= s.v >> 4
	return s.v * 2685821657736338717
}

func (s *nr3Q1) Uint32() uint32   { return uint32(s.next() >> 32) }
func (s *nr3Q1) Int31() int32     { return int32(s.next() >> 33) }
func (s *nr3Q1) Float64() float64 { return float64(s.next()>>11) * ulongToFloat }

// nr3Q2 is Ranq2: a xorshift word combined with a multiply-with-carry word.
// Period about 8.5e37; the backup when Ranq1's period is too short.
type nr3Q2 struct {
	v, w uint64
}

// NewNR3Q2 returns a generator backed by the Numerical Recipes Ranq2 algorithm.
func NewNR3Q2(seed uint32) *Generator {
	return newGenerator(NR3Q2, &nr3Q2{}, seed)
}

func (s *nr3Q2) Seed(seed uint32) {
	s.v = nr3V ^ uint64(seed)
	s.w = 1
	s.w = s.next()
	s.v = s.next()
}

func (s *nr3Q2) next() uint64 {
	s.v ^= s.v >> 17
	s.v ^= s.v << 31
	s.v ^= s.v >> 8
	s.w = nr3Mult*(s.w&0xffffffff) + (s.w >> 32)
	return s.v ^ s.w
}

func (s *nr3Q2) Uint32() uint32   { return uint32(s.next() >> 32) }
func (s *nr3Q2) Int31() int32     { return int32(s.next() >> 33) }
func (s *nr3Q2) Float64() float64 { return float64(s.next()>>11) * ulongToFloat }
