package generator

import (
	"encoding/binary"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var seedCounter atomic.Uint64

// NewSeed derives a seed from the clock, the process id and a fresh random
// UUID. Successive calls return different seeds even within one clock tick.
func NewSeed() uint32 {
	id := uuid.New()
	z := uint64(time.Now().UnixNano())
	z ^= uint64(os.Getpid()) << 32
	z ^= binary.LittleEndian.Uint64(id[:8]) ^ binary.LittleEndian.Uint64(id[8:])
	z += seedCounter.Add(1)
	z = splitMix64(&z)
	return uint32(z ^ z>>32)
}

// SeedFromInt32 converts a signed seed by taking its absolute value.
// math.MinInt32 maps to math.MaxInt32.
func SeedFromInt32(seed int32) uint32 {
	switch {
	case seed == math.MinInt32:
		return math.MaxInt32
	case seed < 0:
		return uint32(-seed)
	}
	return uint32(seed)
}

// splitMix64 advances *state and returns the next SplitMix64 output. It is
// used to spread small seeds across wide generator states.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
