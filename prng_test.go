package prng

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

func newFixed(t *testing.T, alg generator.Algorithm, seed uint32) *Random {
	t.Helper()
	config := DefaultConfig()
	config.Algorithm = alg
	config.Seed = seed
	config.RandomSeed = false
	r, err := New(config)
	require.NoError(t, err)
	return r
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, generator.Default, config.Algorithm)
	assert.True(t, config.RandomSeed)

	r, err := New(config)
	require.NoError(t, err)
	assert.Equal(t, r.Config.Seed, r.Generator().Seed())
}

func TestNewRejectsCustom(t *testing.T) {
	config := DefaultConfig()
	config.Algorithm = generator.Custom
	_, err := New(config)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

func TestReproducible(t *testing.T) {
	run := func(r *Random) []float64 {
		var out []float64
		for range 100 {
			x, err := r.Normal(1, 2)
			require.NoError(t, err)
			g, err := r.Gamma(0.7, 3)
			require.NoError(t, err)
			k, err := r.Poisson(25)
			require.NoError(t, err)
			c, err := r.Choice([]float64{1, 2, 3})
			require.NoError(t, err)
			out = append(out, x, g, float64(k), float64(c), r.Float64())
		}
		return out
	}

	for _, alg := range generator.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			a := newFixed(t, alg, 99)
			b := newFixed(t, alg, 99)
			first := run(a)
			assert.Equal(t, first, run(b))

			a.Reset()
			assert.Equal(t, first, run(a))
		})
	}
}

func TestPerm(t *testing.T) {
	r := newFixed(t, generator.MT19937, 42)
	p := r.Perm(50)
	require.Len(t, p, 50)

	sorted := slices.Clone(p)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}
	assert.NotEqual(t, sorted, p)

	assert.Empty(t, r.Perm(0))
}

func TestShuffleUniformFirstPosition(t *testing.T) {
	r := newFixed(t, generator.XorShift128, 7)
	counts := make([]int, 4)
	const n = 40000
	for range n {
		s := []int{0, 1, 2, 3}
		r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		counts[s[0]]++
	}
	for _, c := range counts {
		assert.InDelta(t, n/4, c, n/40)
	}
}

func TestIntn(t *testing.T) {
	r := newFixed(t, generator.NR3, 3)
	for range 1000 {
		v, err := r.Intn(10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}

	_, err := r.Intn(0)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
	_, err = r.Intn(1 << 40)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	// Negative values whose low 32 bits are positive must not wrap.
	_, err = r.Intn(-(1 << 32) + 5)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
	_, err = r.Intn(-1)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

func TestInvalidParametersPropagate(t *testing.T) {
	r := newFixed(t, generator.XorShift128, 1)

	_, err := r.Normal(0, -1)
	assert.ErrorIs(t, err, dist.ErrInvalidArgument)
	_, err = r.Beta(0, 1)
	assert.ErrorIs(t, err, dist.ErrInvalidArgument)
	_, err = r.Bernoulli(2)
	assert.ErrorIs(t, err, dist.ErrInvalidArgument)
	_, err = r.Choice(nil)
	assert.ErrorIs(t, err, dist.ErrInvalidArgument)
	_, err = r.Uniform(1, 1)
	assert.ErrorIs(t, err, generator.ErrInvalidArgument)
}

// The facade draws through the same generator as distributions built on it.
func TestSharedGenerator(t *testing.T) {
	a := newFixed(t, generator.ALF, 5)
	b := newFixed(t, generator.ALF, 5)

	e, err := dist.NewExponential(b.Generator(), 2)
	require.NoError(t, err)

	x, err := a.Exponential(2)
	require.NoError(t, err)
	assert.Equal(t, x, e.NextFloat64())
	assert.Equal(t, a.Float64(), b.Float64())
}
