package dist_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

const testSeed = 20240917

func seeded(t *testing.T) *generator.Generator {
	t.Helper()
	return dist.SeededGenerator(testSeed)
}

// fixedSource replays a fixed list of Float64 values.
type fixedSource struct {
	values []float64
	pos    int
}

func (s *fixedSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *fixedSource) Uint32() uint32   { return uint32(s.Float64() * (1 << 32)) }
func (s *fixedSource) Int31() int32     { return int32(s.Float64() * (1 << 31)) }
func (s *fixedSource) Seed(seed uint32) { s.pos = 0 }

func fixedGenerator(t *testing.T, values ...float64) *generator.Generator {
	t.Helper()
	g, err := generator.NewFromSource(&fixedSource{values: values}, 0)
	require.NoError(t, err)
	return g
}

func TestNilGenerator(t *testing.T) {
	_, err := dist.NewNormal(nil, 0, 1)
	require.ErrorIs(t, err, dist.ErrInvalidArgument)

	_, err = dist.NewCategorical(nil, []float64{1})
	require.ErrorIs(t, err, dist.ErrInvalidArgument)

	_, err = dist.NewBinomial(nil, 0.5, 10)
	require.ErrorIs(t, err, dist.ErrInvalidArgument)
}

func TestConstructorRejectsInvalidParameters(t *testing.T) {
	g := seeded(t)
	cases := []struct {
		name string
		fn   func() error
	}{
		{"bernoulli", func() error { _, err := dist.NewBernoulli(g, 1.5); return err }},
		{"binomial", func() error { _, err := dist.NewBinomial(g, 0.5, -1); return err }},
		{"geometric", func() error { _, err := dist.NewGeometric(g, 0); return err }},
		{"poisson", func() error { _, err := dist.NewPoisson(g, -1); return err }},
		{"discrete-uniform", func() error { _, err := dist.NewDiscreteUniform(g, 5, 4); return err }},
		{"normal", func() error { _, err := dist.NewNormal(g, 0, 0); return err }},
		{"lognormal", func() error { _, err := dist.NewLognormal(g, math.NaN(), 1); return err }},
		{"exponential", func() error { _, err := dist.NewExponential(g, 0); return err }},
		{"gamma", func() error { _, err := dist.NewGamma(g, -1, 1); return err }},
		{"erlang", func() error { _, err := dist.NewErlang(g, 0, 1); return err }},
		{"beta", func() error { _, err := dist.NewBeta(g, 0, 1); return err }},
		{"beta-prime", func() error { _, err := dist.NewBetaPrime(g, 1, math.Inf(1)); return err }},
		{"cauchy", func() error { _, err := dist.NewCauchy(g, 0, -1); return err }},
		{"chi", func() error { _, err := dist.NewChi(g, 0); return err }},
		{"chi-square", func() error { _, err := dist.NewChiSquare(g, 0); return err }},
		{"students-t", func() error { _, err := dist.NewStudentsT(g, 0); return err }},
		{"fisher-snedecor", func() error { _, err := dist.NewFisherSnedecor(g, 0, 1); return err }},
		{"fisher-tippett", func() error { _, err := dist.NewFisherTippett(g, 0, 0); return err }},
		{"weibull", func() error { _, err := dist.NewWeibull(g, 1, 0); return err }},
		{"rayleigh", func() error { _, err := dist.NewRayleigh(g, 0); return err }},
		{"laplace", func() error { _, err := dist.NewLaplace(g, 0, 0); return err }},
		{"logistic", func() error { _, err := dist.NewLogistic(g, 0, 0); return err }},
		{"pareto", func() error { _, err := dist.NewPareto(g, 0, 1); return err }},
		{"power", func() error { _, err := dist.NewPower(g, 1, 0); return err }},
		{"triangular", func() error { _, err := dist.NewTriangular(g, 0, 1, 2); return err }},
		{"continuous-uniform", func() error { _, err := dist.NewContinuousUniform(g, 1, 1); return err }},
		{"categorical", func() error { _, err := dist.NewCategorical(g, nil); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, dist.ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestRejectedUpdateKeepsParameters(t *testing.T) {
	n, err := dist.NewNormal(seeded(t), 5, 2)
	require.NoError(t, err)

	err = n.SetSigma(-1)
	require.ErrorIs(t, err, dist.ErrInvalidArgument)
	assert.Equal(t, 2.0, n.Sigma())
	assert.Equal(t, 5.0, n.Mu())

	// Sampling still follows N(5, 2).
	twin, err := dist.NewNormal(seeded(t), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, take(dist.Samples(twin), 50), take(dist.Samples(n), 50))

	require.NoError(t, n.SetSigma(3))
	assert.Equal(t, 3.0, n.Sigma())

	tri, err := dist.NewTriangular(seeded(t), 0, 10, 5)
	require.NoError(t, err)
	// Moving the mode outside the limits is rejected as a whole.
	require.Error(t, tri.SetGamma(11))
	assert.Equal(t, 5.0, tri.Gamma())
	require.Error(t, tri.SetBeta(4))
	assert.Equal(t, 10.0, tri.Beta())
	require.NoError(t, tri.SetBeta(20))
	assert.Equal(t, 20.0, tri.Beta())
}

func TestSharedGeneratorCoupling(t *testing.T) {
	shared := seeded(t)
	a, err := dist.NewContinuousUniform(shared, 0, 1)
	require.NoError(t, err)
	b, err := dist.NewContinuousUniform(shared, 0, 1)
	require.NoError(t, err)

	ref := seeded(t)
	want := []float64{ref.NextFloat64(), ref.NextFloat64(), ref.NextFloat64()}

	got := []float64{a.NextFloat64(), b.NextFloat64(), a.NextFloat64()}
	assert.Equal(t, want, got)
	assert.Same(t, a.Generator(), b.Generator())
}

func TestResetReplaysSamples(t *testing.T) {
	g, err := generator.New(generator.MT19937, 7)
	require.NoError(t, err)
	d, err := dist.NewGamma(g, 2.5, 1.5)
	require.NoError(t, err)

	require.True(t, d.CanReset())
	first := take(dist.Samples(d), 200)
	require.True(t, d.Reset())
	assert.Equal(t, first, take(dist.Samples(d), 200))
}

func TestDraws(t *testing.T) {
	d, err := dist.NewDiscreteUniform(seeded(t), -3, 3)
	require.NoError(t, err)

	seen := map[int]bool{}
	for v := range dist.Draws(d) {
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
		if len(seen) == 7 {
			break
		}
	}
	assert.Len(t, seen, 7)
}

func TestDefaultGenerator(t *testing.T) {
	g := dist.DefaultGenerator()
	require.NotNil(t, g)
	assert.Equal(t, generator.Default, g.Algorithm())
}

func TestNotSupportedStatistics(t *testing.T) {
	g := seeded(t)

	c, err := dist.NewCauchy(g, 0, 1)
	require.NoError(t, err)
	_, err = c.Mean()
	assert.ErrorIs(t, err, dist.ErrNotSupported)
	_, err = c.Variance()
	assert.ErrorIs(t, err, dist.ErrNotSupported)
	m, err := c.Median()
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	b, err := dist.NewBernoulli(g, 0.3)
	require.NoError(t, err)
	_, err = b.Median()
	assert.ErrorIs(t, err, dist.ErrNotSupported)

	st, err := dist.NewStudentsT(g, 1)
	require.NoError(t, err)
	_, err = st.Mean()
	assert.ErrorIs(t, err, dist.ErrNotSupported)
	require.NoError(t, st.SetNu(3))
	mean, err := st.Mean()
	require.NoError(t, err)
	assert.Equal(t, 0.0, mean)

	p, err := dist.NewPareto(g, 1, 1)
	require.NoError(t, err)
	_, err = p.Mean()
	assert.ErrorIs(t, err, dist.ErrNotSupported)
	_, err = p.Variance()
	assert.ErrorIs(t, err, dist.ErrNotSupported)

	u, err := dist.NewContinuousUniform(g, 0, 1)
	require.NoError(t, err)
	_, err = u.Mode()
	assert.ErrorIs(t, err, dist.ErrNotSupported)
}

func TestModes(t *testing.T) {
	g := seeded(t)

	b, err := dist.NewBernoulli(g, 0.5)
	require.NoError(t, err)
	mode, err := b.Mode()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, mode)

	require.NoError(t, b.SetAlpha(0.8))
	mode, err = b.Mode()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, mode)

	be, err := dist.NewBeta(g, 0.5, 0.5)
	require.NoError(t, err)
	mode, err = be.Mode()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, mode)

	require.NoError(t, be.SetAlpha(2))
	require.NoError(t, be.SetBeta(2))
	mode, err = be.Mode()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mode[0], 1e-12)

	po, err := dist.NewPoisson(g, 3)
	require.NoError(t, err)
	mode, err = po.Mode()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, mode)
}

func take(seq func(func(float64) bool), n int) []float64 {
	out := make([]float64, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestSmallShapeBetaSamplesStayInSupport(t *testing.T) {
	for _, shape := range []float64{0.5, 1e-2, 1e-3, math.SmallestNonzeroFloat64} {
		b, err := dist.NewBeta(seeded(t), shape, shape)
		require.NoError(t, err)
		bp, err := dist.NewBetaPrime(seeded(t), shape, shape)
		require.NoError(t, err)

		for _, v := range take(dist.Samples(b), 10_000) {
			require.False(t, math.IsNaN(v), "beta(%v) drew NaN", shape)
			require.GreaterOrEqual(t, v, b.Minimum())
			require.LessOrEqual(t, v, b.Maximum())
		}
		for _, v := range take(dist.Samples(bp), 10_000) {
			require.False(t, math.IsNaN(v), "beta-prime(%v) drew NaN", shape)
			require.False(t, math.IsInf(v, 0), "beta-prime(%v) drew %v", shape, v)
			require.GreaterOrEqual(t, v, bp.Minimum())
		}
	}

	// One tiny shape against an ordinary one.
	b, err := dist.NewBeta(seeded(t), 1e-3, 2)
	require.NoError(t, err)
	for _, v := range take(dist.Samples(b), 10_000) {
		require.True(t, v >= 0 && v <= 1, "got %v", v)
	}
}

func TestInverseCDFSamplersAtUniformEndpoints(t *testing.T) {
	highest := math.Nextafter(1, 0)
	for _, u := range []float64{0, highest} {
		g := fixedGenerator(t, u)
		laplace, err := dist.NewLaplace(g, 1, 0)
		require.NoError(t, err)
		logistic, err := dist.NewLogistic(g, 0, 1)
		require.NoError(t, err)
		gumbel, err := dist.NewFisherTippett(g, 1, 0)
		require.NoError(t, err)

		for _, d := range []dist.Continuous{laplace, logistic, gumbel} {
			v := d.NextFloat64()
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "%T at u=%v drew %v", d, u, v)
		}
	}
}
