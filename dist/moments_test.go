package dist_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

const momentSamples = 200000

type moments interface {
	Mean() float64
	Variance() float64
}

type momentCase struct {
	name string
	new  func(g *generator.Generator) (dist.Continuous, error)
	// ref, when set, is a gonum law with the same parameters.
	ref moments
	// varTol is the relative tolerance on the sample variance.
	varTol float64
}

func momentCases() []momentCase {
	return []momentCase{
		{"normal", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewNormal(g, 5, 2) },
			distuv.Normal{Mu: 5, Sigma: 2}, 0.03},
		{"lognormal", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewLognormal(g, 0.5, 0.5) },
			distuv.LogNormal{Mu: 0.5, Sigma: 0.5}, 0.05},
		{"exponential", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewExponential(g, 2) },
			distuv.Exponential{Rate: 2}, 0.05},
		{"gamma", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewGamma(g, 2.5, 1.5) },
			distuv.Gamma{Alpha: 2.5, Beta: 1 / 1.5}, 0.04},
		{"gamma-small-shape", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewGamma(g, 0.4, 2) },
			distuv.Gamma{Alpha: 0.4, Beta: 0.5}, 0.06},
		{"erlang", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewErlang(g, 3, 2) },
			distuv.Gamma{Alpha: 3, Beta: 2}, 0.04},
		{"beta", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBeta(g, 2, 5) },
			distuv.Beta{Alpha: 2, Beta: 5}, 0.03},
		{"beta-prime", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBetaPrime(g, 3, 12) },
			nil, 0.06},
		{"chi", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewChi(g, 3) },
			nil, 0.03},
		{"chi-square", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewChiSquare(g, 4) },
			distuv.ChiSquared{K: 4}, 0.04},
		{"students-t", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewStudentsT(g, 12) },
			distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 12}, 0.04},
		{"fisher-snedecor", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewFisherSnedecor(g, 10, 20) },
			distuv.F{D1: 10, D2: 20}, 0.06},
		{"fisher-tippett", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewFisherTippett(g, 2, 1) },
			nil, 0.04},
		{"weibull", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewWeibull(g, 1.5, 2) },
			distuv.Weibull{K: 1.5, Lambda: 2}, 0.04},
		{"rayleigh", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewRayleigh(g, 1.5) },
			nil, 0.03},
		{"laplace", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewLaplace(g, 1.5, -2) },
			distuv.Laplace{Mu: -2, Scale: 1.5}, 0.05},
		{"logistic", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewLogistic(g, 1, 0.5) },
			nil, 0.04},
		{"pareto", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewPareto(g, 2, 10) },
			distuv.Pareto{Xm: 2, Alpha: 10}, 0.08},
		{"power", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewPower(g, 2, 0.5) },
			nil, 0.03},
		{"triangular", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewTriangular(g, -1, 3, 0) },
			distuv.NewTriangle(-1, 3, 0, nil), 0.03},
		{"continuous-uniform", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewContinuousUniform(g, -3, 5) },
			distuv.Uniform{Min: -3, Max: 5}, 0.03},
		{"bernoulli", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBernoulli(g, 0.3) },
			distuv.Bernoulli{P: 0.3}, 0.03},
		{"binomial", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBinomial(g, 0.3, 20) },
			distuv.Binomial{N: 20, P: 0.3}, 0.03},
		{"poisson-small", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewPoisson(g, 3.5) },
			distuv.Poisson{Lambda: 3.5}, 0.04},
		{"poisson-large", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewPoisson(g, 42) },
			distuv.Poisson{Lambda: 42}, 0.04},
		{"geometric", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewGeometric(g, 0.25) },
			nil, 0.05},
		{"discrete-uniform", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewDiscreteUniform(g, -4, 7) },
			nil, 0.03},
	}
}

func TestAnalyticMomentsMatchGonum(t *testing.T) {
	for _, tc := range momentCases() {
		if tc.ref == nil {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.new(seeded(t))
			require.NoError(t, err)

			mean, err := d.Mean()
			require.NoError(t, err)
			assert.InDelta(t, tc.ref.Mean(), mean, 1e-9*math.Max(1, math.Abs(mean)))

			variance, err := d.Variance()
			require.NoError(t, err)
			assert.InDelta(t, tc.ref.Variance(), variance, 1e-9*math.Max(1, variance))
		})
	}
}

func TestSampleMoments(t *testing.T) {
	for _, tc := range momentCases() {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.new(seeded(t))
			require.NoError(t, err)

			xs := make([]float64, momentSamples)
			for i := range xs {
				xs[i] = d.NextFloat64()
				require.GreaterOrEqual(t, xs[i], d.Minimum())
				require.LessOrEqual(t, xs[i], d.Maximum())
			}
			gotMean, gotVar := stat.MeanVariance(xs, nil)

			mean, err := d.Mean()
			require.NoError(t, err)
			variance, err := d.Variance()
			require.NoError(t, err)

			se := math.Sqrt(variance / momentSamples)
			assert.InDelta(t, mean, gotMean, 6*se, "mean")
			assert.InEpsilon(t, variance, gotVar, tc.varTol, "variance")
		})
	}
}

func TestNormalSampleMoments(t *testing.T) {
	n, err := dist.NewNormal(seeded(t), 5, 2)
	require.NoError(t, err)

	xs := take(dist.Samples(n), 100000)
	mean, variance := stat.MeanVariance(xs, nil)
	assert.InDelta(t, 5, mean, 0.05)
	assert.InDelta(t, 4, variance, 0.2)
}

func TestSampleMedians(t *testing.T) {
	cases := []struct {
		name string
		new  func(g *generator.Generator) (dist.Continuous, error)
		tol  float64
	}{
		{"gamma", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewGamma(g, 2.5, 1.5) }, 0.06},
		{"beta", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBeta(g, 2, 5) }, 0.005},
		{"beta-prime", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewBetaPrime(g, 3, 12) }, 0.01},
		{"fisher-snedecor", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewFisherSnedecor(g, 10, 20) }, 0.015},
		{"chi-square", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewChiSquare(g, 4) }, 0.05},
		{"weibull", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewWeibull(g, 1.5, 2) }, 0.02},
		{"triangular", func(g *generator.Generator) (dist.Continuous, error) { return dist.NewTriangular(g, -1, 3, 0) }, 0.02},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.new(seeded(t))
			require.NoError(t, err)

			xs := take(dist.Samples(d), momentSamples)
			slices.Sort(xs)
			got := stat.Quantile(0.5, stat.Empirical, xs, nil)

			want, err := d.Median()
			require.NoError(t, err)
			assert.InDelta(t, want, got, tc.tol)
		})
	}
}
