package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

// law describes how to build one distribution from positional parameters.
type law struct {
	params   []string
	defaults []float64
	build    func(g *generator.Generator, p []float64) (dist.Continuous, error)
}

var laws = map[string]law{
	"bernoulli": {[]string{"alpha"}, []float64{dist.DefaultBernoulliAlpha},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewBernoulli(g, p[0]) }},
	"binomial": {[]string{"alpha", "beta"}, []float64{dist.DefaultBinomialAlpha, dist.DefaultBinomialBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			n, err := intParam("beta", p[1])
			if err != nil {
				return nil, err
			}
			return dist.NewBinomial(g, p[0], n)
		}},
	"categorical": {[]string{"weights..."}, []float64{1, 1},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewCategorical(g, p) }},
	"discrete-uniform": {[]string{"alpha", "beta"}, []float64{dist.DefaultDiscreteUniformAlpha, dist.DefaultDiscreteUniformBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			lo, err := intParam("alpha", p[0])
			if err != nil {
				return nil, err
			}
			hi, err := intParam("beta", p[1])
			if err != nil {
				return nil, err
			}
			return dist.NewDiscreteUniform(g, int32(lo), int32(hi))
		}},
	"geometric": {[]string{"alpha"}, []float64{dist.DefaultGeometricAlpha},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewGeometric(g, p[0]) }},
	"poisson": {[]string{"lambda"}, []float64{dist.DefaultPoissonLambda},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewPoisson(g, p[0]) }},

	"beta": {[]string{"alpha", "beta"}, []float64{dist.DefaultBetaAlpha, dist.DefaultBetaBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewBeta(g, p[0], p[1]) }},
	"beta-prime": {[]string{"alpha", "beta"}, []float64{dist.DefaultBetaPrimeAlpha, dist.DefaultBetaPrimeBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewBetaPrime(g, p[0], p[1]) }},
	"cauchy": {[]string{"alpha", "gamma"}, []float64{dist.DefaultCauchyAlpha, dist.DefaultCauchyGamma},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewCauchy(g, p[0], p[1]) }},
	"chi": {[]string{"alpha"}, []float64{dist.DefaultChiAlpha},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			k, err := intParam("alpha", p[0])
			if err != nil {
				return nil, err
			}
			return dist.NewChi(g, k)
		}},
	"chi-square": {[]string{"alpha"}, []float64{dist.DefaultChiSquareAlpha},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			k, err := intParam("alpha", p[0])
			if err != nil {
				return nil, err
			}
			return dist.NewChiSquare(g, k)
		}},
	"continuous-uniform": {[]string{"alpha", "beta"}, []float64{dist.DefaultContinuousUniformAlpha, dist.DefaultContinuousUniformBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			return dist.NewContinuousUniform(g, p[0], p[1])
		}},
	"erlang": {[]string{"alpha", "lambda"}, []float64{dist.DefaultErlangAlpha, dist.DefaultErlangLambda},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			k, err := intParam("alpha", p[0])
			if err != nil {
				return nil, err
			}
			return dist.NewErlang(g, k, p[1])
		}},
	"exponential": {[]string{"lambda"}, []float64{dist.DefaultExponentialLambda},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewExponential(g, p[0]) }},
	"fisher-snedecor": {[]string{"alpha", "beta"}, []float64{dist.DefaultFisherSnedecorAlpha, dist.DefaultFisherSnedecorBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			a, err := intParam("alpha", p[0])
			if err != nil {
				return nil, err
			}
			b, err := intParam("beta", p[1])
			if err != nil {
				return nil, err
			}
			return dist.NewFisherSnedecor(g, a, b)
		}},
	"fisher-tippett": {[]string{"alpha", "mu"}, []float64{dist.DefaultFisherTippettAlpha, dist.DefaultFisherTippettMu},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewFisherTippett(g, p[0], p[1]) }},
	"gamma": {[]string{"alpha", "theta"}, []float64{dist.DefaultGammaAlpha, dist.DefaultGammaTheta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewGamma(g, p[0], p[1]) }},
	"laplace": {[]string{"alpha", "mu"}, []float64{dist.DefaultLaplaceAlpha, dist.DefaultLaplaceMu},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewLaplace(g, p[0], p[1]) }},
	"logistic": {[]string{"mu", "s"}, []float64{dist.DefaultLogisticMu, dist.DefaultLogisticS},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewLogistic(g, p[0], p[1]) }},
	"lognormal": {[]string{"mu", "sigma"}, []float64{dist.DefaultLognormalMu, dist.DefaultLognormalSigma},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewLognormal(g, p[0], p[1]) }},
	"normal": {[]string{"mu", "sigma"}, []float64{dist.DefaultNormalMu, dist.DefaultNormalSigma},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewNormal(g, p[0], p[1]) }},
	"pareto": {[]string{"alpha", "beta"}, []float64{dist.DefaultParetoAlpha, dist.DefaultParetoBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewPareto(g, p[0], p[1]) }},
	"power": {[]string{"alpha", "beta"}, []float64{dist.DefaultPowerAlpha, dist.DefaultPowerBeta},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewPower(g, p[0], p[1]) }},
	"rayleigh": {[]string{"sigma"}, []float64{dist.DefaultRayleighSigma},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewRayleigh(g, p[0]) }},
	"students-t": {[]string{"nu"}, []float64{dist.DefaultStudentsTNu},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			nu, err := intParam("nu", p[0])
			if err != nil {
				return nil, err
			}
			return dist.NewStudentsT(g, nu)
		}},
	"triangular": {[]string{"alpha", "beta", "gamma"}, []float64{dist.DefaultTriangularAlpha, dist.DefaultTriangularBeta, dist.DefaultTriangularGamma},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) {
			return dist.NewTriangular(g, p[0], p[1], p[2])
		}},
	"weibull": {[]string{"alpha", "lambda"}, []float64{dist.DefaultWeibullAlpha, dist.DefaultWeibullLambda},
		func(g *generator.Generator, p []float64) (dist.Continuous, error) { return dist.NewWeibull(g, p[0], p[1]) }},
}

// newLaw builds the named distribution on g. Missing trailing parameters
// take their defaults; categorical takes every value as a weight.
func newLaw(name string, g *generator.Generator, params []float64) (dist.Continuous, error) {
	l, ok := laws[name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q (known: %s)", name, strings.Join(lawNames(), ", "))
	}
	if name == "categorical" {
		if len(params) == 0 {
			params = l.defaults
		}
		return l.build(g, params)
	}
	if len(params) > len(l.params) {
		return nil, fmt.Errorf("%s takes at most %d parameters (%v), got %d", name, len(l.params), l.params, len(params))
	}
	p := slices.Clone(l.defaults)
	copy(p, params)
	return l.build(g, p)
}

// intParam converts an integer-valued parameter given on the command line.
// Fractions and values outside the int32 range are rejected rather than
// truncated.
func intParam(name string, v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer in [%d, %d], got %v",
			dist.ErrInvalidArgument, name, math.MinInt32, math.MaxInt32, v)
	}
	return int(v), nil
}

func lawNames() []string {
	names := make([]string, 0, len(laws))
	for name := range laws {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
