package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultFisherTippettAlpha = 1.0
	DefaultFisherTippettMu    = 0.0
)

// FisherTippettParams holds the scale Alpha and the location Mu.
type FisherTippettParams struct {
	Alpha float64
	Mu    float64
}

// FisherTippettStrategy is valid iff Alpha is positive and finite and Mu is
// finite. The sampler inverts the CDF.
var FisherTippettStrategy = newStrategy("fisher-tippett", validateFisherTippett, sampleFisherTippett)

func validateFisherTippett(p FisherTippettParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsFinite(p.Mu)
}

func sampleFisherTippett(g *generator.Generator, p FisherTippettParams) float64 {
	e := -math.Log1p(-openUniformDraw(g))
	return p.Mu - p.Alpha*math.Log(e)
}

// FisherTippett is the type I extreme value (Gumbel) law for maxima.
type FisherTippett struct {
	base
	params FisherTippettParams
}

// NewFisherTippett returns a FisherTippett distribution.
func NewFisherTippett(gen *generator.Generator, alpha, mu float64) (*FisherTippett, error) {
	return construct(gen, FisherTippettStrategy, FisherTippettParams{Alpha: alpha, Mu: mu}, func(b base, p FisherTippettParams) *FisherTippett {
		return &FisherTippett{base: b, params: p}
	})
}

func (d *FisherTippett) Alpha() float64 { return d.params.Alpha }
func (d *FisherTippett) Mu() float64    { return d.params.Mu }

func (d *FisherTippett) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return FisherTippettStrategy.IsValid(p)
}

func (d *FisherTippett) IsValidMu(mu float64) bool {
	p := d.params
	p.Mu = mu
	return FisherTippettStrategy.IsValid(p)
}

func (d *FisherTippett) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(FisherTippettStrategy, &d.params, p, "alpha", alpha)
}

func (d *FisherTippett) SetMu(mu float64) error {
	p := d.params
	p.Mu = mu
	return update(FisherTippettStrategy, &d.params, p, "mu", mu)
}

func (d *FisherTippett) Minimum() float64 { return math.Inf(-1) }
func (d *FisherTippett) Maximum() float64 { return math.Inf(1) }

func (d *FisherTippett) Mean() (float64, error) {
	return d.params.Mu + d.params.Alpha*mathx.EulerGamma, nil
}

func (d *FisherTippett) Median() (float64, error) {
	return d.params.Mu - d.params.Alpha*math.Log(math.Ln2), nil
}

func (d *FisherTippett) Variance() (float64, error) {
	return mathx.Sq(math.Pi*d.params.Alpha) / 6, nil
}

func (d *FisherTippett) Mode() ([]float64, error) {
	return []float64{d.params.Mu}, nil
}

func (d *FisherTippett) NextFloat64() float64 {
	return FisherTippettStrategy.Sample(d.gen, d.params)
}

const (
	DefaultWeibullAlpha  = 1.0
	DefaultWeibullLambda = 1.0
)

// WeibullParams holds the shape Alpha and the scale Lambda.
type WeibullParams struct {
	Alpha  float64
	Lambda float64
}

// WeibullStrategy is valid iff both parameters are positive and finite. The
// sampler inverts the CDF.
var WeibullStrategy = newStrategy("weibull", validateWeibull, sampleWeibull)

func validateWeibull(p WeibullParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Lambda)
}

func sampleWeibull(g *generator.Generator, p WeibullParams) float64 {
	return p.Lambda * math.Pow(exponentialDraw(g), 1/p.Alpha)
}

// Weibull is the Weibull law with shape Alpha and scale Lambda.
type Weibull struct {
	base
	params WeibullParams
}

// NewWeibull returns a Weibull distribution.
func NewWeibull(gen *generator.Generator, alpha, lambda float64) (*Weibull, error) {
	return construct(gen, WeibullStrategy, WeibullParams{Alpha: alpha, Lambda: lambda}, func(b base, p WeibullParams) *Weibull {
		return &Weibull{base: b, params: p}
	})
}

func (d *Weibull) Alpha() float64  { return d.params.Alpha }
func (d *Weibull) Lambda() float64 { return d.params.Lambda }

func (d *Weibull) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return WeibullStrategy.IsValid(p)
}

func (d *Weibull) IsValidLambda(lambda float64) bool {
	p := d.params
	p.Lambda = lambda
	return WeibullStrategy.IsValid(p)
}

func (d *Weibull) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(WeibullStrategy, &d.params, p, "alpha", alpha)
}

func (d *Weibull) SetLambda(lambda float64) error {
	p := d.params
	p.Lambda = lambda
	return update(WeibullStrategy, &d.params, p, "lambda", lambda)
}

func (d *Weibull) Minimum() float64 { return 0 }
func (d *Weibull) Maximum() float64 { return math.Inf(1) }

func (d *Weibull) Mean() (float64, error) {
	return d.params.Lambda * math.Gamma(1+1/d.params.Alpha), nil
}

func (d *Weibull) Median() (float64, error) {
	return d.params.Lambda * math.Pow(math.Ln2, 1/d.params.Alpha), nil
}

func (d *Weibull) Variance() (float64, error) {
	a := d.params.Alpha
	return mathx.Sq(d.params.Lambda) * (math.Gamma(1+2/a) - mathx.Sq(math.Gamma(1+1/a))), nil
}

func (d *Weibull) Mode() ([]float64, error) {
	a := d.params.Alpha
	if a <= 1 {
		return []float64{0}, nil
	}
	return []float64{d.params.Lambda * math.Pow((a-1)/a, 1/a)}, nil
}

func (d *Weibull) NextFloat64() float64 {
	return WeibullStrategy.Sample(d.gen, d.params)
}

const DefaultRayleighSigma = 1.0

// RayleighParams holds the scale Sigma.
type RayleighParams struct {
	Sigma float64
}

// RayleighStrategy is valid iff Sigma is positive and finite. The sampler
// inverts the CDF.
var RayleighStrategy = newStrategy("rayleigh", validateRayleigh, sampleRayleigh)

func validateRayleigh(p RayleighParams) bool {
	return mathx.IsPositive(p.Sigma)
}

func sampleRayleigh(g *generator.Generator, p RayleighParams) float64 {
	return p.Sigma * math.Sqrt(2*exponentialDraw(g))
}

// Rayleigh is the length of a two-dimensional vector of N(0, Sigma²)
// components.
type Rayleigh struct {
	base
	params RayleighParams
}

// NewRayleigh returns a Rayleigh distribution.
func NewRayleigh(gen *generator.Generator, sigma float64) (*Rayleigh, error) {
	return construct(gen, RayleighStrategy, RayleighParams{Sigma: sigma}, func(b base, p RayleighParams) *Rayleigh {
		return &Rayleigh{base: b, params: p}
	})
}

func (d *Rayleigh) Sigma() float64 { return d.params.Sigma }

func (d *Rayleigh) IsValidSigma(sigma float64) bool {
	return RayleighStrategy.IsValid(RayleighParams{Sigma: sigma})
}

func (d *Rayleigh) SetSigma(sigma float64) error {
	return update(RayleighStrategy, &d.params, RayleighParams{Sigma: sigma}, "sigma", sigma)
}

func (d *Rayleigh) Minimum() float64 { return 0 }
func (d *Rayleigh) Maximum() float64 { return math.Inf(1) }

func (d *Rayleigh) Mean() (float64, error) {
	return d.params.Sigma * math.Sqrt(math.Pi/2), nil
}

func (d *Rayleigh) Median() (float64, error) {
	return d.params.Sigma * math.Sqrt(2*math.Ln2), nil
}

func (d *Rayleigh) Variance() (float64, error) {
	return (4 - math.Pi) / 2 * mathx.Sq(d.params.Sigma), nil
}

func (d *Rayleigh) Mode() ([]float64, error) {
	return []float64{d.params.Sigma}, nil
}

func (d *Rayleigh) NextFloat64() float64 {
	return RayleighStrategy.Sample(d.gen, d.params)
}
