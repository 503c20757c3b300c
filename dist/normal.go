package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultNormalMu    = 0.0
	DefaultNormalSigma = 1.0
)

// NormalParams holds the location Mu and standard deviation Sigma.
type NormalParams struct {
	Mu    float64
	Sigma float64
}

// NormalStrategy is valid iff Mu is finite and Sigma is positive and finite.
// The sampler uses the Box-Muller transform on two uniform draws.
var NormalStrategy = newStrategy("normal", validateNormal, sampleNormal)

func validateNormal(p NormalParams) bool {
	return mathx.IsFinite(p.Mu) && mathx.IsPositive(p.Sigma)
}

func sampleNormal(g *generator.Generator, p NormalParams) float64 {
	return p.Mu + p.Sigma*standardNormalDraw(g)
}

// standardNormalDraw returns one N(0, 1) variate from two uniform draws.
func standardNormalDraw(g *generator.Generator) float64 {
	// 1-u lies in (0, 1], keeping the logarithm finite.
	u1 := 1 - g.NextFloat64()
	u2 := g.NextFloat64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Normal is the Gaussian law N(Mu, Sigma²).
type Normal struct {
	base
	params NormalParams
}

// NewNormal returns a Normal distribution.
func NewNormal(gen *generator.Generator, mu, sigma float64) (*Normal, error) {
	return construct(gen, NormalStrategy, NormalParams{Mu: mu, Sigma: sigma}, func(b base, p NormalParams) *Normal {
		return &Normal{base: b, params: p}
	})
}

func (d *Normal) Mu() float64    { return d.params.Mu }
func (d *Normal) Sigma() float64 { return d.params.Sigma }

func (d *Normal) IsValidMu(mu float64) bool {
	p := d.params
	p.Mu = mu
	return NormalStrategy.IsValid(p)
}

func (d *Normal) IsValidSigma(sigma float64) bool {
	p := d.params
	p.Sigma = sigma
	return NormalStrategy.IsValid(p)
}

func (d *Normal) SetMu(mu float64) error {
	p := d.params
	p.Mu = mu
	return update(NormalStrategy, &d.params, p, "mu", mu)
}

func (d *Normal) SetSigma(sigma float64) error {
	p := d.params
	p.Sigma = sigma
	return update(NormalStrategy, &d.params, p, "sigma", sigma)
}

func (d *Normal) Minimum() float64 { return math.Inf(-1) }
func (d *Normal) Maximum() float64 { return math.Inf(1) }

func (d *Normal) Mean() (float64, error)   { return d.params.Mu, nil }
func (d *Normal) Median() (float64, error) { return d.params.Mu, nil }

func (d *Normal) Variance() (float64, error) {
	return mathx.Sq(d.params.Sigma), nil
}

func (d *Normal) Mode() ([]float64, error) {
	return []float64{d.params.Mu}, nil
}

func (d *Normal) NextFloat64() float64 {
	return NormalStrategy.Sample(d.gen, d.params)
}

const (
	DefaultLognormalMu    = 0.0
	DefaultLognormalSigma = 1.0
)

// LognormalParams holds the location Mu and scale Sigma of the underlying
// normal law.
type LognormalParams struct {
	Mu    float64
	Sigma float64
}

// LognormalStrategy is valid iff Mu is finite and Sigma is finite and
// non-negative. The sampler exponentiates a normal draw.
var LognormalStrategy = newStrategy("lognormal", validateLognormal, sampleLognormal)

func validateLognormal(p LognormalParams) bool {
	return mathx.IsFinite(p.Mu) && p.Sigma >= 0 && mathx.IsFinite(p.Sigma)
}

func sampleLognormal(g *generator.Generator, p LognormalParams) float64 {
	return math.Exp(p.Mu + p.Sigma*standardNormalDraw(g))
}

// Lognormal is the law of exp(X) for X ~ N(Mu, Sigma²).
type Lognormal struct {
	base
	params LognormalParams
}

// NewLognormal returns a Lognormal distribution.
func NewLognormal(gen *generator.Generator, mu, sigma float64) (*Lognormal, error) {
	return construct(gen, LognormalStrategy, LognormalParams{Mu: mu, Sigma: sigma}, func(b base, p LognormalParams) *Lognormal {
		return &Lognormal{base: b, params: p}
	})
}

func (d *Lognormal) Mu() float64    { return d.params.Mu }
func (d *Lognormal) Sigma() float64 { return d.params.Sigma }

func (d *Lognormal) IsValidMu(mu float64) bool {
	p := d.params
	p.Mu = mu
	return LognormalStrategy.IsValid(p)
}

func (d *Lognormal) IsValidSigma(sigma float64) bool {
	p := d.params
	p.Sigma = sigma
	return LognormalStrategy.IsValid(p)
}

func (d *Lognormal) SetMu(mu float64) error {
	p := d.params
	p.Mu = mu
	return update(LognormalStrategy, &d.params, p, "mu", mu)
}

func (d *Lognormal) SetSigma(sigma float64) error {
	p := d.params
	p.Sigma = sigma
	return update(LognormalStrategy, &d.params, p, "sigma", sigma)
}

func (d *Lognormal) Minimum() float64 { return 0 }
func (d *Lognormal) Maximum() float64 { return math.Inf(1) }

func (d *Lognormal) Mean() (float64, error) {
	return math.Exp(d.params.Mu + mathx.Sq(d.params.Sigma)/2), nil
}

func (d *Lognormal) Median() (float64, error) {
	return math.Exp(d.params.Mu), nil
}

func (d *Lognormal) Variance() (float64, error) {
	s2 := mathx.Sq(d.params.Sigma)
	return math.Expm1(s2) * math.Exp(2*d.params.Mu+s2), nil
}

func (d *Lognormal) Mode() ([]float64, error) {
	return []float64{math.Exp(d.params.Mu - mathx.Sq(d.params.Sigma))}, nil
}

func (d *Lognormal) NextFloat64() float64 {
	return LognormalStrategy.Sample(d.gen, d.params)
}
