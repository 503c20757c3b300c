package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultTriangularAlpha = 0.0
	DefaultTriangularBeta  = 1.0
	DefaultTriangularGamma = 0.5
)

// TriangularParams holds the lower limit Alpha, the upper limit Beta and the
// mode Gamma.
type TriangularParams struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// TriangularStrategy is valid iff all three are finite and
// Alpha <= Gamma <= Beta with Alpha < Beta. The sampler inverts the
// piecewise CDF.
var TriangularStrategy = newStrategy("triangular", validateTriangular, sampleTriangular)

func validateTriangular(p TriangularParams) bool {
	return mathx.IsFinite(p.Alpha) && mathx.IsFinite(p.Beta) && mathx.IsFinite(p.Gamma) &&
		p.Alpha < p.Beta && p.Alpha <= p.Gamma && p.Gamma <= p.Beta
}

func sampleTriangular(g *generator.Generator, p TriangularParams) float64 {
	a, b, c := p.Alpha, p.Beta, p.Gamma
	u := g.NextFloat64()
	if u < (c-a)/(b-a) {
		return a + math.Sqrt(u*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-c))
}

// Triangular is the triangular law on [Alpha, Beta] peaking at Gamma.
type Triangular struct {
	base
	params TriangularParams
}

// NewTriangular returns a Triangular distribution.
func NewTriangular(gen *generator.Generator, alpha, beta, gamma float64) (*Triangular, error) {
	return construct(gen, TriangularStrategy, TriangularParams{Alpha: alpha, Beta: beta, Gamma: gamma}, func(b base, p TriangularParams) *Triangular {
		return &Triangular{base: b, params: p}
	})
}

func (d *Triangular) Alpha() float64 { return d.params.Alpha }
func (d *Triangular) Beta() float64  { return d.params.Beta }
func (d *Triangular) Gamma() float64 { return d.params.Gamma }

func (d *Triangular) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return TriangularStrategy.IsValid(p)
}

func (d *Triangular) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return TriangularStrategy.IsValid(p)
}

func (d *Triangular) IsValidGamma(gamma float64) bool {
	p := d.params
	p.Gamma = gamma
	return TriangularStrategy.IsValid(p)
}

func (d *Triangular) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(TriangularStrategy, &d.params, p, "alpha", alpha)
}

func (d *Triangular) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(TriangularStrategy, &d.params, p, "beta", beta)
}

func (d *Triangular) SetGamma(gamma float64) error {
	p := d.params
	p.Gamma = gamma
	return update(TriangularStrategy, &d.params, p, "gamma", gamma)
}

func (d *Triangular) Minimum() float64 { return d.params.Alpha }
func (d *Triangular) Maximum() float64 { return d.params.Beta }

func (d *Triangular) Mean() (float64, error) {
	return (d.params.Alpha + d.params.Beta + d.params.Gamma) / 3, nil
}

func (d *Triangular) Median() (float64, error) {
	a, b, c := d.params.Alpha, d.params.Beta, d.params.Gamma
	if c >= (a+b)/2 {
		return a + math.Sqrt((b-a)*(c-a)/2), nil
	}
	return b - math.Sqrt((b-a)*(b-c)/2), nil
}

func (d *Triangular) Variance() (float64, error) {
	a, b, c := d.params.Alpha, d.params.Beta, d.params.Gamma
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18, nil
}

func (d *Triangular) Mode() ([]float64, error) {
	return []float64{d.params.Gamma}, nil
}

func (d *Triangular) NextFloat64() float64 {
	return TriangularStrategy.Sample(d.gen, d.params)
}
