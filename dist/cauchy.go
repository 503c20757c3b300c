package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultCauchyAlpha = 1.0
	DefaultCauchyGamma = 1.0
)

// CauchyParams holds the location Alpha and the scale Gamma.
type CauchyParams struct {
	Alpha float64
	Gamma float64
}

// CauchyStrategy is valid iff Alpha is finite and Gamma is positive and
// finite. The sampler inverts the CDF.
var CauchyStrategy = newStrategy("cauchy", validateCauchy, sampleCauchy)

func validateCauchy(p CauchyParams) bool {
	return mathx.IsFinite(p.Alpha) && mathx.IsPositive(p.Gamma)
}

func sampleCauchy(g *generator.Generator, p CauchyParams) float64 {
	return p.Alpha + p.Gamma*math.Tan(math.Pi*(g.NextFloat64()-0.5))
}

// Cauchy is the Cauchy–Lorentz law. It has no mean or variance.
type Cauchy struct {
	base
	params CauchyParams
}

// NewCauchy returns a Cauchy distribution.
func NewCauchy(gen *generator.Generator, alpha, gamma float64) (*Cauchy, error) {
	return construct(gen, CauchyStrategy, CauchyParams{Alpha: alpha, Gamma: gamma}, func(b base, p CauchyParams) *Cauchy {
		return &Cauchy{base: b, params: p}
	})
}

func (d *Cauchy) Alpha() float64 { return d.params.Alpha }
func (d *Cauchy) Gamma() float64 { return d.params.Gamma }

func (d *Cauchy) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return CauchyStrategy.IsValid(p)
}

func (d *Cauchy) IsValidGamma(gamma float64) bool {
	p := d.params
	p.Gamma = gamma
	return CauchyStrategy.IsValid(p)
}

func (d *Cauchy) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(CauchyStrategy, &d.params, p, "alpha", alpha)
}

func (d *Cauchy) SetGamma(gamma float64) error {
	p := d.params
	p.Gamma = gamma
	return update(CauchyStrategy, &d.params, p, "gamma", gamma)
}

func (d *Cauchy) Minimum() float64 { return math.Inf(-1) }
func (d *Cauchy) Maximum() float64 { return math.Inf(1) }

func (d *Cauchy) Mean() (float64, error) {
	return math.NaN(), notSupported("cauchy", "mean")
}

func (d *Cauchy) Median() (float64, error) { return d.params.Alpha, nil }

func (d *Cauchy) Variance() (float64, error) {
	return math.NaN(), notSupported("cauchy", "variance")
}

func (d *Cauchy) Mode() ([]float64, error) {
	return []float64{d.params.Alpha}, nil
}

func (d *Cauchy) NextFloat64() float64 {
	return CauchyStrategy.Sample(d.gen, d.params)
}
