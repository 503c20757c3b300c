package dist

import (
	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultContinuousUniformAlpha = 0.0
	DefaultContinuousUniformBeta  = 1.0
)

// ContinuousUniformParams holds the bounds of [Alpha, Beta).
type ContinuousUniformParams struct {
	Alpha float64
	Beta  float64
}

// ContinuousUniformStrategy is valid iff Alpha < Beta and Beta-Alpha is
// finite. The sampler scales one uniform draw.
var ContinuousUniformStrategy = newStrategy("continuous-uniform", validateContinuousUniform, sampleContinuousUniform)

func validateContinuousUniform(p ContinuousUniformParams) bool {
	return p.Alpha < p.Beta && mathx.IsFinite(p.Beta-p.Alpha)
}

func sampleContinuousUniform(g *generator.Generator, p ContinuousUniformParams) float64 {
	v, _ := g.NextFloat64Range(p.Alpha, p.Beta)
	return v
}

// ContinuousUniform is the uniform law on [Alpha, Beta).
type ContinuousUniform struct {
	base
	params ContinuousUniformParams
}

// NewContinuousUniform returns a ContinuousUniform distribution.
func NewContinuousUniform(gen *generator.Generator, alpha, beta float64) (*ContinuousUniform, error) {
	return construct(gen, ContinuousUniformStrategy, ContinuousUniformParams{Alpha: alpha, Beta: beta}, func(b base, p ContinuousUniformParams) *ContinuousUniform {
		return &ContinuousUniform{base: b, params: p}
	})
}

func (d *ContinuousUniform) Alpha() float64 { return d.params.Alpha }
func (d *ContinuousUniform) Beta() float64  { return d.params.Beta }

func (d *ContinuousUniform) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return ContinuousUniformStrategy.IsValid(p)
}

func (d *ContinuousUniform) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return ContinuousUniformStrategy.IsValid(p)
}

func (d *ContinuousUniform) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(ContinuousUniformStrategy, &d.params, p, "alpha", alpha)
}

func (d *ContinuousUniform) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(ContinuousUniformStrategy, &d.params, p, "beta", beta)
}

func (d *ContinuousUniform) Minimum() float64 { return d.params.Alpha }
func (d *ContinuousUniform) Maximum() float64 { return d.params.Beta }

func (d *ContinuousUniform) Mean() (float64, error) {
	return (d.params.Alpha + d.params.Beta) / 2, nil
}

func (d *ContinuousUniform) Median() (float64, error) {
	return (d.params.Alpha + d.params.Beta) / 2, nil
}

func (d *ContinuousUniform) Variance() (float64, error) {
	return mathx.Sq(d.params.Beta-d.params.Alpha) / 12, nil
}

// Mode is not reported; every point of the support is a mode.
func (d *ContinuousUniform) Mode() ([]float64, error) {
	return nil, notSupported("continuous-uniform", "mode")
}

func (d *ContinuousUniform) NextFloat64() float64 {
	return ContinuousUniformStrategy.Sample(d.gen, d.params)
}
