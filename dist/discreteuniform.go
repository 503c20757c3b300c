package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
)

const (
	DefaultDiscreteUniformAlpha = 0
	DefaultDiscreteUniformBeta  = 1
)

// DiscreteUniformParams holds the inclusive bounds Alpha <= Beta.
type DiscreteUniformParams struct {
	Alpha int32
	Beta  int32
}

// DiscreteUniformStrategy is valid iff Alpha <= Beta < math.MaxInt32. The
// sampler draws from [Alpha, Beta+1) with one ranged generator call.
var DiscreteUniformStrategy = newStrategy("discrete-uniform", validateDiscreteUniform, sampleDiscreteUniform)

func validateDiscreteUniform(p DiscreteUniformParams) bool {
	return p.Alpha <= p.Beta && p.Beta < math.MaxInt32
}

func sampleDiscreteUniform(g *generator.Generator, p DiscreteUniformParams) int {
	v, _ := g.NextRange(p.Alpha, p.Beta+1)
	return int(v)
}

// DiscreteUniform draws every integer in [Alpha, Beta] with equal probability.
type DiscreteUniform struct {
	base
	params DiscreteUniformParams
}

// NewDiscreteUniform returns a DiscreteUniform distribution.
func NewDiscreteUniform(gen *generator.Generator, alpha, beta int32) (*DiscreteUniform, error) {
	return construct(gen, DiscreteUniformStrategy, DiscreteUniformParams{Alpha: alpha, Beta: beta}, func(b base, p DiscreteUniformParams) *DiscreteUniform {
		return &DiscreteUniform{base: b, params: p}
	})
}

func (d *DiscreteUniform) Alpha() int32 { return d.params.Alpha }
func (d *DiscreteUniform) Beta() int32  { return d.params.Beta }

func (d *DiscreteUniform) IsValidAlpha(alpha int32) bool {
	p := d.params
	p.Alpha = alpha
	return DiscreteUniformStrategy.IsValid(p)
}

func (d *DiscreteUniform) IsValidBeta(beta int32) bool {
	p := d.params
	p.Beta = beta
	return DiscreteUniformStrategy.IsValid(p)
}

func (d *DiscreteUniform) SetAlpha(alpha int32) error {
	p := d.params
	p.Alpha = alpha
	return update(DiscreteUniformStrategy, &d.params, p, "alpha", alpha)
}

func (d *DiscreteUniform) SetBeta(beta int32) error {
	p := d.params
	p.Beta = beta
	return update(DiscreteUniformStrategy, &d.params, p, "beta", beta)
}

func (d *DiscreteUniform) Minimum() float64 { return float64(d.params.Alpha) }
func (d *DiscreteUniform) Maximum() float64 { return float64(d.params.Beta) }

func (d *DiscreteUniform) Mean() (float64, error) {
	return (float64(d.params.Alpha) + float64(d.params.Beta)) / 2, nil
}

func (d *DiscreteUniform) Median() (float64, error) {
	return (float64(d.params.Alpha) + float64(d.params.Beta)) / 2, nil
}

func (d *DiscreteUniform) Variance() (float64, error) {
	n := float64(d.params.Beta) - float64(d.params.Alpha) + 1
	return (n*n - 1) / 12, nil
}

// Mode is not reported; every value in the support is a mode.
func (d *DiscreteUniform) Mode() ([]float64, error) {
	return nil, notSupported("discrete-uniform", "mode")
}

func (d *DiscreteUniform) Next() int {
	return DiscreteUniformStrategy.Sample(d.gen, d.params)
}

func (d *DiscreteUniform) NextFloat64() float64 {
	return float64(d.Next())
}
