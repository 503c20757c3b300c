package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const DefaultExponentialLambda = 1.0

// ExponentialParams holds the rate Lambda.
type ExponentialParams struct {
	Lambda float64
}

// ExponentialStrategy is valid iff Lambda is positive and finite. The
// sampler inverts the CDF.
var ExponentialStrategy = newStrategy("exponential", validateExponential, sampleExponential)

func validateExponential(p ExponentialParams) bool {
	return mathx.IsPositive(p.Lambda)
}

func sampleExponential(g *generator.Generator, p ExponentialParams) float64 {
	return exponentialDraw(g) / p.Lambda
}

// exponentialDraw returns one unit-rate exponential variate.
func exponentialDraw(g *generator.Generator) float64 {
	return -math.Log(1 - g.NextFloat64())
}

// openUniformDraw returns a uniform draw in the open interval (0, 1). Draws
// of exactly zero move up to 2^-53, the spacing of a 53-bit draw.
func openUniformDraw(g *generator.Generator) float64 {
	return math.Max(g.NextFloat64(), 0x1p-53)
}

// Exponential is the waiting time between events of rate Lambda.
type Exponential struct {
	base
	params ExponentialParams
}

// NewExponential returns an Exponential distribution.
func NewExponential(gen *generator.Generator, lambda float64) (*Exponential, error) {
	return construct(gen, ExponentialStrategy, ExponentialParams{Lambda: lambda}, func(b base, p ExponentialParams) *Exponential {
		return &Exponential{base: b, params: p}
	})
}

func (d *Exponential) Lambda() float64 { return d.params.Lambda }

func (d *Exponential) IsValidLambda(lambda float64) bool {
	p := d.params
	p.Lambda = lambda
	return ExponentialStrategy.IsValid(p)
}

func (d *Exponential) SetLambda(lambda float64) error {
	p := d.params
	p.Lambda = lambda
	return update(ExponentialStrategy, &d.params, p, "lambda", lambda)
}

func (d *Exponential) Minimum() float64 { return 0 }
func (d *Exponential) Maximum() float64 { return math.Inf(1) }

func (d *Exponential) Mean() (float64, error)   { return 1 / d.params.Lambda, nil }
func (d *Exponential) Median() (float64, error) { return math.Ln2 / d.params.Lambda, nil }

func (d *Exponential) Variance() (float64, error) {
	return 1 / mathx.Sq(d.params.Lambda), nil
}

func (d *Exponential) Mode() ([]float64, error) {
	return []float64{0}, nil
}

func (d *Exponential) NextFloat64() float64 {
	return ExponentialStrategy.Sample(d.gen, d.params)
}
