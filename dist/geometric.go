package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
)

const DefaultGeometricAlpha = 0.5

// GeometricParams holds the per-trial success probability Alpha.
type GeometricParams struct {
	Alpha float64
}

// GeometricStrategy is valid iff 0 < Alpha <= 1. The sampler counts uniform
// draws up to and including the first one below Alpha; the expected number
// of draws is 1/Alpha.
var GeometricStrategy = newStrategy("geometric", validateGeometric, sampleGeometric)

func validateGeometric(p GeometricParams) bool {
	return p.Alpha > 0 && p.Alpha <= 1
}

func sampleGeometric(g *generator.Generator, p GeometricParams) int {
	n := 1
	for g.NextFloat64() >= p.Alpha {
		n++
	}
	return n
}

// Geometric is the number of trials up to and including the first success.
type Geometric struct {
	base
	params GeometricParams
}

// NewGeometric returns a Geometric distribution.
func NewGeometric(gen *generator.Generator, alpha float64) (*Geometric, error) {
	return construct(gen, GeometricStrategy, GeometricParams{Alpha: alpha}, func(b base, p GeometricParams) *Geometric {
		return &Geometric{base: b, params: p}
	})
}

func (d *Geometric) Alpha() float64 { return d.params.Alpha }

func (d *Geometric) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return GeometricStrategy.IsValid(p)
}

func (d *Geometric) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(GeometricStrategy, &d.params, p, "alpha", alpha)
}

func (d *Geometric) Minimum() float64 { return 1 }
func (d *Geometric) Maximum() float64 { return math.Inf(1) }

func (d *Geometric) Mean() (float64, error) {
	return 1 / d.params.Alpha, nil
}

func (d *Geometric) Median() (float64, error) {
	a := d.params.Alpha
	if a == 1 {
		return 1, nil
	}
	return math.Ceil(-1 / math.Log2(1-a)), nil
}

func (d *Geometric) Variance() (float64, error) {
	a := d.params.Alpha
	return (1 - a) / (a * a), nil
}

func (d *Geometric) Mode() ([]float64, error) {
	return []float64{1}, nil
}

func (d *Geometric) Next() int {
	return GeometricStrategy.Sample(d.gen, d.params)
}

func (d *Geometric) NextFloat64() float64 {
	return float64(d.Next())
}
