package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

// DefaultBernoulliAlpha is the success probability used when none is chosen.
const DefaultBernoulliAlpha = 0.5

// BernoulliParams holds the success probability Alpha.
type BernoulliParams struct {
	Alpha float64
}

// BernoulliStrategy is valid iff 0 <= Alpha <= 1. The sampler returns 1 when
// one uniform draw falls below Alpha.
var BernoulliStrategy = newStrategy("bernoulli", validateBernoulli, sampleBernoulli)

func validateBernoulli(p BernoulliParams) bool {
	return mathx.IsProbability(p.Alpha)
}

func sampleBernoulli(g *generator.Generator, p BernoulliParams) int {
	return bernoulliTrial(g, p.Alpha)
}

func bernoulliTrial(g *generator.Generator, alpha float64) int {
	if g.NextFloat64() < alpha {
		return 1
	}
	return 0
}

// Bernoulli is a single trial succeeding with probability Alpha.
type Bernoulli struct {
	base
	params BernoulliParams
}

// NewBernoulli returns a Bernoulli distribution.
func NewBernoulli(gen *generator.Generator, alpha float64) (*Bernoulli, error) {
	return construct(gen, BernoulliStrategy, BernoulliParams{Alpha: alpha}, func(b base, p BernoulliParams) *Bernoulli {
		return &Bernoulli{base: b, params: p}
	})
}

func (d *Bernoulli) Alpha() float64 { return d.params.Alpha }

// IsValidAlpha reports whether alpha would be accepted by SetAlpha.
func (d *Bernoulli) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return BernoulliStrategy.IsValid(p)
}

// SetAlpha updates the success probability.
func (d *Bernoulli) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(BernoulliStrategy, &d.params, p, "alpha", alpha)
}

func (d *Bernoulli) Minimum() float64 { return 0 }
func (d *Bernoulli) Maximum() float64 { return 1 }

func (d *Bernoulli) Mean() (float64, error) { return d.params.Alpha, nil }

// Median is not reported; it is not unique at Alpha = 0.5.
func (d *Bernoulli) Median() (float64, error) {
	return math.NaN(), notSupported("bernoulli", "median")
}

func (d *Bernoulli) Variance() (float64, error) {
	return d.params.Alpha * (1 - d.params.Alpha), nil
}

func (d *Bernoulli) Mode() ([]float64, error) {
	switch a := d.params.Alpha; {
	case a > 0.5:
		return []float64{1}, nil
	case a < 0.5:
		return []float64{0}, nil
	}
	return []float64{0, 1}, nil
}

func (d *Bernoulli) Next() int {
	return BernoulliStrategy.Sample(d.gen, d.params)
}

func (d *Bernoulli) NextFloat64() float64 {
	return float64(d.Next())
}
