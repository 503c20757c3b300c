package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultBinomialAlpha = 0.5
	DefaultBinomialBeta  = 1
)

// BinomialParams holds the per-trial success probability Alpha and the
// number of trials Beta.
type BinomialParams struct {
	Alpha float64
	Beta  int
}

// BinomialStrategy is valid iff 0 <= Alpha <= 1 and Beta >= 0. The sampler
// sums Beta Bernoulli trials, so each draw costs Beta uniform draws.
var BinomialStrategy = newStrategy("binomial", validateBinomial, sampleBinomial)

func validateBinomial(p BinomialParams) bool {
	return mathx.IsProbability(p.Alpha) && p.Beta >= 0
}

func sampleBinomial(g *generator.Generator, p BinomialParams) int {
	n := 0
	for i := 0; i < p.Beta; i++ {
		n += bernoulliTrial(g, p.Alpha)
	}
	return n
}

// Binomial counts successes in Beta independent trials of probability Alpha.
type Binomial struct {
	base
	params BinomialParams
}

// NewBinomial returns a Binomial distribution.
func NewBinomial(gen *generator.Generator, alpha float64, beta int) (*Binomial, error) {
	return construct(gen, BinomialStrategy, BinomialParams{Alpha: alpha, Beta: beta}, func(b base, p BinomialParams) *Binomial {
		return &Binomial{base: b, params: p}
	})
}

func (d *Binomial) Alpha() float64 { return d.params.Alpha }
func (d *Binomial) Beta() int      { return d.params.Beta }

func (d *Binomial) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return BinomialStrategy.IsValid(p)
}

func (d *Binomial) IsValidBeta(beta int) bool {
	p := d.params
	p.Beta = beta
	return BinomialStrategy.IsValid(p)
}

func (d *Binomial) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(BinomialStrategy, &d.params, p, "alpha", alpha)
}

func (d *Binomial) SetBeta(beta int) error {
	p := d.params
	p.Beta = beta
	return update(BinomialStrategy, &d.params, p, "beta", beta)
}

func (d *Binomial) Minimum() float64 { return 0 }
func (d *Binomial) Maximum() float64 { return float64(d.params.Beta) }

func (d *Binomial) Mean() (float64, error) {
	return d.params.Alpha * float64(d.params.Beta), nil
}

// Median is not reported; it is only known to lie between floor and ceil of
// the mean.
func (d *Binomial) Median() (float64, error) {
	return math.NaN(), notSupported("binomial", "median")
}

func (d *Binomial) Variance() (float64, error) {
	a := d.params.Alpha
	return a * (1 - a) * float64(d.params.Beta), nil
}

func (d *Binomial) Mode() ([]float64, error) {
	a, n := d.params.Alpha, float64(d.params.Beta)
	switch {
	case a == 0:
		return []float64{0}, nil
	case a == 1:
		return []float64{n}, nil
	}
	m := (n + 1) * a
	if f := math.Floor(m); f == m && m >= 1 {
		return []float64{m - 1, m}, nil
	}
	return []float64{math.Floor(m)}, nil
}

func (d *Binomial) Next() int {
	return BinomialStrategy.Sample(d.gen, d.params)
}

func (d *Binomial) NextFloat64() float64 {
	return float64(d.Next())
}
