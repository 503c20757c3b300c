package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultBetaAlpha = 1.0
	DefaultBetaBeta  = 1.0
)

// BetaParams holds the two shape parameters.
type BetaParams struct {
	Alpha float64
	Beta  float64
}

// BetaStrategy is valid iff both shapes are positive and finite. The sampler
// returns X/(X+Y) for unit-scale gamma draws X and Y, formed from log X and
// log Y when either shape is below one.
var BetaStrategy = newStrategy("beta", validateBeta, sampleBeta)

func validateBeta(p BetaParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Beta)
}

func sampleBeta(g *generator.Generator, p BetaParams) float64 {
	return betaDraw(g, p.Alpha, p.Beta)
}

func betaDraw(g *generator.Generator, alpha, beta float64) float64 {
	if alpha >= 1 && beta >= 1 {
		x := gammaDraw(g, alpha)
		y := gammaDraw(g, beta)
		return x / (x + y)
	}
	d := logGammaDraw(g, beta) - logGammaDraw(g, alpha)
	if math.IsNaN(d) {
		return float64(endpointDraw(g, alpha, beta))
	}
	return 1 / (1 + math.Exp(d))
}

// endpointDraw picks 1 with probability alpha/(alpha+beta), else 0. Both
// log gamma draws are -Inf only for shapes so small that the law sits on
// its endpoints with those weights.
func endpointDraw(g *generator.Generator, alpha, beta float64) int {
	if g.NextFloat64()*(alpha+beta) < alpha {
		return 1
	}
	return 0
}

// Beta is the beta law on [0, 1].
type Beta struct {
	base
	params BetaParams
}

// NewBeta returns a Beta distribution.
func NewBeta(gen *generator.Generator, alpha, beta float64) (*Beta, error) {
	return construct(gen, BetaStrategy, BetaParams{Alpha: alpha, Beta: beta}, func(b base, p BetaParams) *Beta {
		return &Beta{base: b, params: p}
	})
}

func (d *Beta) Alpha() float64 { return d.params.Alpha }
func (d *Beta) Beta() float64  { return d.params.Beta }

func (d *Beta) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return BetaStrategy.IsValid(p)
}

func (d *Beta) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return BetaStrategy.IsValid(p)
}

func (d *Beta) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(BetaStrategy, &d.params, p, "alpha", alpha)
}

func (d *Beta) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(BetaStrategy, &d.params, p, "beta", beta)
}

func (d *Beta) Minimum() float64 { return 0 }
func (d *Beta) Maximum() float64 { return 1 }

func (d *Beta) Mean() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a / (a + b), nil
}

func (d *Beta) Median() (float64, error) {
	return mathx.BetaMedian(d.params.Alpha, d.params.Beta), nil
}

func (d *Beta) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a * b / (mathx.Sq(a+b) * (a + b + 1)), nil
}

// Mode is bimodal at {0, 1} when both shapes are below one and undefined
// for the uniform case Alpha = Beta = 1.
func (d *Beta) Mode() ([]float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	switch {
	case a > 1 && b > 1:
		return []float64{(a - 1) / (a + b - 2)}, nil
	case a == 1 && b == 1:
		return nil, notSupported("beta", "mode")
	case a < 1 && b < 1:
		return []float64{0, 1}, nil
	case a <= 1 && b >= 1:
		return []float64{0}, nil
	}
	return []float64{1}, nil
}

func (d *Beta) NextFloat64() float64 {
	return BetaStrategy.Sample(d.gen, d.params)
}

const (
	DefaultBetaPrimeAlpha = 1.0
	DefaultBetaPrimeBeta  = 1.0
)

// BetaPrimeParams holds the two shape parameters.
type BetaPrimeParams struct {
	Alpha float64
	Beta  float64
}

// BetaPrimeStrategy is valid iff both shapes are positive and finite. The
// sampler maps a beta draw B to B/(1-B). Ratios beyond the float64 range are
// returned as math.MaxFloat64.
var BetaPrimeStrategy = newStrategy("beta-prime", validateBetaPrime, sampleBetaPrime)

func validateBetaPrime(p BetaPrimeParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Beta)
}

func sampleBetaPrime(g *generator.Generator, p BetaPrimeParams) float64 {
	// X/Y directly; equal to B/(1-B) with B = X/(X+Y) but without
	// the cancellation near B = 1.
	if p.Alpha >= 1 && p.Beta >= 1 {
		x := gammaDraw(g, p.Alpha)
		y := gammaDraw(g, p.Beta)
		return x / y
	}
	d := logGammaDraw(g, p.Alpha) - logGammaDraw(g, p.Beta)
	if math.IsNaN(d) {
		if endpointDraw(g, p.Alpha, p.Beta) == 1 {
			return math.MaxFloat64
		}
		return 0
	}
	return math.Min(math.Exp(d), math.MaxFloat64)
}

// BetaPrime is the beta law of the second kind on [0, ∞).
type BetaPrime struct {
	base
	params BetaPrimeParams
}

// NewBetaPrime returns a BetaPrime distribution.
func NewBetaPrime(gen *generator.Generator, alpha, beta float64) (*BetaPrime, error) {
	return construct(gen, BetaPrimeStrategy, BetaPrimeParams{Alpha: alpha, Beta: beta}, func(b base, p BetaPrimeParams) *BetaPrime {
		return &BetaPrime{base: b, params: p}
	})
}

func (d *BetaPrime) Alpha() float64 { return d.params.Alpha }
func (d *BetaPrime) Beta() float64  { return d.params.Beta }

func (d *BetaPrime) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return BetaPrimeStrategy.IsValid(p)
}

func (d *BetaPrime) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return BetaPrimeStrategy.IsValid(p)
}

func (d *BetaPrime) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(BetaPrimeStrategy, &d.params, p, "alpha", alpha)
}

func (d *BetaPrime) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(BetaPrimeStrategy, &d.params, p, "beta", beta)
}

func (d *BetaPrime) Minimum() float64 { return 0 }
func (d *BetaPrime) Maximum() float64 { return math.Inf(1) }

// Mean requires Beta > 1.
func (d *BetaPrime) Mean() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 1 {
		return math.NaN(), notSupported("beta-prime", "mean")
	}
	return a / (b - 1), nil
}

func (d *BetaPrime) Median() (float64, error) {
	m := mathx.BetaMedian(d.params.Alpha, d.params.Beta)
	return m / (1 - m), nil
}

// Variance requires Beta > 2.
func (d *BetaPrime) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 2 {
		return math.NaN(), notSupported("beta-prime", "variance")
	}
	return a * (a + b - 1) / ((b - 2) * mathx.Sq(b-1)), nil
}

func (d *BetaPrime) Mode() ([]float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if a >= 1 {
		return []float64{(a - 1) / (b + 1)}, nil
	}
	return []float64{0}, nil
}

func (d *BetaPrime) NextFloat64() float64 {
	return BetaPrimeStrategy.Sample(d.gen, d.params)
}
