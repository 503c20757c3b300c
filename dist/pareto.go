package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultParetoAlpha = 1.0
	DefaultParetoBeta  = 1.0
)

// ParetoParams holds the scale (minimum value) Alpha and the shape Beta.
type ParetoParams struct {
	Alpha float64
	Beta  float64
}

// ParetoStrategy is valid iff both parameters are positive and finite. The
// sampler returns Alpha*exp(E/Beta) for a unit exponential draw E.
var ParetoStrategy = newStrategy("pareto", validatePareto, samplePareto)

func validatePareto(p ParetoParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Beta)
}

func samplePareto(g *generator.Generator, p ParetoParams) float64 {
	return p.Alpha * math.Exp(exponentialDraw(g)/p.Beta)
}

// Pareto is the Pareto law of the first kind.
type Pareto struct {
	base
	params ParetoParams
}

// NewPareto returns a Pareto distribution.
func NewPareto(gen *generator.Generator, alpha, beta float64) (*Pareto, error) {
	return construct(gen, ParetoStrategy, ParetoParams{Alpha: alpha, Beta: beta}, func(b base, p ParetoParams) *Pareto {
		return &Pareto{base: b, params: p}
	})
}

func (d *Pareto) Alpha() float64 { return d.params.Alpha }
func (d *Pareto) Beta() float64  { return d.params.Beta }

func (d *Pareto) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return ParetoStrategy.IsValid(p)
}

func (d *Pareto) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return ParetoStrategy.IsValid(p)
}

func (d *Pareto) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(ParetoStrategy, &d.params, p, "alpha", alpha)
}

func (d *Pareto) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(ParetoStrategy, &d.params, p, "beta", beta)
}

func (d *Pareto) Minimum() float64 { return d.params.Alpha }
func (d *Pareto) Maximum() float64 { return math.Inf(1) }

// Mean diverges for Beta <= 1.
func (d *Pareto) Mean() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 1 {
		return math.NaN(), notSupported("pareto", "mean")
	}
	return a * b / (b - 1), nil
}

func (d *Pareto) Median() (float64, error) {
	return d.params.Alpha * math.Pow(2, 1/d.params.Beta), nil
}

func (d *Pareto) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 2 {
		return math.NaN(), notSupported("pareto", "variance")
	}
	return a * a * b / (mathx.Sq(b-1) * (b - 2)), nil
}

func (d *Pareto) Mode() ([]float64, error) {
	return []float64{d.params.Alpha}, nil
}

func (d *Pareto) NextFloat64() float64 {
	return ParetoStrategy.Sample(d.gen, d.params)
}

const (
	DefaultPowerAlpha = 1.0
	DefaultPowerBeta  = 1.0
)

// PowerParams holds the shape Alpha and the inverse scale Beta.
type PowerParams struct {
	Alpha float64
	Beta  float64
}

// PowerStrategy is valid iff both parameters are positive and finite. The
// sampler inverts the CDF (Beta*x)^Alpha on [0, 1/Beta].
var PowerStrategy = newStrategy("power", validatePower, samplePower)

func validatePower(p PowerParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Beta)
}

func samplePower(g *generator.Generator, p PowerParams) float64 {
	return math.Pow(g.NextFloat64(), 1/p.Alpha) / p.Beta
}

// Power is the power-function law on [0, 1/Beta].
type Power struct {
	base
	params PowerParams
}

// NewPower returns a Power distribution.
func NewPower(gen *generator.Generator, alpha, beta float64) (*Power, error) {
	return construct(gen, PowerStrategy, PowerParams{Alpha: alpha, Beta: beta}, func(b base, p PowerParams) *Power {
		return &Power{base: b, params: p}
	})
}

func (d *Power) Alpha() float64 { return d.params.Alpha }
func (d *Power) Beta() float64  { return d.params.Beta }

func (d *Power) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return PowerStrategy.IsValid(p)
}

func (d *Power) IsValidBeta(beta float64) bool {
	p := d.params
	p.Beta = beta
	return PowerStrategy.IsValid(p)
}

func (d *Power) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(PowerStrategy, &d.params, p, "alpha", alpha)
}

func (d *Power) SetBeta(beta float64) error {
	p := d.params
	p.Beta = beta
	return update(PowerStrategy, &d.params, p, "beta", beta)
}

func (d *Power) Minimum() float64 { return 0 }
func (d *Power) Maximum() float64 { return 1 / d.params.Beta }

func (d *Power) Mean() (float64, error) {
	a := d.params.Alpha
	return a / (d.params.Beta * (a + 1)), nil
}

func (d *Power) Median() (float64, error) {
	return math.Pow(0.5, 1/d.params.Alpha) / d.params.Beta, nil
}

func (d *Power) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a / (b * b * (a + 2) * mathx.Sq(a+1)), nil
}

// Mode is 1/Beta above Alpha = 1 and 0 below; Alpha = 1 is uniform.
func (d *Power) Mode() ([]float64, error) {
	switch a := d.params.Alpha; {
	case a > 1:
		return []float64{1 / d.params.Beta}, nil
	case a < 1:
		return []float64{0}, nil
	}
	return nil, notSupported("power", "mode")
}

func (d *Power) NextFloat64() float64 {
	return PowerStrategy.Sample(d.gen, d.params)
}
