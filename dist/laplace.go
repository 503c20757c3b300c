package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultLaplaceAlpha = 1.0
	DefaultLaplaceMu    = 0.0
)

// LaplaceParams holds the scale Alpha and the location Mu.
type LaplaceParams struct {
	Alpha float64
	Mu    float64
}

// LaplaceStrategy is valid iff Alpha is positive and finite and Mu is finite.
// The sampler inverts the CDF.
var LaplaceStrategy = newStrategy("laplace", validateLaplace, sampleLaplace)

func validateLaplace(p LaplaceParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsFinite(p.Mu)
}

func sampleLaplace(g *generator.Generator, p LaplaceParams) float64 {
	u := openUniformDraw(g) - 0.5
	if u < 0 {
		return p.Mu + p.Alpha*math.Log1p(2*u)
	}
	return p.Mu - p.Alpha*math.Log1p(-2*u)
}

// Laplace is the double exponential law.
type Laplace struct {
	base
	params LaplaceParams
}

// NewLaplace returns a Laplace distribution.
func NewLaplace(gen *generator.Generator, alpha, mu float64) (*Laplace, error) {
	return construct(gen, LaplaceStrategy, LaplaceParams{Alpha: alpha, Mu: mu}, func(b base, p LaplaceParams) *Laplace {
		return &Laplace{base: b, params: p}
	})
}

func (d *Laplace) Alpha() float64 { return d.params.Alpha }
func (d *Laplace) Mu() float64    { return d.params.Mu }

func (d *Laplace) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return LaplaceStrategy.IsValid(p)
}

func (d *Laplace) IsValidMu(mu float64) bool {
	p := d.params
	p.Mu = mu
	return LaplaceStrategy.IsValid(p)
}

func (d *Laplace) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(LaplaceStrategy, &d.params, p, "alpha", alpha)
}

func (d *Laplace) SetMu(mu float64) error {
	p := d.params
	p.Mu = mu
	return update(LaplaceStrategy, &d.params, p, "mu", mu)
}

func (d *Laplace) Minimum() float64 { return math.Inf(-1) }
func (d *Laplace) Maximum() float64 { return math.Inf(1) }

func (d *Laplace) Mean() (float64, error)   { return d.params.Mu, nil }
func (d *Laplace) Median() (float64, error) { return d.params.Mu, nil }

func (d *Laplace) Variance() (float64, error) {
	return 2 * mathx.Sq(d.params.Alpha), nil
}

func (d *Laplace) Mode() ([]float64, error) {
	return []float64{d.params.Mu}, nil
}

func (d *Laplace) NextFloat64() float64 {
	return LaplaceStrategy.Sample(d.gen, d.params)
}

const (
	DefaultLogisticMu = 0.0
	DefaultLogisticS  = 1.0
)

// LogisticParams holds the location Mu and the scale S.
type LogisticParams struct {
	Mu float64
	S  float64
}

// LogisticStrategy is valid iff Mu is finite and S is positive and finite.
// The sampler inverts the CDF.
var LogisticStrategy = newStrategy("logistic", validateLogistic, sampleLogistic)

func validateLogistic(p LogisticParams) bool {
	return mathx.IsFinite(p.Mu) && mathx.IsPositive(p.S)
}

func sampleLogistic(g *generator.Generator, p LogisticParams) float64 {
	u := openUniformDraw(g)
	return p.Mu + p.S*(math.Log(u)-math.Log1p(-u))
}

// Logistic is the logistic law.
type Logistic struct {
	base
	params LogisticParams
}

// NewLogistic returns a Logistic distribution.
func NewLogistic(gen *generator.Generator, mu, s float64) (*Logistic, error) {
	return construct(gen, LogisticStrategy, LogisticParams{Mu: mu, S: s}, func(b base, p LogisticParams) *Logistic {
		return &Logistic{base: b, params: p}
	})
}

func (d *Logistic) Mu() float64 { return d.params.Mu }
func (d *Logistic) S() float64  { return d.params.S }

func (d *Logistic) IsValidMu(mu float64) bool {
	p := d.params
	p.Mu = mu
	return LogisticStrategy.IsValid(p)
}

func (d *Logistic) IsValidS(s float64) bool {
	p := d.params
	p.S = s
	return LogisticStrategy.IsValid(p)
}

func (d *Logistic) SetMu(mu float64) error {
	p := d.params
	p.Mu = mu
	return update(LogisticStrategy, &d.params, p, "mu", mu)
}

func (d *Logistic) SetS(s float64) error {
	p := d.params
	p.S = s
	return update(LogisticStrategy, &d.params, p, "s", s)
}

func (d *Logistic) Minimum() float64 { return math.Inf(-1) }
func (d *Logistic) Maximum() float64 { return math.Inf(1) }

func (d *Logistic) Mean() (float64, error)   { return d.params.Mu, nil }
func (d *Logistic) Median() (float64, error) { return d.params.Mu, nil }

func (d *Logistic) Variance() (float64, error) {
	return mathx.Sq(d.params.S*math.Pi) / 3, nil
}

func (d *Logistic) Mode() ([]float64, error) {
	return []float64{d.params.Mu}, nil
}

func (d *Logistic) NextFloat64() float64 {
	return LogisticStrategy.Sample(d.gen, d.params)
}
