package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const (
	DefaultGammaAlpha = 1.0
	DefaultGammaTheta = 1.0
)

// GammaParams holds the shape Alpha and the scale Theta.
type GammaParams struct {
	Alpha float64
	Theta float64
}

// GammaStrategy is valid iff Alpha and Theta are positive and finite. The
// sampler is Marsaglia and Tsang's squeeze method; shapes below one are
// boosted by one and corrected with a power of a uniform draw.
var GammaStrategy = newStrategy("gamma", validateGamma, sampleGamma)

func validateGamma(p GammaParams) bool {
	return mathx.IsPositive(p.Alpha) && mathx.IsPositive(p.Theta)
}

func sampleGamma(g *generator.Generator, p GammaParams) float64 {
	return gammaDraw(g, p.Alpha) * p.Theta
}

// gammaDraw returns one unit-scale gamma variate of the given shape.
//
//	G. Marsaglia and W. W. Tsang. "A simple method for generating gamma
//	variables." ACM Transactions on Mathematical Software 26.3 (2000).
func gammaDraw(g *generator.Generator, shape float64) float64 {
	if shape < 1 {
		u := 1 - g.NextFloat64()
		return gammaDraw(g, shape+1) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = standardNormalDraw(g)
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := g.NextFloat64()
		x2 := x * x
		if u < 1-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// logGammaDraw returns the logarithm of a unit-scale gamma variate. It stays
// finite for small shapes where gammaDraw underflows to zero.
func logGammaDraw(g *generator.Generator, shape float64) float64 {
	if shape < 1 {
		u := 1 - g.NextFloat64()
		return math.Log(gammaDraw(g, shape+1)) + math.Log(u)/shape
	}
	return math.Log(gammaDraw(g, shape))
}

// Gamma is the gamma law with shape Alpha and scale Theta.
type Gamma struct {
	base
	params GammaParams
}

// NewGamma returns a Gamma distribution.
func NewGamma(gen *generator.Generator, alpha, theta float64) (*Gamma, error) {
	return construct(gen, GammaStrategy, GammaParams{Alpha: alpha, Theta: theta}, func(b base, p GammaParams) *Gamma {
		return &Gamma{base: b, params: p}
	})
}

func (d *Gamma) Alpha() float64 { return d.params.Alpha }
func (d *Gamma) Theta() float64 { return d.params.Theta }

func (d *Gamma) IsValidAlpha(alpha float64) bool {
	p := d.params
	p.Alpha = alpha
	return GammaStrategy.IsValid(p)
}

func (d *Gamma) IsValidTheta(theta float64) bool {
	p := d.params
	p.Theta = theta
	return GammaStrategy.IsValid(p)
}

func (d *Gamma) SetAlpha(alpha float64) error {
	p := d.params
	p.Alpha = alpha
	return update(GammaStrategy, &d.params, p, "alpha", alpha)
}

func (d *Gamma) SetTheta(theta float64) error {
	p := d.params
	p.Theta = theta
	return update(GammaStrategy, &d.params, p, "theta", theta)
}

func (d *Gamma) Minimum() float64 { return 0 }
func (d *Gamma) Maximum() float64 { return math.Inf(1) }

func (d *Gamma) Mean() (float64, error) {
	return d.params.Alpha * d.params.Theta, nil
}

func (d *Gamma) Median() (float64, error) {
	return mathx.GammaMedian(d.params.Alpha) * d.params.Theta, nil
}

func (d *Gamma) Variance() (float64, error) {
	return d.params.Alpha * mathx.Sq(d.params.Theta), nil
}

// Mode is (Alpha-1)*Theta; it is undefined for shapes below one.
func (d *Gamma) Mode() ([]float64, error) {
	if d.params.Alpha < 1 {
		return nil, notSupported("gamma", "mode")
	}
	return []float64{(d.params.Alpha - 1) * d.params.Theta}, nil
}

func (d *Gamma) NextFloat64() float64 {
	return GammaStrategy.Sample(d.gen, d.params)
}

const (
	DefaultErlangAlpha  = 1
	DefaultErlangLambda = 1.0
)

// ErlangParams holds the integer shape Alpha and the rate Lambda.
type ErlangParams struct {
	Alpha  int
	Lambda float64
}

// ErlangStrategy is valid iff Alpha > 0 and Lambda is positive and finite.
// The sampler sums Alpha exponential draws.
var ErlangStrategy = newStrategy("erlang", validateErlang, sampleErlang)

func validateErlang(p ErlangParams) bool {
	return p.Alpha > 0 && mathx.IsPositive(p.Lambda)
}

func sampleErlang(g *generator.Generator, p ErlangParams) float64 {
	sum := 0.0
	for i := 0; i < p.Alpha; i++ {
		sum += exponentialDraw(g)
	}
	return sum / p.Lambda
}

// Erlang is the waiting time for Alpha events of rate Lambda.
type Erlang struct {
	base
	params ErlangParams
}

// NewErlang returns an Erlang distribution.
func NewErlang(gen *generator.Generator, alpha int, lambda float64) (*Erlang, error) {
	return construct(gen, ErlangStrategy, ErlangParams{Alpha: alpha, Lambda: lambda}, func(b base, p ErlangParams) *Erlang {
		return &Erlang{base: b, params: p}
	})
}

func (d *Erlang) Alpha() int      { return d.params.Alpha }
func (d *Erlang) Lambda() float64 { return d.params.Lambda }

func (d *Erlang) IsValidAlpha(alpha int) bool {
	p := d.params
	p.Alpha = alpha
	return ErlangStrategy.IsValid(p)
}

func (d *Erlang) IsValidLambda(lambda float64) bool {
	p := d.params
	p.Lambda = lambda
	return ErlangStrategy.IsValid(p)
}

func (d *Erlang) SetAlpha(alpha int) error {
	p := d.params
	p.Alpha = alpha
	return update(ErlangStrategy, &d.params, p, "alpha", alpha)
}

func (d *Erlang) SetLambda(lambda float64) error {
	p := d.params
	p.Lambda = lambda
	return update(ErlangStrategy, &d.params, p, "lambda", lambda)
}

func (d *Erlang) Minimum() float64 { return 0 }
func (d *Erlang) Maximum() float64 { return math.Inf(1) }

func (d *Erlang) Mean() (float64, error) {
	return float64(d.params.Alpha) / d.params.Lambda, nil
}

func (d *Erlang) Median() (float64, error) {
	return mathx.GammaMedian(float64(d.params.Alpha)) / d.params.Lambda, nil
}

func (d *Erlang) Variance() (float64, error) {
	return float64(d.params.Alpha) / mathx.Sq(d.params.Lambda), nil
}

func (d *Erlang) Mode() ([]float64, error) {
	return []float64{float64(d.params.Alpha-1) / d.params.Lambda}, nil
}

func (d *Erlang) NextFloat64() float64 {
	return ErlangStrategy.Sample(d.gen, d.params)
}
