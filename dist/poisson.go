package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

const DefaultPoissonLambda = 1.0

// PoissonParams holds the event rate Lambda.
type PoissonParams struct {
	Lambda float64
}

// PoissonStrategy is valid iff Lambda is positive and finite. Below
// Lambda = 10 the sampler counts unit-rate exponential inter-arrival times;
// above it uses the transformed rejection method of Hörmann (PTRS).
var PoissonStrategy = newStrategy("poisson", validatePoisson, samplePoisson)

func validatePoisson(p PoissonParams) bool {
	return mathx.IsPositive(p.Lambda)
}

func samplePoisson(g *generator.Generator, p PoissonParams) int {
	lambda := p.Lambda
	if lambda < 10 {
		n := 0
		for t := exponentialDraw(g); t < lambda; t += exponentialDraw(g) {
			n++
		}
		return n
	}

	//  W. Hörmann. "The transformed rejection method for generating Poisson
	//  random variables." Insurance: Mathematics and Economics
	//  12.1 (1993): 39-45.
	b := 0.931 + 2.53*math.Sqrt(lambda)
	a := -0.059 + 0.02483*b
	invAlpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)
	logLambda := math.Log(lambda)
	for {
		u := g.NextFloat64() - 0.5
		v := g.NextFloat64()
		us := 0.5 - math.Abs(u)
		k := math.Floor((2*a/us+b)*u + lambda + 0.43)
		if us >= 0.07 && v <= vr {
			return int(k)
		}
		if k < 0 || (us < 0.013 && v > us) {
			continue
		}
		lg, _ := math.Lgamma(k + 1)
		if math.Log(v*invAlpha/(a/(us*us)+b)) <= k*logLambda-lambda-lg {
			return int(k)
		}
	}
}

// Poisson counts events in a unit interval at rate Lambda.
type Poisson struct {
	base
	params PoissonParams
}

// NewPoisson returns a Poisson distribution.
func NewPoisson(gen *generator.Generator, lambda float64) (*Poisson, error) {
	return construct(gen, PoissonStrategy, PoissonParams{Lambda: lambda}, func(b base, p PoissonParams) *Poisson {
		return &Poisson{base: b, params: p}
	})
}

func (d *Poisson) Lambda() float64 { return d.params.Lambda }

func (d *Poisson) IsValidLambda(lambda float64) bool {
	p := d.params
	p.Lambda = lambda
	return PoissonStrategy.IsValid(p)
}

func (d *Poisson) SetLambda(lambda float64) error {
	p := d.params
	p.Lambda = lambda
	return update(PoissonStrategy, &d.params, p, "lambda", lambda)
}

func (d *Poisson) Minimum() float64 { return 0 }
func (d *Poisson) Maximum() float64 { return math.Inf(1) }

func (d *Poisson) Mean() (float64, error) { return d.params.Lambda, nil }

// Median uses the approximation floor(λ + 1/3 - 0.02/λ).
func (d *Poisson) Median() (float64, error) {
	l := d.params.Lambda
	return math.Floor(l + 1.0/3 - 0.02/l), nil
}

func (d *Poisson) Variance() (float64, error) { return d.params.Lambda, nil }

func (d *Poisson) Mode() ([]float64, error) {
	l := d.params.Lambda
	if f := math.Floor(l); f == l {
		return []float64{l - 1, l}, nil
	}
	return []float64{math.Floor(l)}, nil
}

func (d *Poisson) Next() int {
	return PoissonStrategy.Sample(d.gen, d.params)
}

func (d *Poisson) NextFloat64() float64 {
	return float64(d.Next())
}
