package dist

import (
	"fmt"
	"slices"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

// CategoricalParams holds the category weights and, for sampling, their
// normalized cumulative sums. Validators read Weights; samplers read CDF.
type CategoricalParams struct {
	Weights []float64
	CDF     []float64
}

// CategoricalStrategy is valid iff there is at least one weight, every weight
// is finite and non-negative, and the weights sum to a positive finite value.
// The sampler binary-searches the CDF for the first index whose cumulative
// value is >= one uniform draw, so the lower index wins on equality.
var CategoricalStrategy = newStrategy("categorical", validateCategorical, sampleCategorical)

func validateCategorical(p CategoricalParams) bool {
	if len(p.Weights) == 0 {
		return false
	}
	sum := 0.0
	for _, w := range p.Weights {
		if !(w >= 0) || !mathx.IsFinite(w) {
			return false
		}
		sum += w
	}
	return mathx.IsPositive(sum)
}

func sampleCategorical(g *generator.Generator, p CategoricalParams) int {
	u := g.NextFloat64()
	i, _ := slices.BinarySearch(p.CDF, u)
	// Only a zero draw can land on leading zero-weight categories.
	for p.CDF[i] == 0 {
		i++
	}
	return i
}

// Categorical draws index i with probability proportional to weight i.
type Categorical struct {
	base
	weights []float64
	cdf     []float64

	mean     float64
	median   float64
	variance float64
	mode     []float64
}

// NewCategorical returns a Categorical distribution over len(weights)
// categories. The weights are copied.
func NewCategorical(gen *generator.Generator, weights []float64) (*Categorical, error) {
	b, err := newBase(gen)
	if err != nil {
		return nil, err
	}
	d := &Categorical{base: b}
	if err := d.SetWeights(weights); err != nil {
		return nil, err
	}
	return d, nil
}

// NewCategoricalUniform returns a Categorical distribution over n equally
// likely categories.
func NewCategoricalUniform(gen *generator.Generator, n int) (*Categorical, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: categorical: category count must be positive (n=%d)", ErrInvalidArgument, n)
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return NewCategorical(gen, weights)
}

// Weights returns a copy of the normalized weights.
func (d *Categorical) Weights() []float64 {
	w := make([]float64, len(d.weights))
	copy(w, d.weights)
	return w
}

// CDF returns a copy of the cumulative probabilities.
func (d *Categorical) CDF() []float64 {
	c := make([]float64, len(d.cdf))
	copy(c, d.cdf)
	return c
}

// IsValidWeights reports whether weights would be accepted by SetWeights.
func (d *Categorical) IsValidWeights(weights []float64) bool {
	return CategoricalStrategy.IsValid(CategoricalParams{Weights: weights})
}

// SetWeights replaces the weights and recomputes every derived value.
// On error nothing changes.
func (d *Categorical) SetWeights(weights []float64) error {
	if !d.IsValidWeights(weights) {
		return fmt.Errorf("%w: categorical: %s weights=%v", ErrInvalidArgument, msgInvalidParam, weights)
	}
	n := len(weights)
	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	norm := make([]float64, n)
	cdf := make([]float64, n)
	cum, mean, maxW := 0.0, 0.0, 0.0
	for i, w := range weights {
		norm[i] = w / sum
		cum += w
		cdf[i] = cum / sum
		mean += float64(i) * norm[i]
		maxW = max(maxW, norm[i])
	}
	cdf[n-1] = 1

	variance := 0.0
	median := -1.0
	var mode []float64
	for i, p := range norm {
		variance += p * mathx.Sq(float64(i)-mean)
		if median < 0 && cdf[i] >= 0.5 {
			median = float64(i)
		}
		if p == maxW {
			mode = append(mode, float64(i))
		}
	}

	d.weights, d.cdf = norm, cdf
	d.mean, d.median, d.variance, d.mode = mean, median, variance, mode
	return nil
}

func (d *Categorical) Minimum() float64 { return 0 }
func (d *Categorical) Maximum() float64 { return float64(len(d.weights) - 1) }

func (d *Categorical) Mean() (float64, error)     { return d.mean, nil }
func (d *Categorical) Median() (float64, error)   { return d.median, nil }
func (d *Categorical) Variance() (float64, error) { return d.variance, nil }

func (d *Categorical) Mode() ([]float64, error) {
	return slices.Clone(d.mode), nil
}

func (d *Categorical) Next() int {
	return CategoricalStrategy.Sample(d.gen, CategoricalParams{Weights: d.weights, CDF: d.cdf})
}

func (d *Categorical) NextFloat64() float64 {
	return float64(d.Next())
}
