// Package prng bundles a uniform generator with one-shot draws from the
// distributions of package dist.
//
// The generator package provides the uniform algorithms and the dist package
// the distribution types; Random is a convenience layer over both for callers
// that draw from many different laws with changing parameters.
//
// Basic usage:
//
//	r, err := prng.New(prng.DefaultConfig())
//	x, err := r.Normal(0, 1)
//	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
package prng

import (
	"fmt"
	"math"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

// Config configures a Random.
type Config struct {
	// Algorithm selects the uniform generator.
	// Default: generator.Default (xorshift128)
	Algorithm generator.Algorithm

	// Seed for the generator. Ignored when RandomSeed is set.
	// Default: 0
	Seed uint32

	// RandomSeed seeds the generator from generator.NewSeed.
	// Default: true
	RandomSeed bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Algorithm:  generator.Default,
		Seed:       0,
		RandomSeed: true,
	}
}

// Random draws uniform values and one-shot samples from a single generator.
// It is not safe for concurrent use.
type Random struct {
	Config Config

	gen *generator.Generator
}

// New creates a Random from config.
func New(config Config) (*Random, error) {
	seed := config.Seed
	if config.RandomSeed {
		seed = generator.NewSeed()
	}
	gen, err := generator.New(config.Algorithm, seed)
	if err != nil {
		return nil, err
	}
	config.Seed = seed
	return &Random{Config: config, gen: gen}, nil
}

// Generator returns the underlying generator. Distributions built on it share
// its sequence with r.
func (r *Random) Generator() *generator.Generator {
	return r.gen
}

// Reset replays the sequence from the seed in effect.
func (r *Random) Reset() {
	r.gen.Reset()
}

// Float64 returns a value in [0.0, 1.0).
func (r *Random) Float64() float64 {
	return r.gen.NextFloat64()
}

// Uniform returns a value in [low, high).
func (r *Random) Uniform(low, high float64) (float64, error) {
	return r.gen.NextFloat64Range(low, high)
}

// Intn returns a value in [0, n). n must be in (0, math.MaxInt32].
func (r *Random) Intn(n int) (int, error) {
	if n <= 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: n=%d outside (0, %d]", generator.ErrInvalidArgument, n, math.MaxInt32)
	}
	v, err := r.gen.NextN(int32(n))
	return int(v), err
}

// Bool returns a uniformly distributed boolean.
func (r *Random) Bool() bool {
	return r.gen.NextBool()
}

// Shuffle randomizes the order of n elements with a Fisher-Yates pass.
// swap exchanges the elements at i and j.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	if n > math.MaxInt32 {
		panic(fmt.Sprintf("prng: Shuffle of %d elements", n))
	}
	for i := n - 1; i > 0; i-- {
		j, _ := r.gen.NextN(int32(i + 1))
		swap(i, int(j))
	}
}

// Perm returns a random permutation of [0, n).
func (r *Random) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Choice draws an index with probability proportional to weights[i].
func (r *Random) Choice(weights []float64) (int, error) {
	d, err := dist.NewCategorical(r.gen, weights)
	if err != nil {
		return 0, err
	}
	return d.Next(), nil
}

// Bernoulli returns true with probability p.
func (r *Random) Bernoulli(p float64) (bool, error) {
	d, err := dist.NewBernoulli(r.gen, p)
	if err != nil {
		return false, err
	}
	return d.Next() == 1, nil
}

// Binomial counts successes in n trials of probability p.
func (r *Random) Binomial(p float64, n int) (int, error) {
	d, err := dist.NewBinomial(r.gen, p, n)
	if err != nil {
		return 0, err
	}
	return d.Next(), nil
}

// Poisson draws a count with mean lambda.
func (r *Random) Poisson(lambda float64) (int, error) {
	d, err := dist.NewPoisson(r.gen, lambda)
	if err != nil {
		return 0, err
	}
	return d.Next(), nil
}

// Normal draws from N(mu, sigma²).
func (r *Random) Normal(mu, sigma float64) (float64, error) {
	d, err := dist.NewNormal(r.gen, mu, sigma)
	if err != nil {
		return 0, err
	}
	return d.NextFloat64(), nil
}

// Exponential draws with rate lambda.
func (r *Random) Exponential(lambda float64) (float64, error) {
	d, err := dist.NewExponential(r.gen, lambda)
	if err != nil {
		return 0, err
	}
	return d.NextFloat64(), nil
}

// Gamma draws with shape alpha and scale theta.
func (r *Random) Gamma(alpha, theta float64) (float64, error) {
	d, err := dist.NewGamma(r.gen, alpha, theta)
	if err != nil {
		return 0, err
	}
	return d.NextFloat64(), nil
}

// Beta draws from Beta(alpha, beta).
func (r *Random) Beta(alpha, beta float64) (float64, error) {
	d, err := dist.NewBeta(r.gen, alpha, beta)
	if err != nil {
		return 0, err
	}
	return d.NextFloat64(), nil
}
