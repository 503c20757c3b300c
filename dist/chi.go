package dist

import (
	"math"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/mathx"
)

// chiSquareDraw sums k squared standard normal draws.
func chiSquareDraw(g *generator.Generator, k int) float64 {
	sum := 0.0
	for i := 0; i < k; i++ {
		z := standardNormalDraw(g)
		sum += z * z
	}
	return sum
}

const DefaultChiAlpha = 1

// ChiParams holds the degrees of freedom Alpha.
type ChiParams struct {
	Alpha int
}

// ChiStrategy is valid iff Alpha > 0. The sampler is the square root of a
// chi-square draw.
var ChiStrategy = newStrategy("chi", validateChi, sampleChi)

func validateChi(p ChiParams) bool {
	return p.Alpha > 0
}

func sampleChi(g *generator.Generator, p ChiParams) float64 {
	return math.Sqrt(chiSquareDraw(g, p.Alpha))
}

// Chi is the length of a vector of Alpha independent standard normals.
type Chi struct {
	base
	params ChiParams
}

// NewChi returns a Chi distribution.
func NewChi(gen *generator.Generator, alpha int) (*Chi, error) {
	return construct(gen, ChiStrategy, ChiParams{Alpha: alpha}, func(b base, p ChiParams) *Chi {
		return &Chi{base: b, params: p}
	})
}

func (d *Chi) Alpha() int { return d.params.Alpha }

func (d *Chi) IsValidAlpha(alpha int) bool {
	return ChiStrategy.IsValid(ChiParams{Alpha: alpha})
}

func (d *Chi) SetAlpha(alpha int) error {
	return update(ChiStrategy, &d.params, ChiParams{Alpha: alpha}, "alpha", alpha)
}

func (d *Chi) Minimum() float64 { return 0 }
func (d *Chi) Maximum() float64 { return math.Inf(1) }

func (d *Chi) Mean() (float64, error) {
	k := float64(d.params.Alpha)
	return math.Sqrt2 * mathx.GammaRatio((k+1)/2, k/2), nil
}

func (d *Chi) Median() (float64, error) {
	return math.Sqrt(2 * mathx.GammaMedian(float64(d.params.Alpha)/2)), nil
}

func (d *Chi) Variance() (float64, error) {
	mean, _ := d.Mean()
	return float64(d.params.Alpha) - mean*mean, nil
}

func (d *Chi) Mode() ([]float64, error) {
	return []float64{math.Sqrt(float64(d.params.Alpha - 1))}, nil
}

func (d *Chi) NextFloat64() float64 {
	return ChiStrategy.Sample(d.gen, d.params)
}

const DefaultChiSquareAlpha = 1

// ChiSquareParams holds the degrees of freedom Alpha.
type ChiSquareParams struct {
	Alpha int
}

// ChiSquareStrategy is valid iff Alpha > 0. The sampler sums Alpha squared
// normal draws.
var ChiSquareStrategy = newStrategy("chi-square", validateChiSquare, sampleChiSquare)

func validateChiSquare(p ChiSquareParams) bool {
	return p.Alpha > 0
}

func sampleChiSquare(g *generator.Generator, p ChiSquareParams) float64 {
	return chiSquareDraw(g, p.Alpha)
}

// ChiSquare is the sum of squares of Alpha independent standard normals.
type ChiSquare struct {
	base
	params ChiSquareParams
}

// NewChiSquare returns a ChiSquare distribution.
func NewChiSquare(gen *generator.Generator, alpha int) (*ChiSquare, error) {
	return construct(gen, ChiSquareStrategy, ChiSquareParams{Alpha: alpha}, func(b base, p ChiSquareParams) *ChiSquare {
		return &ChiSquare{base: b, params: p}
	})
}

func (d *ChiSquare) Alpha() int { return d.params.Alpha }

func (d *ChiSquare) IsValidAlpha(alpha int) bool {
	return ChiSquareStrategy.IsValid(ChiSquareParams{Alpha: alpha})
}

func (d *ChiSquare) SetAlpha(alpha int) error {
	return update(ChiSquareStrategy, &d.params, ChiSquareParams{Alpha: alpha}, "alpha", alpha)
}

func (d *ChiSquare) Minimum() float64 { return 0 }
func (d *ChiSquare) Maximum() float64 { return math.Inf(1) }

func (d *ChiSquare) Mean() (float64, error) { return float64(d.params.Alpha), nil }

func (d *ChiSquare) Median() (float64, error) {
	return 2 * mathx.GammaMedian(float64(d.params.Alpha)/2), nil
}

func (d *ChiSquare) Variance() (float64, error) { return 2 * float64(d.params.Alpha), nil }

func (d *ChiSquare) Mode() ([]float64, error) {
	return []float64{math.Max(float64(d.params.Alpha-2), 0)}, nil
}

func (d *ChiSquare) NextFloat64() float64 {
	return ChiSquareStrategy.Sample(d.gen, d.params)
}

const DefaultStudentsTNu = 1

// StudentsTParams holds the degrees of freedom Nu.
type StudentsTParams struct {
	Nu int
}

// StudentsTStrategy is valid iff Nu > 0. The sampler returns Z/sqrt(V/Nu)
// for a standard normal Z and a chi-square V with Nu degrees of freedom.
var StudentsTStrategy = newStrategy("students-t", validateStudentsT, sampleStudentsT)

func validateStudentsT(p StudentsTParams) bool {
	return p.Nu > 0
}

func sampleStudentsT(g *generator.Generator, p StudentsTParams) float64 {
	z := standardNormalDraw(g)
	v := chiSquareDraw(g, p.Nu)
	return z / math.Sqrt(v/float64(p.Nu))
}

// StudentsT is Student's t law with Nu degrees of freedom.
type StudentsT struct {
	base
	params StudentsTParams
}

// NewStudentsT returns a StudentsT distribution.
func NewStudentsT(gen *generator.Generator, nu int) (*StudentsT, error) {
	return construct(gen, StudentsTStrategy, StudentsTParams{Nu: nu}, func(b base, p StudentsTParams) *StudentsT {
		return &StudentsT{base: b, params: p}
	})
}

func (d *StudentsT) Nu() int { return d.params.Nu }

func (d *StudentsT) IsValidNu(nu int) bool {
	return StudentsTStrategy.IsValid(StudentsTParams{Nu: nu})
}

func (d *StudentsT) SetNu(nu int) error {
	return update(StudentsTStrategy, &d.params, StudentsTParams{Nu: nu}, "nu", nu)
}

func (d *StudentsT) Minimum() float64 { return math.Inf(-1) }
func (d *StudentsT) Maximum() float64 { return math.Inf(1) }

// Mean requires Nu > 1.
func (d *StudentsT) Mean() (float64, error) {
	if d.params.Nu <= 1 {
		return math.NaN(), notSupported("students-t", "mean")
	}
	return 0, nil
}

func (d *StudentsT) Median() (float64, error) { return 0, nil }

// Variance requires Nu > 2.
func (d *StudentsT) Variance() (float64, error) {
	if d.params.Nu <= 2 {
		return math.NaN(), notSupported("students-t", "variance")
	}
	nu := float64(d.params.Nu)
	return nu / (nu - 2), nil
}

func (d *StudentsT) Mode() ([]float64, error) { return []float64{0}, nil }

func (d *StudentsT) NextFloat64() float64 {
	return StudentsTStrategy.Sample(d.gen, d.params)
}

const (
	DefaultFisherSnedecorAlpha = 1
	DefaultFisherSnedecorBeta  = 1
)

// FisherSnedecorParams holds the numerator and denominator degrees of
// freedom.
type FisherSnedecorParams struct {
	Alpha int
	Beta  int
}

// FisherSnedecorStrategy is valid iff both degrees of freedom are positive.
// The sampler is the ratio of two chi-square draws, each divided by its
// degrees of freedom.
var FisherSnedecorStrategy = newStrategy("fisher-snedecor", validateFisherSnedecor, sampleFisherSnedecor)

func validateFisherSnedecor(p FisherSnedecorParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

func sampleFisherSnedecor(g *generator.Generator, p FisherSnedecorParams) float64 {
	num := chiSquareDraw(g, p.Alpha) / float64(p.Alpha)
	den := chiSquareDraw(g, p.Beta) / float64(p.Beta)
	return num / den
}

// FisherSnedecor is the F law.
type FisherSnedecor struct {
	base
	params FisherSnedecorParams
}

// NewFisherSnedecor returns a FisherSnedecor distribution.
func NewFisherSnedecor(gen *generator.Generator, alpha, beta int) (*FisherSnedecor, error) {
	return construct(gen, FisherSnedecorStrategy, FisherSnedecorParams{Alpha: alpha, Beta: beta}, func(b base, p FisherSnedecorParams) *FisherSnedecor {
		return &FisherSnedecor{base: b, params: p}
	})
}

func (d *FisherSnedecor) Alpha() int { return d.params.Alpha }
func (d *FisherSnedecor) Beta() int  { return d.params.Beta }

func (d *FisherSnedecor) IsValidAlpha(alpha int) bool {
	p := d.params
	p.Alpha = alpha
	return FisherSnedecorStrategy.IsValid(p)
}

func (d *FisherSnedecor) IsValidBeta(beta int) bool {
	p := d.params
	p.Beta = beta
	return FisherSnedecorStrategy.IsValid(p)
}

func (d *FisherSnedecor) SetAlpha(alpha int) error {
	p := d.params
	p.Alpha = alpha
	return update(FisherSnedecorStrategy, &d.params, p, "alpha", alpha)
}

func (d *FisherSnedecor) SetBeta(beta int) error {
	p := d.params
	p.Beta = beta
	return update(FisherSnedecorStrategy, &d.params, p, "beta", beta)
}

func (d *FisherSnedecor) Minimum() float64 { return 0 }
func (d *FisherSnedecor) Maximum() float64 { return math.Inf(1) }

// Mean requires Beta > 2.
func (d *FisherSnedecor) Mean() (float64, error) {
	if d.params.Beta <= 2 {
		return math.NaN(), notSupported("fisher-snedecor", "mean")
	}
	b := float64(d.params.Beta)
	return b / (b - 2), nil
}

func (d *FisherSnedecor) Median() (float64, error) {
	a, b := float64(d.params.Alpha), float64(d.params.Beta)
	x := mathx.BetaMedian(a/2, b/2)
	return b * x / (a * (1 - x)), nil
}

// Variance requires Beta > 4.
func (d *FisherSnedecor) Variance() (float64, error) {
	if d.params.Beta <= 4 {
		return math.NaN(), notSupported("fisher-snedecor", "variance")
	}
	a, b := float64(d.params.Alpha), float64(d.params.Beta)
	return 2 * b * b * (a + b - 2) / (a * mathx.Sq(b-2) * (b - 4)), nil
}

// Mode requires Alpha > 2.
func (d *FisherSnedecor) Mode() ([]float64, error) {
	if d.params.Alpha <= 2 {
		return nil, notSupported("fisher-snedecor", "mode")
	}
	a, b := float64(d.params.Alpha), float64(d.params.Beta)
	return []float64{(a - 2) / a * b / (b + 2)}, nil
}

func (d *FisherSnedecor) NextFloat64() float64 {
	return FisherSnedecorStrategy.Sample(d.gen, d.params)
}
