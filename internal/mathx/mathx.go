// Package mathx provides numeric helpers shared by the distributions.
package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// EulerGamma is the Euler–Mascheroni constant.
const EulerGamma = 0.57721566490153286060651209008240243104215933593992

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsPositive reports whether x is finite and strictly positive.
func IsPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// IsProbability reports whether 0 <= x <= 1.
func IsProbability(x float64) bool {
	return x >= 0 && x <= 1
}

// BetaMedian returns the median of Beta(a, b) by inverting the regularized
// incomplete beta function.
func BetaMedian(a, b float64) float64 {
	return mathext.InvRegIncBeta(a, b, 0.5)
}

// GammaMedian returns the median of a unit-scale gamma law with the given
// shape by inverting the regularized lower incomplete gamma function.
func GammaMedian(shape float64) float64 {
	return mathext.GammaIncRegInv(shape, 0.5)
}

// GammaRatio returns Γ(a)/Γ(b) computed through log-gamma so that large
// arguments do not overflow.
func GammaRatio(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	return math.Exp(la - lb)
}

// Sq returns x*x.
func Sq(x float64) float64 {
	return x * x
}
