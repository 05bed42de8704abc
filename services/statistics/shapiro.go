package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ShapiroWilk tests the null hypothesis that the sample comes from
// a normal distribution, returning the W statistic and its p-value.
// Implements the Royston AS R94 approximation (the same algorithm
// the original analysis called through its statistics provider),
// valid for 3 <= n <= 5000.
func ShapiroWilk(values []float64) (w float64, p float64, err error) {
	n := len(values)
	if n < 3 {
		return 0, 0, fmt.Errorf("%w: shapiro-wilk needs at least 3 observations", ErrInsufficientData)
	}
	if n > 5000 {
		return 0, 0, fmt.Errorf("shapiro-wilk: n=%d exceeds the approximation's range", n)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if sorted[0] == sorted[n-1] {
		return 0, 0, fmt.Errorf("shapiro-wilk: zero range")
	}

	weights := roystonWeights(n)

	mean := 0.0
	for _, v := range sorted {
		mean += v
	}
	mean /= float64(n)

	numerator := 0.0
	denominator := 0.0
	for i, v := range sorted {
		numerator += weights[i] * v
		d := v - mean
		denominator += d * d
	}
	w = numerator * numerator / denominator
	if w > 1 {
		w = 1
	}

	p = roystonPValue(w, n)
	return w, p, nil
}

// roystonWeights builds the coefficient vector a of the W
// statistic from expected normal order statistics.
func roystonWeights(n int) []float64 {
	m := make([]float64, n)
	ssm := 0.0
	for i := 0; i < n; i++ {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
		return a
	}

	rsn := 1 / math.Sqrt(float64(n))
	norm := math.Sqrt(ssm)

	// polynomial corrections to the two (or one) outermost weights
	an := poly(rsn, -2.706056, 4.434685, -2.071190, -0.147981, 0.221157, m[n-1]/norm)
	if n > 5 {
		an1 := poly(rsn, -3.582633, 5.682633, -1.752461, -0.293762, 0.042981, m[n-2]/norm)
		phi := (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
			(1 - 2*an*an - 2*an1*an1)
		scale := math.Sqrt(phi)

		a[n-1], a[0] = an, -an
		a[n-2], a[1] = an1, -an1
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / scale
		}
	} else {
		phi := (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		scale := math.Sqrt(phi)

		a[n-1], a[0] = an, -an
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / scale
		}
	}

	return a
}

// poly evaluates c5*x^5 + c4*x^4 + c3*x^3 + c2*x^2 + c1*x + c0.
func poly(x, c5, c4, c3, c2, c1, c0 float64) float64 {
	return ((((c5*x+c4)*x+c3)*x+c2)*x+c1)*x + c0
}

func roystonPValue(w float64, n int) float64 {
	if n == 3 {
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return math.Max(0, math.Min(1, p))
	}

	var z float64
	if n <= 11 {
		nf := float64(n)
		g := -2.273 + 0.459*nf
		mu := 0.5440 - 0.39978*nf + 0.025054*nf*nf - 0.0006714*nf*nf*nf
		sigma := math.Exp(1.3822 - 0.77857*nf + 0.062767*nf*nf - 0.0020322*nf*nf*nf)
		z = (-math.Log(g-math.Log(1-w)) - mu) / sigma
	} else {
		lnn := math.Log(float64(n))
		mu := -1.5861 - 0.31082*lnn - 0.083751*lnn*lnn + 0.0038915*lnn*lnn*lnn
		sigma := math.Exp(-0.4803 - 0.082676*lnn + 0.0030302*lnn*lnn)
		z = (math.Log(1-w) - mu) / sigma
	}

	return distuv.UnitNormal.Survival(z)
}
