package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// rankData assigns 1-based ranks, averaging over ties.
func rankData(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// average rank across the tied run [i, j]
		avg := (float64(i+1) + float64(j+1)) / 2
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// tieTerm computes sum(t^3 - t) over all tied runs of the pooled
// sample, the shared correction term of the rank tests.
func tieTerm(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	term := 0.0
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[i] {
			j++
		}
		t := float64(j - i + 1)
		term += t*t*t - t
		i = j + 1
	}
	return term
}

// MannWhitney runs the two-sided rank-sum comparison of x against
// y and returns the U statistic of x with its asymptotic p-value
// (normal approximation, tie- and continuity-corrected).
func MannWhitney(x, y []float64) (u float64, p float64, err error) {
	n1 := float64(len(x))
	n2 := float64(len(y))
	if n1 < 1 || n2 < 1 {
		return 0, 0, fmt.Errorf("%w: mann-whitney needs at least one observation per side", ErrInsufficientData)
	}

	pooled := append(append([]float64(nil), x...), y...)
	ranks := rankData(pooled)

	r1 := 0.0
	for i := range x {
		r1 += ranks[i]
	}
	u = r1 - n1*(n1+1)/2

	total := n1 + n2
	mu := n1 * n2 / 2
	ties := tieTerm(pooled)
	variance := n1 * n2 / 12 * ((total + 1) - ties/(total*(total-1)))
	if variance <= 0 {
		// all pooled values identical ; no evidence either way
		return u, 1, nil
	}

	// continuity-corrected two-sided normal approximation
	numerator := math.Abs(u-mu) - 0.5
	if numerator < 0 {
		numerator = 0
	}
	z := numerator / math.Sqrt(variance)
	p = 2 * distuv.UnitNormal.Survival(z)
	if p > 1 {
		p = 1
	}

	return u, p, nil
}

// KruskalWallis runs the rank-based k-sample omnibus test with tie
// correction, chi-squared approximation with k-1 degrees of freedom.
func KruskalWallis(groups ...[]float64) (h float64, p float64, err error) {
	k := len(groups)
	if k < 2 {
		return 0, 0, fmt.Errorf("%w: kruskal-wallis needs at least 2 groups", ErrInsufficientData)
	}

	var pooled []float64
	for _, g := range groups {
		if len(g) < 1 {
			return 0, 0, fmt.Errorf("%w: kruskal-wallis group is empty", ErrInsufficientData)
		}
		pooled = append(pooled, g...)
	}
	total := float64(len(pooled))
	ranks := rankData(pooled)

	h = 0
	offset := 0
	for _, g := range groups {
		ri := 0.0
		for j := range g {
			ri += ranks[offset+j]
		}
		offset += len(g)
		h += ri * ri / float64(len(g))
	}
	h = 12/(total*(total+1))*h - 3*(total+1)

	correction := 1 - tieTerm(pooled)/(total*total*total-total)
	if correction <= 0 {
		// every pooled value identical
		return 0, 1, nil
	}
	h /= correction

	chi2 := distuv.ChiSquared{K: float64(k - 1)}
	p = chi2.Survival(h)

	return h, p, nil
}

// Spearman computes the tie-aware rank correlation with a
// two-sided t-approximation p-value.
func Spearman(a, b []float64) (rho float64, p float64, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("spearman: length mismatch %d != %d", len(a), len(b))
	}
	n := len(a)
	if n < 3 {
		return 0, 0, fmt.Errorf("%w: spearman needs at least 3 pairs", ErrInsufficientData)
	}

	rho = stat.Correlation(rankData(a), rankData(b), nil)
	if math.IsNaN(rho) {
		return 0, 0, fmt.Errorf("spearman: undefined for zero-variance input")
	}

	if math.Abs(rho) >= 1 {
		return rho, 0, nil
	}
	df := float64(n - 2)
	t := rho * math.Sqrt(df/(1-rho*rho))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p = 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}

	return rho, p, nil
}

// CohensD computes the pooled-standard-deviation effect size, for
// reference alongside the rank-based measures. ok is false when
// the pooled deviation is zero or a side has fewer than 2 values.
func CohensD(x, y []float64) (d float64, ok bool) {
	n1 := float64(len(x))
	n2 := float64(len(y))
	if n1 < 2 || n2 < 2 {
		return 0, false
	}

	v1 := stat.Variance(x, nil)
	v2 := stat.Variance(y, nil)
	pooled := math.Sqrt(((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2))
	if pooled == 0 {
		return 0, false
	}

	return (stat.Mean(x, nil) - stat.Mean(y, nil)) / pooled, true
}

// Levene tests variance homogeneity across groups, median-centered
// (the Brown-Forsythe variant, matching the scipy default the
// original analysis relied on).
func Levene(groups ...[]float64) (w float64, p float64, err error) {
	k := len(groups)
	if k < 2 {
		return 0, 0, fmt.Errorf("%w: levene needs at least 2 groups", ErrInsufficientData)
	}

	total := 0
	deviations := make([][]float64, k)
	for i, g := range groups {
		if len(g) < 2 {
			return 0, 0, fmt.Errorf("%w: levene group needs at least 2 observations", ErrInsufficientData)
		}
		sorted := append([]float64(nil), g...)
		sort.Float64s(sorted)
		center := median(sorted)

		deviations[i] = make([]float64, len(g))
		for j, v := range g {
			deviations[i][j] = math.Abs(v - center)
		}
		total += len(g)
	}

	grandMean := 0.0
	groupMeans := make([]float64, k)
	for i, devs := range deviations {
		groupMeans[i] = stat.Mean(devs, nil)
		grandMean += groupMeans[i] * float64(len(devs))
	}
	grandMean /= float64(total)

	between := 0.0
	within := 0.0
	for i, devs := range deviations {
		diff := groupMeans[i] - grandMean
		between += float64(len(devs)) * diff * diff
		for _, v := range devs {
			d := v - groupMeans[i]
			within += d * d
		}
	}
	if within == 0 {
		return 0, 1, nil
	}

	nf := float64(total)
	kf := float64(k)
	w = ((nf - kf) / (kf - 1)) * (between / within)

	f := distuv.F{D1: kf - 1, D2: nf - kf}
	p = f.Survival(w)

	return w, p, nil
}
