package statistics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"hnf1b/analysis/models/dtos"
)

/*
	Assumption-driven statistical comparison of a numeric
	measurement partitioned into named groups.

	The assumption checks produce a test recommendation ; the
	executed test is always rank-based regardless, a deliberate
	choice for this dataset whose distance distributions are known
	to be non-normal. Keeping the executed test fixed keeps results
	reproducible across runs.
*/

const alpha = 0.05

var ErrInsufficientData = errors.New("insufficient data for comparison")

type (
	Service struct {
		logger *zap.Logger
	}

	// Group is one named partition of the measurement.
	Group struct {
		Name   string
		Values []float64
	}
)

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Describe computes the descriptive statistics of one group.
func (s *Service) Describe(name string, values []float64) dtos.GroupSummary {
	n := len(values)
	summary := dtos.GroupSummary{Group: name, Count: n}
	if n == 0 {
		return summary
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	summary.Mean = stat.Mean(values, nil)
	summary.Median = median(sorted)
	summary.Min = sorted[0]
	summary.Max = sorted[n-1]
	summary.Q25 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	summary.Q75 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	summary.Iqr = summary.Q75 - summary.Q25

	if n > 1 {
		summary.Std = stat.StdDev(values, nil)
		summary.Sem = summary.Std / math.Sqrt(float64(n))
	}
	summary.Ci95Lower = summary.Mean - 1.96*summary.Sem
	summary.Ci95Upper = summary.Mean + 1.96*summary.Sem

	return summary
}

// CheckAssumptions runs per-group normality checks and the
// variance-homogeneity check, then derives the recommended test.
//
// A group with fewer than 3 observations is excluded from the
// normality check (the check is omitted, not failed) but an
// untested group does not guarantee normality, so it still pulls
// the aggregate flag down.
func (s *Service) CheckAssumptions(groups []Group) dtos.AssumptionReport {
	report := dtos.AssumptionReport{
		Normality:       map[string]dtos.NormalityCheck{},
		AllGroupsNormal: true,
	}

	for _, g := range groups {
		if len(g.Values) < 3 {
			report.AllGroupsNormal = false
			continue
		}
		w, p, err := ShapiroWilk(g.Values)
		if err != nil {
			// check skipped (e.g. zero range), omitted from the report
			s.logger.Debug("normality check skipped",
				zap.String("group", g.Name), zap.Error(err))
			report.AllGroupsNormal = false
			continue
		}
		check := dtos.NormalityCheck{Statistic: w, PValue: p, Normal: p > alpha}
		report.Normality[g.Name] = check
		if !check.Normal {
			report.AllGroupsNormal = false
		}
	}

	if len(groups) > 1 {
		if w, p, err := Levene(values(groups)...); err == nil {
			report.Levene = &dtos.VarianceCheck{
				Statistic:     w,
				PValue:        p,
				EqualVariance: p > alpha,
			}
		} else {
			s.logger.Debug("variance check skipped", zap.Error(err))
		}
	}

	report.RecommendedTest = recommendTest(len(groups), report)
	return report
}

func recommendTest(groupCount int, report dtos.AssumptionReport) string {
	equalVariance := report.Levene != nil && report.Levene.EqualVariance

	switch {
	case groupCount == 2 && report.AllGroupsNormal && equalVariance:
		return "Student's t-test"
	case groupCount == 2 && report.AllGroupsNormal:
		return "Welch's t-test"
	case groupCount == 2:
		return "Mann-Whitney U test"
	case groupCount > 2 && report.AllGroupsNormal && equalVariance:
		return "One-way ANOVA"
	case groupCount > 2:
		return "Kruskal-Wallis test"
	default:
		return ""
	}
}

// Compare checks assumptions and executes the rank-based
// comparison: Mann-Whitney U for exactly 2 groups, Kruskal-Wallis
// plus all pairwise Mann-Whitney comparisons for more. No
// multiple-comparison correction is applied to the pairwise runs
// (documented limitation).
func (s *Service) Compare(groups []Group) (*dtos.ComparisonResult, error) {
	if len(groups) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 groups, have %d", ErrInsufficientData, len(groups))
	}
	for _, g := range groups {
		if len(g.Values) < 1 {
			return nil, fmt.Errorf("%w: group %q is empty", ErrInsufficientData, g.Name)
		}
	}

	result := &dtos.ComparisonResult{
		Assumptions: s.CheckAssumptions(groups),
		Pairwise:    map[string]dtos.TestResult{},
	}

	if len(groups) > 2 {
		h, p, err := KruskalWallis(values(groups)...)
		if err != nil {
			return nil, err
		}
		result.Omnibus = &dtos.OmnibusResult{
			Test:        "Kruskal-Wallis",
			Statistic:   h,
			PValue:      p,
			Significant: p < alpha,
		}
	}

	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			pair, err := s.compareTwo(groups[i], groups[j])
			if err != nil {
				return nil, err
			}
			key := fmt.Sprintf("%s_vs_%s", groups[i].Name, groups[j].Name)
			result.Pairwise[key] = pair
		}
	}

	s.logger.Info("group comparison complete",
		zap.Int("groups", len(groups)),
		zap.String("recommended", result.Assumptions.RecommendedTest))

	return result, nil
}

func (s *Service) compareTwo(a, b Group) (dtos.TestResult, error) {
	u, p, err := MannWhitney(a.Values, b.Values)
	if err != nil {
		return dtos.TestResult{}, err
	}

	n1 := float64(len(a.Values))
	n2 := float64(len(b.Values))

	result := dtos.TestResult{
		Test:        "Mann-Whitney U",
		GroupA:      a.Name,
		GroupB:      b.Name,
		UStatistic:  u,
		PValue:      p,
		EffectSizeR: 1 - (2*u)/(n1*n2), // rank-biserial correlation
		Cles:        u / (n1 * n2),
		Significant: p < alpha,
	}
	if d, ok := CohensD(a.Values, b.Values); ok {
		result.CohensD = d
	}
	result.Interpretation = interpretEffectSize(result.CohensD)

	return result, nil
}

// ScoreCorrelation computes the Spearman rank correlation between
// the ordinal pathogenicity score and the measurement. Returns nil
// without error when fewer than 4 paired observations exist (the
// check is skipped, not failed).
func (s *Service) ScoreCorrelation(scores, measurements []float64) (*dtos.CorrelationResult, error) {
	if len(scores) != len(measurements) {
		return nil, fmt.Errorf("score/measurement length mismatch: %d != %d", len(scores), len(measurements))
	}
	if len(scores) <= 3 {
		return nil, nil
	}

	rho, p, err := Spearman(scores, measurements)
	if err != nil {
		return nil, err
	}

	interpretation := "No correlation"
	if rho < 0 {
		interpretation = "Negative correlation (higher pathogenicity = lower distance)"
	} else if rho > 0 {
		interpretation = "Positive correlation"
	}

	return &dtos.CorrelationResult{
		Rho:            rho,
		PValue:         p,
		Significant:    p < alpha,
		Interpretation: interpretation,
	}, nil
}

// interpretEffectSize classifies |d| on the conventional
// 0.2 / 0.5 / 0.8 thresholds.
func interpretEffectSize(d float64) string {
	switch ad := math.Abs(d); {
	case ad < 0.2:
		return "negligible effect"
	case ad < 0.5:
		return "small effect"
	case ad < 0.8:
		return "medium effect"
	default:
		return "large effect"
	}
}

func values(groups []Group) [][]float64 {
	vs := make([][]float64, len(groups))
	for i, g := range groups {
		vs[i] = g.Values
	}
	return vs
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
