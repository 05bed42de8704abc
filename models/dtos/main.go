package dtos

// GroupSummary carries the descriptive statistics of one
// pathogenicity group's distance measurements.
type GroupSummary struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Sem    float64 `json:"sem"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
	Iqr    float64 `json:"iqr"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	Ci95Lower float64 `json:"ci95_lower"`
	Ci95Upper float64 `json:"ci95_upper"`
}

// NormalityCheck is one group's Shapiro-Wilk outcome.
type NormalityCheck struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Normal    bool    `json:"normal"`
}

// VarianceCheck is the Levene homogeneity outcome across all groups.
type VarianceCheck struct {
	Statistic     float64 `json:"statistic"`
	PValue        float64 `json:"p_value"`
	EqualVariance bool    `json:"equal_variance"`
}

// AssumptionReport records the assumption checks and the test they
// recommend. The recommendation is informational; the executed test
// is always rank-based for this dataset (known non-normal).
type AssumptionReport struct {
	Normality       map[string]NormalityCheck `json:"normality"`
	AllGroupsNormal bool                      `json:"all_groups_normal"`
	Levene          *VarianceCheck            `json:"levene,omitempty"`
	RecommendedTest string                    `json:"recommended_test"`
}

// TestResult is one two-sample comparison. Produced once per
// group-pair, never mutated.
type TestResult struct {
	Test        string  `json:"test"`
	GroupA      string  `json:"group_a"`
	GroupB      string  `json:"group_b"`
	UStatistic  float64 `json:"u_statistic"`
	PValue      float64 `json:"p_value"`
	EffectSizeR float64 `json:"effect_size_r"` // rank-biserial correlation
	CohensD     float64 `json:"cohens_d"`
	Cles        float64 `json:"cles"`
	Significant bool    `json:"significant"`

	Interpretation string `json:"interpretation"`
}

// OmnibusResult is the k-sample Kruskal-Wallis outcome.
type OmnibusResult struct {
	Test        string  `json:"test"`
	Statistic   float64 `json:"statistic"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// CorrelationResult is the rank correlation between the ordinal
// pathogenicity score and the distance measurement.
type CorrelationResult struct {
	Rho            float64 `json:"rho"`
	PValue         float64 `json:"p_value"`
	Significant    bool    `json:"significant"`
	Interpretation string  `json:"interpretation"`
}

// ComparisonResult bundles everything one grouping's analysis
// produced.
type ComparisonResult struct {
	Assumptions AssumptionReport      `json:"assumptions"`
	Omnibus     *OmnibusResult        `json:"omnibus,omitempty"`
	Pairwise    map[string]TestResult `json:"pairwise"`
	Correlation *CorrelationResult    `json:"spearman_correlation,omitempty"`
}
