package analysis

import (
	"fmt"

	"hnf1b/analysis/models/constants/pathogenicity"
	"hnf1b/analysis/models/dtos"
	"hnf1b/analysis/services/statistics"
)

// printReport writes the human-readable statistical report to
// standard output. The report is itself a specified artifact of
// the pipeline, hence plain fmt rather than the logger.
func (s *Service) printReport(
	threeGroups []statistics.Group, threeResult *dtos.ComparisonResult,
	twoGroups []statistics.Group, twoResult *dtos.ComparisonResult,
) {
	fmt.Println("\n" + divider)
	fmt.Println("STATISTICAL ANALYSIS REPORT")
	fmt.Println(divider)

	// 1. data characteristics
	fmt.Println("\n1. DATA CHARACTERISTICS")
	fmt.Println(subDivider)

	assumptions := twoResult.Assumptions
	fmt.Println("\nNormality Tests (Shapiro-Wilk):")
	for _, g := range twoGroups {
		if check, ok := assumptions.Normality[g.Name]; ok {
			fmt.Printf("  %s: p = %.4f - %s\n", g.Name, check.PValue, normalLabel(check.Normal))
		} else {
			fmt.Printf("  %s: not tested (n < 3)\n", g.Name)
		}
	}
	if assumptions.Levene != nil {
		fmt.Println("\nVariance Homogeneity (Levene's Test):")
		fmt.Printf("  p = %.4f - %s variances\n", assumptions.Levene.PValue, varianceLabel(assumptions.Levene.EqualVariance))
	}
	fmt.Printf("\nRecommended test: %s\n", assumptions.RecommendedTest)
	fmt.Println("Actual test used: Mann-Whitney U (appropriate for non-parametric data)")

	// 2. three-group analysis, when the data actually has 3 groups
	threeGroupsExist := len(threeGroups) > 2 && threeResult != nil
	if threeGroupsExist {
		fmt.Println("\n2. THREE-GROUP ANALYSIS (P/LP vs VUS vs B/LB)")
		fmt.Println(subDivider)
		s.printSummaries(threeGroups)

		if threeResult.Omnibus != nil {
			fmt.Println("\nKruskal-Wallis Test:")
			fmt.Printf("  H-statistic: %.4f\n", threeResult.Omnibus.Statistic)
			fmt.Printf("  P-value: %.4f\n", threeResult.Omnibus.PValue)
			fmt.Printf("  Result: %s\n", significanceLabel(threeResult.Omnibus.Significant))
		}

		fmt.Println("\nPairwise Comparisons (Mann-Whitney U):")
		forEachPair(threeGroups, threeResult, func(key string, pair dtos.TestResult) {
			fmt.Printf("\n  %s vs %s:\n", pair.GroupA, pair.GroupB)
			fmt.Printf("    U-statistic: %.1f\n", pair.UStatistic)
			fmt.Printf("    P-value: %.4f\n", pair.PValue)
			fmt.Printf("    Effect size (r): %.3f\n", pair.EffectSizeR)
			fmt.Printf("    Result: %s\n", significanceLabel(pair.Significant))
		})
	} else {
		fmt.Println("\n2. THREE-GROUP ANALYSIS")
		fmt.Println(subDivider)
		fmt.Println("Not applicable - only 2 groups present in PDB structure range")
		fmt.Println("(No Benign/Likely Benign variants within residues 170-280)")
	}

	// 3. two-group analysis
	sectionNum := "2"
	if threeGroupsExist {
		sectionNum = "3"
	}
	fmt.Printf("\n\n%s. TWO-GROUP ANALYSIS (P/LP vs VUS)\n", sectionNum)
	fmt.Println(subDivider)
	s.printSummaries(twoGroups)

	fmt.Println("\nMann-Whitney U Test:")
	forEachPair(twoGroups, twoResult, func(key string, pair dtos.TestResult) {
		fmt.Printf("  U-statistic: %.1f\n", pair.UStatistic)
		fmt.Printf("  P-value: %.4f\n", pair.PValue)
		fmt.Printf("  Effect size (r): %.3f\n", pair.EffectSizeR)
		fmt.Printf("  Cohen's d: %.3f\n", pair.CohensD)
		fmt.Printf("  Common Language Effect Size: %.3f\n", pair.Cles)
		fmt.Printf("  Effect size interpretation: %s\n", pair.Interpretation)
		fmt.Printf("  Result: %s at α=0.05\n", significanceLabel(pair.Significant))
	})

	if twoResult.Correlation != nil {
		corr := twoResult.Correlation
		fmt.Println("\nSpearman Rank Correlation:")
		fmt.Printf("  ρ = %.4f\n", corr.Rho)
		fmt.Printf("  P-value: %.4f\n", corr.PValue)
		fmt.Printf("  Interpretation: %s\n", corr.Interpretation)
	}

	s.printHypothesisEvaluation(twoGroups)

	fmt.Println("\n" + divider)
	fmt.Println("LIMITATIONS")
	fmt.Println(divider)
	fmt.Println("- Analysis limited to DNA-binding domain (residues 170-280)")
	fmt.Println("- Cannot assess variants in other protein domains")
	fmt.Println("- Pairwise comparisons carry no multiple-comparison correction")
	fmt.Println("- Moderate sample sizes limit statistical power")
}

func (s *Service) printSummaries(groups []statistics.Group) {
	fmt.Println("\nSummary Statistics:")
	for _, g := range groups {
		sum := s.Stats.Describe(g.Name, g.Values)
		fmt.Printf("  %s: n=%d, mean=%.2f, median=%.2f, std=%.2f, min=%.1f, max=%.1f, IQR=%.2f\n",
			sum.Group, sum.Count, sum.Mean, sum.Median, sum.Std, sum.Min, sum.Max, sum.Iqr)
	}
}

// printHypothesisEvaluation states the plain-language verdict:
// supported iff the higher-pathogenicity group sits closer to the
// DNA (lower median distance) than the comparison group.
func (s *Service) printHypothesisEvaluation(twoGroups []statistics.Group) {
	fmt.Println("\n" + divider)
	fmt.Println("HYPOTHESIS EVALUATION")
	fmt.Println(divider)
	fmt.Println("\nHypothesis: Variants closer to DNA are more likely to be pathogenic")

	var plp, vus *dtos.GroupSummary
	for _, g := range twoGroups {
		sum := s.Stats.Describe(g.Name, g.Values)
		switch g.Name {
		case string(pathogenicity.GroupPLP):
			plp = &sum
		case string(pathogenicity.GroupVUS):
			vus = &sum
		}
	}
	if plp == nil || vus == nil {
		fmt.Println("\nResult: NOT EVALUABLE (both P/LP and VUS groups required)")
		return
	}

	if plp.Median < vus.Median {
		fmt.Println("\nResult: SUPPORTED")
		fmt.Println("Explanation: P/LP variants have lower median distance to DNA than VUS")
	} else {
		fmt.Println("\nResult: NOT SUPPORTED")
		fmt.Println("Explanation: P/LP variants do not have lower median distance to DNA")
	}

	fmt.Println("\nDistance Comparisons:")
	fmt.Printf("  P/LP: median = %.2f Å, mean = %.2f Å\n", plp.Median, plp.Mean)
	fmt.Printf("  VUS:  median = %.2f Å, mean = %.2f Å\n", vus.Median, vus.Mean)
	fmt.Printf("  Difference in medians: %.2f Å\n", vus.Median-plp.Median)
	fmt.Printf("  Difference in means: %.2f Å\n", vus.Mean-plp.Mean)
}

// forEachPair visits the pairwise results in the groups' display
// order rather than map order, keeping reports reproducible.
func forEachPair(groups []statistics.Group, result *dtos.ComparisonResult, visit func(key string, pair dtos.TestResult)) {
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			key := fmt.Sprintf("%s_vs_%s", groups[i].Name, groups[j].Name)
			if pair, ok := result.Pairwise[key]; ok {
				visit(key, pair)
			}
		}
	}
}

func normalLabel(normal bool) string {
	if normal {
		return "Normal"
	}
	return "NOT Normal"
}

func varianceLabel(equal bool) string {
	if equal {
		return "Equal"
	}
	return "UNEQUAL"
}

func significanceLabel(significant bool) string {
	if significant {
		return "SIGNIFICANT"
	}
	return "Not significant"
}
