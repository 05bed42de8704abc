package analysis

import (
	"fmt"
	"strings"

	linq "github.com/ahmetb/go-linq"
	"go.uber.org/zap"

	"hnf1b/analysis/models"
	"hnf1b/analysis/models/constants"
	"hnf1b/analysis/models/constants/pathogenicity"
	"hnf1b/analysis/models/dtos"
	"hnf1b/analysis/repositories/variantdata"
	"hnf1b/analysis/services/plotting"
	"hnf1b/analysis/services/statistics"
)

/*
	Orchestrates the variant-distance analysis: load once, group by
	pathogenicity, compute descriptive statistics, run the
	assumption checks and rank-based comparisons, render the figure
	and the processed table, print the report. Single-threaded
	batch, no state survives the run.
*/

var divider = strings.Repeat("=", 70)
var subDivider = strings.Repeat("-", 50)

// display order of the collapsed pathogenicity groups
var groupOrder = []constants.PathogenicityGroup{
	pathogenicity.GroupPLP,
	pathogenicity.GroupVUS,
	pathogenicity.GroupBLB,
}

type (
	Service struct {
		Config *models.Config
		Stats  *statistics.Service
		logger *zap.Logger
	}
)

func NewService(cfg *models.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Config: cfg,
		Stats:  statistics.NewService(logger),
		logger: logger,
	}
}

// Run executes the whole analysis pipeline.
func (s *Service) Run() error {
	fmt.Println("\n" + divider)
	fmt.Println("HNF1B VARIANT DISTANCE ANALYSIS")
	fmt.Println("Analyzing pathogenicity vs distance to DNA in DNA-binding domain")
	fmt.Println(divider)

	allVariants, err := variantdata.LoadDistances(s.Config)
	if err != nil {
		// the analyzer assumes well-formed input ; loading faults abort the run
		return err
	}

	measured := s.filterMeasured(allVariants)
	s.printLoadingSummary(allVariants, measured)

	threeGroups := GroupByThree(measured)
	twoGroups := GroupByTwo(measured)

	var threeResult *dtos.ComparisonResult
	if len(threeGroups) > 2 {
		if threeResult, err = s.Stats.Compare(threeGroups); err != nil {
			return err
		}
	}

	twoResult, err := s.Stats.Compare(twoGroups)
	if err != nil {
		return err
	}

	// rank correlation between the ordinal score and the distance
	scores, distances := scorePairs(measured)
	correlation, err := s.Stats.ScoreCorrelation(scores, distances)
	if err != nil {
		return err
	}
	twoResult.Correlation = correlation

	if err := plotting.RenderFigure(s.Config.Analysis.FigurePath, twoGroups, twoResult); err != nil {
		return err
	}
	fmt.Printf("\nFigure saved as '%s'\n", s.Config.Analysis.FigurePath)

	s.printReport(threeGroups, threeResult, twoGroups, twoResult)

	if err := variantdata.WriteProcessedCSV(s.Config, measured); err != nil {
		return err
	}
	fmt.Printf("\nProcessed data saved to '%s'\n", s.Config.Analysis.ProcessedCsvPath)

	fmt.Println("\n" + divider)
	fmt.Println("ANALYSIS COMPLETE")
	fmt.Println(divider)

	return nil
}

// filterMeasured keeps variants with a resolved distance (those
// inside the crystal structure).
func (s *Service) filterMeasured(variants []models.Variant) []models.Variant {
	var measured []models.Variant
	linq.From(variants).WhereT(func(v models.Variant) bool {
		return v.DistanceToDNA != nil
	}).ToSlice(&measured)
	return measured
}

func (s *Service) printLoadingSummary(all, measured []models.Variant) {
	fmt.Println("DATA LOADING SUMMARY")
	fmt.Println(divider)
	fmt.Printf("Total variants in dataset: %d\n", len(all))
	fmt.Printf("Variants within PDB structure (residues 170-280): %d\n", len(measured))
	fmt.Printf("Variants excluded (outside structure): %d\n", len(all)-len(measured))

	excludedCounts := map[constants.Classification]int{}
	for _, v := range all {
		if v.DistanceToDNA == nil {
			excludedCounts[v.Classification]++
		}
	}
	if len(excludedCounts) > 0 {
		fmt.Println("\nExcluded variants by pathogenicity:")
		for _, c := range []constants.Classification{
			pathogenicity.Pathogenic, pathogenicity.LikelyPathogenic,
			pathogenicity.UncertainSignificance,
			pathogenicity.LikelyBenign, pathogenicity.Benign,
		} {
			if excludedCounts[c] > 0 {
				fmt.Printf("  %s: %d\n", c, excludedCounts[c])
			}
		}
	}

	fmt.Printf("\nGroups present in data: ")
	var present []string
	for _, g := range GroupByThree(measured) {
		present = append(present, g.Name)
	}
	fmt.Println(strings.Join(present, ", "))
	for _, g := range GroupByThree(measured) {
		fmt.Printf("  %s: %d variants\n", g.Name, len(g.Values))
	}
}

// GroupByThree partitions measured distances by the three-way
// collapse, omitting empty groups, in display order.
func GroupByThree(variants []models.Variant) []statistics.Group {
	return groupBy(variants, func(v models.Variant) constants.PathogenicityGroup {
		return v.ThreeGroup
	})
}

// GroupByTwo partitions by the two-way collapse (P/LP vs VUS),
// dropping B/LB variants.
func GroupByTwo(variants []models.Variant) []statistics.Group {
	return groupBy(variants, func(v models.Variant) constants.PathogenicityGroup {
		return v.TwoGroup
	})
}

func groupBy(variants []models.Variant, key func(models.Variant) constants.PathogenicityGroup) []statistics.Group {
	byGroup := map[constants.PathogenicityGroup][]float64{}
	for _, v := range variants {
		g := key(v)
		if g == "" || v.DistanceToDNA == nil {
			continue
		}
		byGroup[g] = append(byGroup[g], *v.DistanceToDNA)
	}

	var groups []statistics.Group
	for _, g := range groupOrder {
		if values, ok := byGroup[g]; ok {
			groups = append(groups, statistics.Group{Name: string(g), Values: values})
		}
	}
	return groups
}

func scorePairs(variants []models.Variant) (scores, distances []float64) {
	for _, v := range variants {
		if v.DistanceToDNA == nil {
			continue
		}
		scores = append(scores, float64(v.Score))
		distances = append(distances, *v.DistanceToDNA)
	}
	return scores, distances
}
