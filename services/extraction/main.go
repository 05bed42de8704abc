package extraction

import (
	"fmt"
	"sort"

	linq "github.com/ahmetb/go-linq"
	"go.uber.org/zap"

	"hnf1b/analysis/models"
	"hnf1b/analysis/models/constants"
	"hnf1b/analysis/models/constants/pathogenicity"
	"hnf1b/analysis/repositories/curation"
	"hnf1b/analysis/repositories/variantdata"
	"hnf1b/analysis/services/nomenclature"
)

// variant type literal the extractor keeps ; everything else in
// the curation sheet (CNVs, indels, ...) is out of scope
const variantTypeSnv = "SNV"

type (
	Service struct {
		Config *models.Config
		logger *zap.Logger
	}
)

func NewService(cfg *models.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Config: cfg, logger: logger}
}

// ExtractVariants converts curation rows into the deduplicated,
// residue-ordered variant table plus the unparsed side-channel.
func (s *Service) ExtractVariants(rows []curation.Row) ([]models.Variant, []models.UnparsedVariant) {
	var variants []models.Variant
	var unparsed []models.UnparsedVariant
	seen := map[string]bool{}

	for _, row := range rows {
		if row.VariantType != variantTypeSnv {
			continue
		}

		// Varsome is the primary annotation source ; fall back to
		// the free-text VariantReported column only when it is empty
		source := row.Varsome
		if source == "" {
			source = row.VariantReported
		}
		if source == "" {
			// nothing to parse, skipped silently
			continue
		}

		outcome := nomenclature.Parse(source)
		if !outcome.Parsed {
			unparsed = append(unparsed, models.UnparsedVariant{Source: source})
			continue
		}

		// first occurrence wins
		name := outcome.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		// Termination variants are excluded from the output set:
		// assumed subject to nonsense-mediated decay, so the
		// protein-level substitution never exists to map onto the
		// structure. Logged for review instead.
		if outcome.IsTermination() {
			unparsed = append(unparsed, models.UnparsedVariant{
				Source: fmt.Sprintf("%s (termination variant)", name),
			})
			continue
		}

		classification := pathogenicity.CastToClassification(row.Verdict)
		variants = append(variants, models.NewVariant(name, outcome.Residue, classification))
	}

	// ascending residue, input order preserved on ties
	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].Residue < variants[j].Residue
	})

	return variants, unparsed
}

// Run executes the whole extraction pipeline: curation CSV in,
// variants table + unparsed listing out, summary on stdout.
func (s *Service) Run(runId string) error {
	fmt.Println("Extracting SNV variants from CSV...")

	rows, err := curation.LoadRows(s.Config)
	if err != nil {
		return err
	}
	s.logger.Info("curation rows loaded",
		zap.Int("rows", len(rows)),
		zap.String("path", s.Config.Extraction.CurationCsvPath))

	variants, unparsed := s.ExtractVariants(rows)

	fmt.Printf("Found %d unique SNV variants\n", len(variants))
	if len(unparsed) > 0 {
		fmt.Printf("\nFound %d SNV variants that couldn't be parsed:\n", len(unparsed))
		for i, u := range unparsed {
			if i == 10 {
				fmt.Printf("  ... and %d more\n", len(unparsed)-10)
				break
			}
			fmt.Printf("  - %s\n", u.Source)
		}
	}

	if err := variantdata.WriteVariantsTable(s.Config, runId, variants, unparsed); err != nil {
		return err
	}
	fmt.Printf("\nSuccessfully wrote %d variants to %s\n", len(variants), s.Config.Extraction.VariantsJsPath)

	s.printClassificationSummary(variants)
	return nil
}

func (s *Service) printClassificationSummary(variants []models.Variant) {
	countOf := func(c constants.Classification) int {
		return linq.From(variants).CountWithT(func(v models.Variant) bool {
			return v.Classification == c
		})
	}

	fmt.Println("\nVariant classification summary:")
	fmt.Printf("  Pathogenic: %d\n", countOf(pathogenicity.Pathogenic))
	fmt.Printf("  Likely Pathogenic: %d\n", countOf(pathogenicity.LikelyPathogenic))
	fmt.Printf("  Benign: %d\n", countOf(pathogenicity.Benign))
	fmt.Printf("  Likely Benign: %d\n", countOf(pathogenicity.LikelyBenign))
	fmt.Printf("  Uncertain Significance: %d\n", countOf(pathogenicity.UncertainSignificance))
}
