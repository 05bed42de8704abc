package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnf1b/analysis/models"
	"hnf1b/analysis/models/constants/pathogenicity"
	"hnf1b/analysis/utils"
)

func measuredVariant(name string, residue int, verdict string, distance float64) models.Variant {
	v := models.NewVariant(name, residue, pathogenicity.CastToClassification(verdict))
	v.DistanceToDNA = utils.Float64Ptr(distance)
	return v
}

func TestGrouping(t *testing.T) {
	variants := []models.Variant{
		measuredVariant("p.Arg177Gln", 177, "Pathogenic", 1.6),
		measuredVariant("p.Ser178Pro", 178, "Likely Pathogenic", 2.1),
		measuredVariant("p.His153Asn", 153, "Uncertain Significance", 8.3),
		measuredVariant("p.Ala241Thr", 241, "Likely Benign", 12.4),
		models.NewVariant("p.Gly319Ser", 319, pathogenicity.UncertainSignificance), // no distance
	}

	t.Run("should collapse into three groups in display order", func(t *testing.T) {
		groups := GroupByThree(variants)

		require.Len(t, groups, 3)
		assert.Equal(t, "P/LP", groups[0].Name)
		assert.Equal(t, []float64{1.6, 2.1}, groups[0].Values)
		assert.Equal(t, "VUS", groups[1].Name)
		assert.Equal(t, []float64{8.3}, groups[1].Values)
		assert.Equal(t, "B/LB", groups[2].Name)
		assert.Equal(t, []float64{12.4}, groups[2].Values)
	})

	t.Run("should drop benign variants from the two-group collapse", func(t *testing.T) {
		groups := GroupByTwo(variants)

		require.Len(t, groups, 2)
		assert.Equal(t, "P/LP", groups[0].Name)
		assert.Equal(t, "VUS", groups[1].Name)
		for _, g := range groups {
			assert.NotContains(t, g.Values, 12.4)
		}
	})

	t.Run("should omit empty groups entirely", func(t *testing.T) {
		groups := GroupByThree([]models.Variant{
			measuredVariant("p.Arg177Gln", 177, "Pathogenic", 1.6),
		})

		require.Len(t, groups, 1)
		assert.Equal(t, "P/LP", groups[0].Name)
	})
}

func TestScorePairs(t *testing.T) {
	t.Run("should pair scores with distances, skipping unmeasured variants", func(t *testing.T) {
		variants := []models.Variant{
			measuredVariant("p.Arg177Gln", 177, "Pathogenic", 1.6),
			measuredVariant("p.His153Asn", 153, "Uncertain Significance", 8.3),
			models.NewVariant("p.Gly319Ser", 319, pathogenicity.UncertainSignificance),
		}

		scores, distances := scorePairs(variants)

		assert.Equal(t, []float64{5, 3}, scores)
		assert.Equal(t, []float64{1.6, 8.3}, distances)
	})
}

func TestRun(t *testing.T) {
	t.Run("should run the whole pipeline over a distance file", func(t *testing.T) {
		dir := t.TempDir()

		records := `[
			{"name": "p.Arg165His", "residue": 165, "pathogenicity": "Pathogenic", "distance_to_dna": 1.51},
			{"name": "p.Arg177Gln", "residue": 177, "pathogenicity": "Pathogenic", "distance_to_dna": 1.58},
			{"name": "p.Ser178Pro", "residue": 178, "pathogenicity": "Likely Pathogenic", "distance_to_dna": 2.07},
			{"name": "p.Arg182Trp", "residue": 182, "pathogenicity": "Likely Pathogenic", "distance_to_dna": 2.63},
			{"name": "p.Gln253Pro", "residue": 253, "pathogenicity": "Pathogenic", "distance_to_dna": 3.47},
			{"name": "p.His153Asn", "residue": 153, "pathogenicity": "Uncertain Significance", "distance_to_dna": 7.64},
			{"name": "p.Ala174Val", "residue": 174, "pathogenicity": "Uncertain Significance", "distance_to_dna": 8.3},
			{"name": "p.Thr196Ile", "residue": 196, "pathogenicity": "Uncertain Significance", "distance_to_dna": 9.26},
			{"name": "p.Leu207Phe", "residue": 207, "pathogenicity": "Uncertain Significance", "distance_to_dna": 10.59},
			{"name": "p.Val219Met", "residue": 219, "pathogenicity": "Uncertain Significance", "distance_to_dna": 12.53},
			{"name": "p.Gly319Ser", "residue": 319, "pathogenicity": "Uncertain Significance", "distance_to_dna": null}
		]`
		distancesPath := filepath.Join(dir, "variant-distances.json")
		require.NoError(t, os.WriteFile(distancesPath, []byte(records), 0644))

		cfg := &models.Config{}
		cfg.Analysis.DistancesJsonPath = distancesPath
		cfg.Analysis.FigurePath = filepath.Join(dir, "output", "figure.png")
		cfg.Analysis.ProcessedCsvPath = filepath.Join(dir, "output", "processed.csv")

		err := NewService(cfg, nil).Run()

		require.NoError(t, err)

		figure, err := os.Stat(cfg.Analysis.FigurePath)
		require.NoError(t, err)
		assert.Greater(t, figure.Size(), int64(0))

		body, err := utils.ReadFileBytes(cfg.Analysis.ProcessedCsvPath)
		require.NoError(t, err)
		content := string(body)
		assert.Contains(t, content, "p.Arg177Gln,177,Pathogenic,1.58,P/LP,P/LP,5")
		// the unmeasured variant is excluded from the processed table
		assert.NotContains(t, content, "p.Gly319Ser")
	})

	t.Run("should fail when the distance file is missing", func(t *testing.T) {
		cfg := &models.Config{}
		cfg.Analysis.DistancesJsonPath = filepath.Join(t.TempDir(), "absent.json")

		err := NewService(cfg, nil).Run()

		assert.Error(t, err)
	})

	t.Run("should fail when a comparison group is missing", func(t *testing.T) {
		dir := t.TempDir()

		var records string
		records = `[`
		for i := 0; i < 4; i++ {
			if i > 0 {
				records += ","
			}
			records += fmt.Sprintf(
				`{"name": "p.Arg%dGln", "residue": %d, "pathogenicity": "Pathogenic", "distance_to_dna": %.1f}`,
				170+i, 170+i, 1.5+float64(i))
		}
		records += `]`
		distancesPath := filepath.Join(dir, "variant-distances.json")
		require.NoError(t, os.WriteFile(distancesPath, []byte(records), 0644))

		cfg := &models.Config{}
		cfg.Analysis.DistancesJsonPath = distancesPath
		cfg.Analysis.FigurePath = filepath.Join(dir, "figure.png")
		cfg.Analysis.ProcessedCsvPath = filepath.Join(dir, "processed.csv")

		err := NewService(cfg, nil).Run()

		assert.ErrorContains(t, err, "insufficient data")
	})
}
