package variantdata

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"

	"hnf1b/analysis/models"
	"hnf1b/analysis/models/constants"
	"hnf1b/analysis/models/constants/pathogenicity"
	"hnf1b/analysis/utils"
)

// distanceRecord mirrors one entry of the variant-distances JSON
// file produced by the structure-distance calculator.
type distanceRecord struct {
	Name          string   `mapstructure:"name"`
	Residue       int      `mapstructure:"residue"`
	Pathogenicity string   `mapstructure:"pathogenicity"`
	DistanceToDNA *float64 `mapstructure:"distance_to_dna"`
}

// LoadDistances reads the variant-distances JSON wholesale and
// rebuilds full variant records (grouping columns included).
// Malformed input is fatal to the analyzer run.
func LoadDistances(cfg *models.Config) ([]models.Variant, error) {
	path := cfg.Analysis.DistancesJsonPath

	bytes, err := utils.ReadFileBytes(path)
	if err != nil {
		return nil, err
	}

	var rawRecords []map[string]interface{}
	if err := json.Unmarshal(bytes, &rawRecords); err != nil {
		return nil, fmt.Errorf("variant distances %s: %w", path, err)
	}

	variants := make([]models.Variant, 0, len(rawRecords))
	for i, raw := range rawRecords {
		var record distanceRecord
		if err := mapstructure.Decode(raw, &record); err != nil {
			return nil, fmt.Errorf("variant distances %s: record %d: %w", path, i, err)
		}

		classification := pathogenicity.CastToClassification(record.Pathogenicity)
		variant := models.NewVariant(record.Name, record.Residue, classification)
		variant.DistanceToDNA = record.DistanceToDNA

		variants = append(variants, variant)
	}

	return variants, nil
}

// WriteVariantsTable generates the variants source-data listing
// consumed by the structure viewer, plus the commented section of
// unparsed entries grouped by surface pattern.
func WriteVariantsTable(cfg *models.Config, runId string, variants []models.Variant, unparsed []models.UnparsedVariant) error {
	doc := gabs.New()
	doc.Array("variants")
	for _, v := range variants {
		entry := map[string]interface{}{
			"name":    v.Name,
			"residue": v.Residue,
			"type":    string(v.Classification),
			"color":   v.Color,
			// populated dynamically by the distance calculator
			"distanceToDNA":  nil,
			"closestDNAAtom": nil,
		}
		doc.ArrayAppend(entry, "variants")
	}

	var sb strings.Builder
	sb.WriteString("// Variant data configuration\n")
	sb.WriteString("// Note: distanceToDNA and closestDNAAtom will be populated dynamically by DistanceCalculator\n")
	sb.WriteString(fmt.Sprintf("// Generated by extract-variants run %s\n", runId))
	sb.WriteString("export const variants = ")
	sb.WriteString(doc.Path("variants").StringIndent("", "    "))
	sb.WriteString(";\n")

	if len(unparsed) > 0 {
		sb.WriteString("\n// UNPARSED VARIANTS FROM CSV\n")
		sb.WriteString("// These variants could not be automatically converted to protein notation (p. format)\n")
		sb.WriteString("// They are preserved here for reference and potential manual conversion\n")
		sb.WriteString(fmt.Sprintf("// Total unparsed: %d\n", len(unparsed)))
		sb.WriteString("/*\nconst unparsedVariants = [\n")

		buckets := PartitionUnparsed(unparsed)
		for _, bucket := range []constants.UnparsedBucket{
			models.BucketCodingDna, models.BucketIntronic, models.BucketOther,
		} {
			entries := buckets[bucket]
			if len(entries) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("  // %s\n", bucket))
			for _, entry := range entries {
				sb.WriteString(fmt.Sprintf("  '%s',\n", entry))
			}
		}

		sb.WriteString("];\n*/\n")
	}

	return utils.WriteFileString(cfg.Extraction.VariantsJsPath, sb.String())
}

// PartitionUnparsed groups the unparsed side-channel by surface
// pattern, each bucket sorted for stable human review.
func PartitionUnparsed(unparsed []models.UnparsedVariant) map[constants.UnparsedBucket][]string {
	buckets := map[constants.UnparsedBucket][]string{}
	for _, u := range unparsed {
		bucket := u.BucketOf()
		buckets[bucket] = append(buckets[bucket], u.Source)
	}
	for _, entries := range buckets {
		sort.Strings(entries)
	}
	return buckets
}

// WriteProcessedCSV mirrors the analyzer's input records with the
// derived group-label and score columns added.
func WriteProcessedCSV(cfg *models.Config, variants []models.Variant) error {
	path := cfg.Analysis.ProcessedCsvPath
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("processed csv %s: %w", path, err)
	}
	defer fh.Close()

	writer := csv.NewWriter(fh)
	header := []string{
		"name", "residue", "pathogenicity", "distance_to_dna",
		"three_group", "two_group", "pathogenicity_score",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("processed csv %s: %w", path, err)
	}

	for _, v := range variants {
		distance := ""
		if v.DistanceToDNA != nil {
			distance = strconv.FormatFloat(*v.DistanceToDNA, 'f', -1, 64)
		}
		record := []string{
			v.Name,
			strconv.Itoa(v.Residue),
			string(v.Classification),
			distance,
			string(v.ThreeGroup),
			string(v.TwoGroup),
			strconv.Itoa(v.Score),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("processed csv %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("processed csv %s: %w", path, err)
	}
	return nil
}
