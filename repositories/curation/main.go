package curation

import (
	"encoding/csv"
	"fmt"
	"os"

	"hnf1b/analysis/models"
	"hnf1b/analysis/utils"
)

// column headers of the curation spreadsheet export
const (
	ColumnVariantType     = "VariantType"
	ColumnVarsome         = "Varsome"
	ColumnVariantReported = "VariantReported"
	ColumnVerdict         = "verdict_classification"
)

// Row is one individual's record from the curation spreadsheet.
// Only the columns the extractor consumes are carried.
type Row struct {
	VariantType     string
	Varsome         string
	VariantReported string
	Verdict         string
}

// LoadRows reads the whole curation CSV. The header row keys the
// columns; rows shorter than the header are tolerated (spreadsheet
// exports trim trailing empty cells).
func LoadRows(cfg *models.Config) ([]Row, error) {
	path := cfg.Extraction.CurationCsvPath

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curation csv %s: %w", path, err)
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("curation csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("curation csv %s: empty file", path)
	}

	// - map header names to column indexes
	header := records[0]
	columnIndex := map[string]int{}
	for i, name := range header {
		if i == 0 {
			name = utils.TrimBom(name)
		}
		columnIndex[name] = i
	}
	if _, ok := columnIndex[ColumnVariantType]; !ok {
		return nil, fmt.Errorf("curation csv %s: missing column %s", path, ColumnVariantType)
	}

	cell := func(record []string, column string) string {
		i, ok := columnIndex[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for _, record := range records[1:] {
		rows = append(rows, Row{
			VariantType:     cell(record, ColumnVariantType),
			Varsome:         cell(record, ColumnVarsome),
			VariantReported: cell(record, ColumnVariantReported),
			Verdict:         cell(record, ColumnVerdict),
		})
	}

	return rows, nil
}
