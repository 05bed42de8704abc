package models

import (
	"strings"

	"hnf1b/analysis/models/constants"
	"hnf1b/analysis/models/constants/pathogenicity"
)

// Variant is one canonical single-nucleotide variant record.
// Records are immutable once built; the only lifecycle is
// parsed/loaded -> grouped -> analyzed -> reported.
type Variant struct {
	Name           string                   `json:"name"` // canonical p.<Ref3><Pos><Alt3>
	Residue        int                      `json:"residue"`
	Classification constants.Classification `json:"type"`
	Color          string                   `json:"color"`

	// nil when the residue falls outside the resolved
	// structural region (residues 170-280)
	DistanceToDNA *float64 `json:"distanceToDNA"`
	// populated dynamically by the downstream distance calculator
	ClosestDNAAtom *string `json:"closestDNAAtom"`

	// derived analysis groupings
	ThreeGroup constants.PathogenicityGroup `json:"three_group,omitempty"`
	TwoGroup   constants.PathogenicityGroup `json:"two_group,omitempty"`
	Score      int                          `json:"pathogenicity_score,omitempty"`
}

// NewVariant derives the grouping fields from the classification.
func NewVariant(name string, residue int, classification constants.Classification) Variant {
	v := Variant{
		Name:           name,
		Residue:        residue,
		Classification: classification,
		Color:          pathogenicity.ColorOf(classification),
		ThreeGroup:     pathogenicity.ThreeGroupOf(classification),
		Score:          pathogenicity.ScoreOf(classification),
	}
	if two, ok := pathogenicity.TwoGroupOf(classification); ok {
		v.TwoGroup = two
	}
	return v
}

const (
	// surface-pattern buckets for the unparsed side-channel
	BucketCodingDna constants.UnparsedBucket = "cDNA notation variants (c.)"
	BucketIntronic  constants.UnparsedBucket = "Intronic variants (IVS)"
	BucketOther     constants.UnparsedBucket = "Other variants"
)

// UnparsedVariant is a curation row the extractor could not (or
// deliberately did not) convert to protein notation. Kept purely
// for human review, never fed back into the pipeline. Excluded
// termination variants carry a "(termination variant)" annotation
// in Source.
type UnparsedVariant struct {
	Source string
}

// BucketOf partitions an unparsed entry by its surface pattern.
func (u UnparsedVariant) BucketOf() constants.UnparsedBucket {
	if strings.HasPrefix(u.Source, "c.") {
		return BucketCodingDna
	}
	if strings.Contains(strings.ToUpper(u.Source), "IVS") {
		return BucketIntronic
	}
	return BucketOther
}
