package pathogenicity

import (
	"hnf1b/analysis/models/constants"
)

const (
	Pathogenic            constants.Classification = "Pathogenic"
	LikelyPathogenic      constants.Classification = "Likely Pathogenic"
	UncertainSignificance constants.Classification = "Uncertain Significance"
	LikelyBenign          constants.Classification = "Likely Benign"
	Benign                constants.Classification = "Benign"
)

const (
	GroupPLP constants.PathogenicityGroup = "P/LP"
	GroupVUS constants.PathogenicityGroup = "VUS"
	GroupBLB constants.PathogenicityGroup = "B/LB"
)

// Default is assumed when a curation row carries no verdict at all
const Default = UncertainSignificance

func CastToClassification(text string) constants.Classification {
	switch text {
	case string(Pathogenic):
		return Pathogenic
	case string(LikelyPathogenic):
		return LikelyPathogenic
	case string(Benign):
		return Benign
	case string(LikelyBenign):
		return LikelyBenign
	default:
		// Uncertain Significance or unknown
		return UncertainSignificance
	}
}

func IsKnownClassification(text string) bool {
	switch text {
	case string(Pathogenic), string(LikelyPathogenic),
		string(UncertainSignificance), string(LikelyBenign), string(Benign):
		return true
	}
	return false
}

// ColorOf maps a classification to its display color
// used by the structure viewer downstream.
func ColorOf(c constants.Classification) string {
	switch c {
	case Pathogenic:
		return "red"
	case LikelyPathogenic:
		return "orange"
	case Benign:
		return "green"
	case LikelyBenign:
		return "#f5d547"
	default:
		return "grey"
	}
}

// ScoreOf maps a classification to the ordinal pathogenicity
// score (Benign=1 .. Pathogenic=5) used for correlation only,
// never for grouping.
func ScoreOf(c constants.Classification) int {
	switch c {
	case Pathogenic:
		return 5
	case LikelyPathogenic:
		return 4
	case UncertainSignificance:
		return 3
	case LikelyBenign:
		return 2
	case Benign:
		return 1
	default:
		return 3
	}
}

// ThreeGroupOf collapses the five classifications into the
// three analysis buckets.
func ThreeGroupOf(c constants.Classification) constants.PathogenicityGroup {
	switch c {
	case Pathogenic, LikelyPathogenic:
		return GroupPLP
	case Benign, LikelyBenign:
		return GroupBLB
	default:
		return GroupVUS
	}
}

// TwoGroupOf keeps only the buckets that take part in the
// two-group comparison. The second return value is false for
// classifications outside of it (B/LB).
func TwoGroupOf(c constants.Classification) (constants.PathogenicityGroup, bool) {
	g := ThreeGroupOf(c)
	if g == GroupPLP || g == GroupVUS {
		return g, true
	}
	return "", false
}
