package pathogenicity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastToClassification(t *testing.T) {
	t.Run("should pass known verdicts through", func(t *testing.T) {
		assert.Equal(t, Pathogenic, CastToClassification("Pathogenic"))
		assert.Equal(t, LikelyPathogenic, CastToClassification("Likely Pathogenic"))
		assert.Equal(t, Benign, CastToClassification("Benign"))
		assert.Equal(t, LikelyBenign, CastToClassification("Likely Benign"))
	})

	t.Run("should default unknown verdicts to uncertain significance", func(t *testing.T) {
		assert.Equal(t, UncertainSignificance, CastToClassification(""))
		assert.Equal(t, UncertainSignificance, CastToClassification("conflicting"))
		assert.Equal(t, UncertainSignificance, CastToClassification("pathogenic")) // case sensitive
	})
}

func TestIsKnownClassification(t *testing.T) {
	t.Run("should accept the five ACMG terms only", func(t *testing.T) {
		assert.True(t, IsKnownClassification("Pathogenic"))
		assert.True(t, IsKnownClassification("Uncertain Significance"))
		assert.False(t, IsKnownClassification("VUS"))
		assert.False(t, IsKnownClassification(""))
	})
}

func TestGroupCollapse(t *testing.T) {
	t.Run("should collapse into the three analysis buckets", func(t *testing.T) {
		assert.Equal(t, GroupPLP, ThreeGroupOf(Pathogenic))
		assert.Equal(t, GroupPLP, ThreeGroupOf(LikelyPathogenic))
		assert.Equal(t, GroupVUS, ThreeGroupOf(UncertainSignificance))
		assert.Equal(t, GroupBLB, ThreeGroupOf(LikelyBenign))
		assert.Equal(t, GroupBLB, ThreeGroupOf(Benign))
	})

	t.Run("should exclude benign variants from the two-group comparison", func(t *testing.T) {
		group, ok := TwoGroupOf(Pathogenic)
		assert.True(t, ok)
		assert.Equal(t, GroupPLP, group)

		group, ok = TwoGroupOf(UncertainSignificance)
		assert.True(t, ok)
		assert.Equal(t, GroupVUS, group)

		_, ok = TwoGroupOf(Benign)
		assert.False(t, ok)
		_, ok = TwoGroupOf(LikelyBenign)
		assert.False(t, ok)
	})
}

func TestScoreOf(t *testing.T) {
	t.Run("should order scores by pathogenicity", func(t *testing.T) {
		assert.Equal(t, 5, ScoreOf(Pathogenic))
		assert.Equal(t, 4, ScoreOf(LikelyPathogenic))
		assert.Equal(t, 3, ScoreOf(UncertainSignificance))
		assert.Equal(t, 2, ScoreOf(LikelyBenign))
		assert.Equal(t, 1, ScoreOf(Benign))
	})
}
