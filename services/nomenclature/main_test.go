package nomenclature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aminoAcid "hnf1b/analysis/models/constants/amino-acid"
)

func TestParse(t *testing.T) {
	t.Run("should extract the parenthesized three-letter notation from a full annotation", func(t *testing.T) {
		outcome := Parse("HNF1B(NM_000458.4):c.544C>T (p.Arg182Trp)")

		require.True(t, outcome.Parsed)
		assert.Equal(t, "p.Arg182Trp", outcome.Name())
		assert.Equal(t, 182, outcome.Residue)
		assert.False(t, outcome.IsTermination())
	})

	t.Run("should convert single-letter notation to three-letter codes", func(t *testing.T) {
		outcome := Parse("p.R177Q")

		require.True(t, outcome.Parsed)
		assert.Equal(t, "p.Arg177Gln", outcome.Name())
	})

	t.Run("should resolve a single-letter stop to a termination variant", func(t *testing.T) {
		outcome := Parse("p.R137*")

		require.True(t, outcome.Parsed)
		assert.Equal(t, "p.Arg137Ter", outcome.Name())
		assert.True(t, outcome.IsTermination())
	})

	t.Run("should resolve X to the stop symbol in three-letter notation", func(t *testing.T) {
		outcome := Parse("p.Gln253X")

		require.True(t, outcome.Parsed)
		assert.Equal(t, aminoAcid.Ter, outcome.Alt)
		assert.True(t, outcome.IsTermination())
	})

	t.Run("should be stable on its own canonical output", func(t *testing.T) {
		first := Parse("NM_000458.4:c.529T>C (p.S177P)")
		require.True(t, first.Parsed)

		second := Parse(first.Name())
		require.True(t, second.Parsed)
		assert.Equal(t, first.Name(), second.Name())
	})

	t.Run("should prefer the parenthesized protein notation over other matches", func(t *testing.T) {
		outcome := Parse("c.826C>T (p.Arg276Gly)")

		require.True(t, outcome.Parsed)
		assert.Equal(t, "p.Arg276Gly", outcome.Name())
	})

	t.Run("should not mistake a coding-sequence change for a protein change", func(t *testing.T) {
		outcome := Parse("c.232G>T")

		assert.False(t, outcome.Parsed)
		assert.Equal(t, ReasonNoMatch, outcome.Reason)
	})

	t.Run("should not mistake a bare nucleotide substitution for a protein change", func(t *testing.T) {
		// G123T reads as a protein pattern but both symbols are nucleotides
		outcome := Parse("deletion G123T observed")

		assert.False(t, outcome.Parsed)
	})

	t.Run("should fall back to bare single-letter notation", func(t *testing.T) {
		outcome := Parse("R165H")

		require.True(t, outcome.Parsed)
		assert.Equal(t, "p.Arg165His", outcome.Name())
	})

	t.Run("should reject unknown residue codes", func(t *testing.T) {
		outcome := Parse("p.B123Z")

		assert.False(t, outcome.Parsed)
		assert.Equal(t, ReasonInvalidResidue, outcome.Reason)
	})

	t.Run("should report empty and unrelated text as unmatched", func(t *testing.T) {
		for _, text := range []string{"", "whole gene deletion", "17q12 microdeletion"} {
			outcome := Parse(text)

			assert.False(t, outcome.Parsed, "input %q", text)
			assert.Equal(t, ReasonNoMatch, outcome.Reason)
		}
	})
}
