package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hnf1b/analysis/models/constants/pathogenicity"
)

func TestNewVariant(t *testing.T) {
	t.Run("should derive all presentation and grouping fields", func(t *testing.T) {
		v := NewVariant("p.Arg177Gln", 177, pathogenicity.Pathogenic)

		assert.Equal(t, "p.Arg177Gln", v.Name)
		assert.Equal(t, 177, v.Residue)
		assert.Equal(t, "red", v.Color)
		assert.Equal(t, pathogenicity.GroupPLP, v.ThreeGroup)
		assert.Equal(t, pathogenicity.GroupPLP, v.TwoGroup)
		assert.Equal(t, 5, v.Score)
		assert.Nil(t, v.DistanceToDNA)
	})

	t.Run("should leave the two-group field empty for benign variants", func(t *testing.T) {
		v := NewVariant("p.Ala311Ser", 311, pathogenicity.Benign)

		assert.Equal(t, pathogenicity.GroupBLB, v.ThreeGroup)
		assert.Empty(t, v.TwoGroup)
		assert.Equal(t, 1, v.Score)
		assert.Equal(t, "green", v.Color)
	})
}

func TestUnparsedBucketOf(t *testing.T) {
	t.Run("should bucket coding-sequence notation", func(t *testing.T) {
		assert.Equal(t, BucketCodingDna, UnparsedVariant{Source: "c.344+2T>C"}.BucketOf())
	})

	t.Run("should bucket intronic notation case-insensitively", func(t *testing.T) {
		assert.Equal(t, BucketIntronic, UnparsedVariant{Source: "IVS2+1G>A"}.BucketOf())
		assert.Equal(t, BucketIntronic, UnparsedVariant{Source: "ivs4-2a>g"}.BucketOf())
	})

	t.Run("should bucket everything else as other", func(t *testing.T) {
		assert.Equal(t, BucketOther, UnparsedVariant{Source: "p.Arg137Ter (termination variant)"}.BucketOf())
		assert.Equal(t, BucketOther, UnparsedVariant{Source: "exon 4 splice site"}.BucketOf())
	})
}
