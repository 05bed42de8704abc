package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to the built-in defaults", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "data/HNF1B_DataCuration - Individuals.csv", cfg.Extraction.CurationCsvPath)
		assert.Equal(t, "js/variants.js", cfg.Extraction.VariantsJsPath)
		assert.Equal(t, "data/variant-distances.json", cfg.Analysis.DistancesJsonPath)
		assert.Equal(t, "output/variant-distance-analysis.png", cfg.Analysis.FigurePath)
		assert.Equal(t, "output/variant-distance-processed.csv", cfg.Analysis.ProcessedCsvPath)
		assert.False(t, cfg.Debug)
	})

	t.Run("should apply environment overrides on top of defaults", func(t *testing.T) {
		t.Setenv("HNF1B_DEBUG", "true")
		t.Setenv("HNF1B_CURATION_CSV_PATH", "/tmp/rows.csv")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "/tmp/rows.csv", cfg.Extraction.CurationCsvPath)
		// untouched fields keep their defaults
		assert.Equal(t, "js/variants.js", cfg.Extraction.VariantsJsPath)
	})

	t.Run("should layer an optional yaml file between defaults and environment", func(t *testing.T) {
		yamlPath := filepath.Join(t.TempDir(), "config.yml")
		yamlBody := "debug: true\n" +
			"analysis:\n" +
			"  figure_path: yaml/figure.png\n" +
			"  processed_csv_path: yaml/processed.csv\n"
		require.NoError(t, os.WriteFile(yamlPath, []byte(yamlBody), 0644))

		t.Setenv("HNF1B_CONFIG_YML", yamlPath)
		t.Setenv("HNF1B_PROCESSED_CSV_PATH", "env/processed.csv")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "yaml/figure.png", cfg.Analysis.FigurePath)
		// environment wins over yaml
		assert.Equal(t, "env/processed.csv", cfg.Analysis.ProcessedCsvPath)
		// defaults survive where neither layer speaks
		assert.Equal(t, "data/variant-distances.json", cfg.Analysis.DistancesJsonPath)
	})

	t.Run("should fail on a missing yaml file", func(t *testing.T) {
		t.Setenv("HNF1B_CONFIG_YML", "/nonexistent/config.yml")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}
