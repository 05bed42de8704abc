package models

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Debug bool `yaml:"debug" envconfig:"HNF1B_DEBUG"`

	Extraction struct {
		CurationCsvPath string `yaml:"curation_csv_path" envconfig:"HNF1B_CURATION_CSV_PATH"`
		VariantsJsPath  string `yaml:"variants_js_path" envconfig:"HNF1B_VARIANTS_JS_PATH"`
	} `yaml:"extraction"`

	Analysis struct {
		DistancesJsonPath string `yaml:"distances_json_path" envconfig:"HNF1B_DISTANCES_JSON_PATH"`
		FigurePath        string `yaml:"figure_path" envconfig:"HNF1B_FIGURE_PATH"`
		ProcessedCsvPath  string `yaml:"processed_csv_path" envconfig:"HNF1B_PROCESSED_CSV_PATH"`
	} `yaml:"analysis"`
}

// fixed defaults ; both pipelines run without any environment
func (c *Config) applyDefaults() {
	c.Extraction.CurationCsvPath = "data/HNF1B_DataCuration - Individuals.csv"
	c.Extraction.VariantsJsPath = "js/variants.js"

	c.Analysis.DistancesJsonPath = "data/variant-distances.json"
	c.Analysis.FigurePath = "output/variant-distance-analysis.png"
	c.Analysis.ProcessedCsvPath = "output/variant-distance-processed.csv"
}

// LoadConfig assembles the effective configuration: built-in
// defaults, then an optional yaml file (HNF1B_CONFIG_YML), then
// environment variable overrides.
func LoadConfig() (*Config, error) {
	var cfg Config
	cfg.applyDefaults()

	if yamlPath := os.Getenv("HNF1B_CONFIG_YML"); yamlPath != "" {
		f, err := os.Open(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("config yaml %s: %w", yamlPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("config yaml %s: %w", yamlPath, err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
