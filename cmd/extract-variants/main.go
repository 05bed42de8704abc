package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hnf1b/analysis/models"
	"hnf1b/analysis/services/extraction"
)

func main() {
	// Gather configuration (built-in defaults, optional yaml,
	// environment overrides)
	cfg, err := models.LoadConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	runId := uuid.NewString()

	fmt.Printf("Using : \n"+
		"\tCuration CSV Path : %s \n"+
		"\tVariants Output Path : %s \n\n"+
		"Run ID : %s\n\n",
		cfg.Extraction.CurationCsvPath,
		cfg.Extraction.VariantsJsPath,
		runId)
	// --

	svc := extraction.NewService(cfg, logger)
	if err := svc.Run(runId); err != nil {
		logger.Fatal("extraction failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
