package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hnf1b/analysis/models"
	"hnf1b/analysis/services/analysis"
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
		"\tVariant Distances Path : %s \n"+
		"\tFigure Output Path : %s \n"+
		"\tProcessed CSV Path : %s \n\n"+
		"Run ID : %s\n",
		cfg.Analysis.DistancesJsonPath,
		cfg.Analysis.FigurePath,
		cfg.Analysis.ProcessedCsvPath,
		runId)
	// --

	svc := analysis.NewService(cfg, logger)
	if err := svc.Run(); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
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
