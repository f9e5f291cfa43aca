// Package main provides the CLI entry point for docreport.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/docreport-go/pkg/docreport"
	"github.com/ukaji3/docreport-go/pkg/docreport/config"
	"go.uber.org/zap"
)

var (
	configPath   string
	inputPath    string
	sheetIndex   int
	outputDir    string
	workbookPath string
	chartPath    string
	logLevel     string
	strict       bool
)

// errDegraded is returned in strict mode when highlighting was skipped.
var errDegraded = errors.New("report completed without highlighting")

func main() {
	_ = godotenv.Load(".env")

	rootCmd := &cobra.Command{
		Use:   "docreport",
		Short: "Build the document register report",
		Long: `docreport reads the document register workbook, computes response
deadlines and weekly statistics, renders the weekly volume chart and writes
a highlighted summary workbook.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: "+config.DefaultFile+" if present)")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input workbook path")
	rootCmd.Flags().IntVar(&sheetIndex, "sheet", 1, "0-based index of the register sheet")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory")
	rootCmd.Flags().StringVar(&workbookPath, "workbook", "", "Output workbook file name or path")
	rootCmd.Flags().StringVar(&chartPath, "chart", "", "Output chart file name or path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when highlighting fails")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	result, err := docreport.Generate(cfg.Options(logger))
	if err != nil {
		logger.Error("report failed", zap.Error(err))
		return err
	}

	if result.Degraded() && strict {
		return fmt.Errorf("%w: %v", errDegraded, result.Reason)
	}
	return nil
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path = inputPath
	}
	if flags.Changed("sheet") {
		cfg.Input.Sheet = sheetIndex
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("workbook") {
		cfg.Output.Workbook = workbookPath
	}
	if flags.Changed("chart") {
		cfg.Output.Chart = chartPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}
