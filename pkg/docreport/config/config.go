// Package config loads docreport settings from defaults, an optional YAML
// file and DOCREPORT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/docreport-go/pkg/docreport"
	"github.com/ukaji3/docreport-go/pkg/docreport/aggregate"
	"github.com/ukaji3/docreport-go/pkg/docreport/export"
	"github.com/ukaji3/docreport-go/pkg/docreport/loader"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DOCREPORT_INPUT_PATH.
const EnvPrefix = "DOCREPORT"

// DefaultFile is the config file read when present in the working directory.
const DefaultFile = "docreport.yml"

// Config is the complete run configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Chart  ChartConfig  `yaml:"chart"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig locates the source register.
type InputConfig struct {
	Path  string `yaml:"path" validate:"required"`
	Sheet int    `yaml:"sheet" validate:"gte=0"`
}

// OutputConfig locates the generated files.
type OutputConfig struct {
	Dir      string `yaml:"dir" validate:"required"`
	Workbook string `yaml:"workbook"`
	Chart    string `yaml:"chart"`
}

// ReportConfig tunes the derived columns and aggregates.
type ReportConfig struct {
	DeadlineDays       int      `yaml:"deadline_days" split_words:"true" validate:"gte=1"`
	HybridTypes        []string `yaml:"hybrid_types" split_words:"true" validate:"min=1"`
	ConditionDocuments []string `yaml:"condition_documents" split_words:"true" validate:"min=1"`
	HighlightColumn    int      `yaml:"highlight_column" split_words:"true" validate:"gte=1"`
	OnTimeColor        string   `yaml:"on_time_color" split_words:"true" validate:"hexadecimal,len=6"`
	LateColor          string   `yaml:"late_color" split_words:"true" validate:"hexadecimal,len=6"`
}

// ChartConfig sizes the rendered chart.
type ChartConfig struct {
	Title        string  `yaml:"title"`
	WidthInches  float64 `yaml:"width_inches" split_words:"true" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" split_words:"true" validate:"gt=0"`
	DPI          int     `yaml:"dpi" validate:"gte=1"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Env   string `yaml:"env" validate:"oneof=development production"`
}

// Default reproduces the fixed paths of the original batch job.
func Default() Config {
	spec := models.DefaultChartSpec()
	return Config{
		Input: InputConfig{Path: "Uzduotis.xlsx", Sheet: 1},
		Output: OutputConfig{
			Dir:      "Analysis",
			Workbook: "Uzduotis_python.xlsx",
			Chart:    "Grafikas.png",
		},
		Report: ReportConfig{
			DeadlineDays:       loader.DefaultDeadlineDays,
			HybridTypes:        aggregate.DefaultHybridTypes,
			ConditionDocuments: aggregate.DefaultConditionDocuments,
			HighlightColumn:    export.DefaultHighlightColumn,
			OnTimeColor:        export.OnTimeColor,
			LateColor:          export.LateColor,
		},
		Chart: ChartConfig{
			WidthInches:  spec.WidthInches,
			HeightInches: spec.HeightInches,
			DPI:          spec.DPI,
		},
		Log: LogConfig{Level: "info", Env: "development"},
	}
}

// Load starts from Default, merges the YAML file at path (skipped when path
// is empty) and applies environment overrides. It does not validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// WorkbookPath resolves the output workbook against the output directory.
func (c *Config) WorkbookPath() string {
	return resolve(c.Output.Dir, c.Output.Workbook, "Uzduotis_python.xlsx")
}

// ChartPath resolves the chart image against the output directory.
func (c *Config) ChartPath() string {
	return resolve(c.Output.Dir, c.Output.Chart, "Grafikas.png")
}

func resolve(dir, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Options converts the configuration into pipeline options.
func (c *Config) Options(logger *zap.Logger) docreport.Options {
	spec := models.DefaultChartSpec()
	spec.Title = c.Chart.Title
	spec.WidthInches = c.Chart.WidthInches
	spec.HeightInches = c.Chart.HeightInches
	spec.DPI = c.Chart.DPI

	return docreport.Options{
		InputPath:          c.Input.Path,
		SheetIndex:         c.Input.Sheet,
		WorkbookPath:       c.WorkbookPath(),
		ChartPath:          c.ChartPath(),
		DeadlineDays:       c.Report.DeadlineDays,
		HybridTypes:        c.Report.HybridTypes,
		ConditionDocuments: c.Report.ConditionDocuments,
		HighlightColumn:    c.Report.HighlightColumn,
		OnTimeColor:        c.Report.OnTimeColor,
		LateColor:          c.Report.LateColor,
		Chart:              spec,
		Logger:             logger,
	}
}
