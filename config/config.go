package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

// Config struct to hold the configuration settings
type Config struct {
	Input         InputConfig         `yaml:"input"`
	Output        OutputConfig        `yaml:"output"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Report        ReportConfig        `yaml:"report"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// InputConfig locates the source workbook and its sheets.
type InputConfig struct {
	Workbook   string `yaml:"workbook"`
	TeamSheet  string `yaml:"team_sheet"`
	ScoreSheet string `yaml:"score_sheet"`
}

// OutputConfig holds report destinations. An empty path skips that report.
type OutputConfig struct {
	HTML           string `yaml:"html"`
	PDF            string `yaml:"pdf"`
	UpdateWorkbook bool   `yaml:"update_workbook"`
	SummarySheet   string `yaml:"summary_sheet"`
}

// ScoringConfig holds the classification rules.
type ScoringConfig struct {
	CountryTokens  []string `yaml:"country_tokens"`
	PointsTable    []int    `yaml:"points_table"`
	DidNotFinish   int      `yaml:"did_not_finish"`
	StageCount     int      `yaml:"stage_count"`
	CurrentStage   int      `yaml:"current_stage"`
	CountedPlayers int      `yaml:"counted_players"`
}

// ReportConfig holds report texts and assets.
type ReportConfig struct {
	Headline         string `yaml:"headline"`
	Subtitle         string `yaml:"subtitle"`
	Title            string `yaml:"title"`
	Footer           string `yaml:"footer"`
	StageLabelFormat string `yaml:"stage_label_format"`
	Logo             string `yaml:"logo"`
	Chart            bool   `yaml:"chart"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
	Environment string `yaml:"environment"`
}

// Defaults returns the configuration for the 2026 stage 1 team championship.
func Defaults() *Config {
	rules := classificationdomain.DefaultRules()
	return &Config{
		Input: InputConfig{
			Workbook:   "imports/etapa1_2026_equipos.xlsx",
			TeamSheet:  "Equipos",
			ScoreSheet: "Clasificacion etapa 1 2026",
		},
		Output: OutputConfig{
			HTML:         "exports/clasificacion_equipos_etapa1_2026.html",
			PDF:          "exports/clasificacion_equipos_etapa1_2026.pdf",
			SummarySheet: "Clasificacion equipos",
		},
		Scoring: ScoringConfig{
			CountryTokens:  rules.CountryTokens,
			PointsTable:    rules.PointsTable,
			DidNotFinish:   rules.DidNotFinish,
			StageCount:     rules.StageCount,
			CurrentStage:   rules.CurrentStage,
			CountedPlayers: rules.CountedPlayers,
		},
		Report: ReportConfig{
			Headline:         "Campeonato de Espana por equipos 2026",
			Subtitle:         "Etapa 1 · 2026",
			Title:            "Clasificacion de Equipos",
			Footer:           "Footgolf · Clasificacion por equipos",
			StageLabelFormat: "Etapa %d",
			Logo:             "assets/logo.png",
			Chart:            true,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			Environment: "local",
		},
	}
}

// LoadConfig loads the configuration from a YAML file over the defaults, then
// applies environment overrides. A missing file is not an error.
func LoadConfig(filename string) (*Config, error) {
	cfg := Defaults()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults and environment only.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	loadEnvFiles()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env files without overriding variables already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CLASSIFY_INPUT_XLSX"); v != "" {
		cfg.Input.Workbook = v
	}
	if v := os.Getenv("CLASSIFY_SHEET_TEAMS"); v != "" {
		cfg.Input.TeamSheet = v
	}
	if v := os.Getenv("CLASSIFY_SHEET_SCORES"); v != "" {
		cfg.Input.ScoreSheet = v
	}
	if v := os.Getenv("CLASSIFY_OUTPUT_HTML"); v != "" {
		cfg.Output.HTML = v
	}
	if v := os.Getenv("CLASSIFY_OUTPUT_PDF"); v != "" {
		cfg.Output.PDF = v
	}
	if v := os.Getenv("CLASSIFY_UPDATE_XLSX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.UpdateWorkbook = b
		}
	}
	if v := os.Getenv("CLASSIFY_CURRENT_STAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.CurrentStage = n
		}
	}
	if v := os.Getenv("CLASSIFY_LOGO"); v != "" {
		cfg.Report.Logo = v
	}
	if v := os.Getenv("CLASSIFY_METRICS_FILE"); v != "" {
		cfg.Observability.MetricsFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
}

// Validate reports configuration that cannot produce a classification.
func (c *Config) Validate() error {
	if c.Input.Workbook == "" {
		return errors.New("input workbook path is required")
	}
	if c.Input.TeamSheet == "" || c.Input.ScoreSheet == "" {
		return errors.New("team and score sheet names are required")
	}
	if c.Output.UpdateWorkbook && c.Output.SummarySheet == "" {
		return errors.New("summary sheet name is required to update the workbook")
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	return nil
}

// Rules converts the scoring section into engine rules.
func (c *Config) Rules() classificationdomain.Rules {
	return classificationdomain.Rules{
		CountryTokens:  c.Scoring.CountryTokens,
		PointsTable:    c.Scoring.PointsTable,
		DidNotFinish:   c.Scoring.DidNotFinish,
		StageCount:     c.Scoring.StageCount,
		CurrentStage:   c.Scoring.CurrentStage,
		CountedPlayers: c.Scoring.CountedPlayers,
	}
}
