package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

var envKeys = []string{
	"CLASSIFY_INPUT_XLSX",
	"CLASSIFY_SHEET_TEAMS",
	"CLASSIFY_SHEET_SCORES",
	"CLASSIFY_OUTPUT_HTML",
	"CLASSIFY_OUTPUT_PDF",
	"CLASSIFY_UPDATE_XLSX",
	"CLASSIFY_CURRENT_STAGE",
	"CLASSIFY_LOGO",
	"CLASSIFY_METRICS_FILE",
	"LOG_LEVEL",
	"ENV",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, "imports/etapa1_2026_equipos.xlsx", cfg.Input.Workbook)
	require.Equal(t, "Clasificacion equipos", cfg.Output.SummarySheet)
	require.False(t, cfg.Output.UpdateWorkbook)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
input:
  workbook: data/etapa2.xlsx
  score_sheet: Clasificacion etapa 2 2026
scoring:
  current_stage: 2
  counted_players: 3
report:
  subtitle: Etapa 2 · 2026
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "data/etapa2.xlsx", cfg.Input.Workbook)
	require.Equal(t, "Clasificacion etapa 2 2026", cfg.Input.ScoreSheet)
	require.Equal(t, "Equipos", cfg.Input.TeamSheet)
	require.Equal(t, 2, cfg.Scoring.CurrentStage)
	require.Equal(t, 3, cfg.Scoring.CountedPlayers)
	require.Equal(t, classificationdomain.DefaultPointsTable(), cfg.Scoring.PointsTable)
	require.Equal(t, "Etapa 2 · 2026", cfg.Report.Subtitle)
	require.Equal(t, "Clasificacion de Equipos", cfg.Report.Title)

	rules := cfg.Rules()
	require.Equal(t, 2, rules.CurrentStage)
	require.NoError(t, rules.Validate())
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
input:
  workbook: from-yaml.xlsx
output:
  update_workbook: false
observability:
  log_level: info
`)
	t.Setenv("CLASSIFY_INPUT_XLSX", "from-env.xlsx")
	t.Setenv("CLASSIFY_UPDATE_XLSX", "true")
	t.Setenv("CLASSIFY_OUTPUT_PDF", "out/report.pdf")
	t.Setenv("CLASSIFY_METRICS_FILE", "out/classification.prom")
	t.Setenv("CLASSIFY_CURRENT_STAGE", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "from-env.xlsx", cfg.Input.Workbook)
	require.True(t, cfg.Output.UpdateWorkbook)
	require.Equal(t, "out/report.pdf", cfg.Output.PDF)
	require.Equal(t, "out/classification.prom", cfg.Observability.MetricsFile)
	require.Equal(t, 3, cfg.Scoring.CurrentStage)
	require.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoadConfig_IgnoresMalformedEnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLASSIFY_UPDATE_XLSX", "maybe")
	t.Setenv("CLASSIFY_CURRENT_STAGE", "two")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.False(t, cfg.Output.UpdateWorkbook)
	require.Equal(t, 1, cfg.Scoring.CurrentStage)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, err error)
	}{
		{
			name: "malformed yaml",
			body: "input: [",
			check: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to unmarshal config")
			},
		},
		{
			name: "invalid rules",
			body: "scoring:\n  current_stage: 9\n",
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, classificationdomain.ErrInvalidRules)
			},
		},
		{
			name: "empty workbook path",
			body: "input:\n  workbook: \"\"\n",
			check: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "input workbook path is required")
			},
		},
		{
			name: "update without summary sheet",
			body: "output:\n  update_workbook: true\n  summary_sheet: \"\"\n",
			check: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "summary sheet name is required")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := LoadConfig(writeConfig(t, tt.body))
			require.Nil(t, cfg)
			tt.check(t, err)
		})
	}
}

func TestDefaults_AreIndependent(t *testing.T) {
	a := Defaults()
	a.Scoring.PointsTable[0] = 1
	require.Equal(t, 100, Defaults().Scoring.PointsTable[0])
}
