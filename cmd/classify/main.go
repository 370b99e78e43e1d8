package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/Black-And-White-Club/team-classification/app"
	"github.com/Black-And-White-Club/team-classification/config"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "classify",
		Usage:     "rank footgolf teams from a stage workbook and render the reports",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "input-xlsx", Usage: "source workbook"},
			&cli.StringFlag{Name: "sheet-teams", Usage: "team roster sheet name"},
			&cli.StringFlag{Name: "sheet-scores", Usage: "stage score sheet name"},
			&cli.StringFlag{Name: "output-html", Usage: "HTML report path"},
			&cli.StringFlag{Name: "output-pdf", Usage: "PDF report path"},
			&cli.BoolFlag{Name: "update-xlsx", Usage: "write the summary sheet back into the workbook"},
			&cli.IntFlag{Name: "current-stage", Usage: "1-based stage the score sheet belongs to"},
			&cli.StringFlag{Name: "logo", Usage: "PNG logo shown in the reports"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to this textfile"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: func(c *cli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	application, err := app.NewApp(cfg, stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := application.Classification.Run(ctx)
	if err := application.Close(); err != nil {
		application.Logger.Warn("Failed to write metrics", "error", err)
	}
	if runErr != nil {
		return runErr
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(stderr, "warning:", w)
	}
	if result.WorkbookUpdated {
		fmt.Fprintln(stdout, cfg.Input.Workbook)
	}
	for _, a := range result.Artifacts {
		fmt.Fprintln(stdout, a.Path)
	}
	return nil
}

// applyFlags overrides the loaded configuration with explicitly set flags.
func applyFlags(c *cli.Context, cfg *config.Config) {
	stringFlags := map[string]*string{
		"input-xlsx":   &cfg.Input.Workbook,
		"sheet-teams":  &cfg.Input.TeamSheet,
		"sheet-scores": &cfg.Input.ScoreSheet,
		"output-html":  &cfg.Output.HTML,
		"output-pdf":   &cfg.Output.PDF,
		"logo":         &cfg.Report.Logo,
		"metrics-file": &cfg.Observability.MetricsFile,
		"log-level":    &cfg.Observability.LogLevel,
	}
	for name, dst := range stringFlags {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("update-xlsx") {
		cfg.Output.UpdateWorkbook = c.Bool("update-xlsx")
	}
	if c.IsSet("current-stage") {
		cfg.Scoring.CurrentStage = c.Int("current-stage")
	}
}
