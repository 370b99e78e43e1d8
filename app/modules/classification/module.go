package classification

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	classificationservice "github.com/Black-And-White-Club/team-classification/app/modules/classification/application"
	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
	classificationmetrics "github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/metrics"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/renderers"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/workbook"
	"github.com/Black-And-White-Club/team-classification/config"
)

// Module represents the classification module.
type Module struct {
	Service classificationservice.Service
	logger  *slog.Logger
	config  *config.Config
}

// NewClassificationModule creates a new instance of the classification module
// backed by the xlsx workbook and the HTML and PDF renderers.
func NewClassificationModule(
	cfg *config.Config,
	logger *slog.Logger,
	metrics classificationmetrics.Metrics,
	tracer trace.Tracer,
) (*Module, error) {
	engine, err := classificationdomain.NewEngine(cfg.Rules())
	if err != nil {
		return nil, fmt.Errorf("failed to create classification engine: %w", err)
	}

	service := classificationservice.NewClassificationService(
		engine,
		workbook.NewExcelRepository(),
		[]classificationservice.Renderer{renderers.NewHTMLRenderer(), renderers.NewPDFRenderer()},
		logger,
		metrics,
		tracer,
	)

	return &Module{
		Service: service,
		logger:  logger,
		config:  cfg,
	}, nil
}

// Request builds the classification request described by the module config.
func (m *Module) Request() classificationservice.ClassifyRequest {
	cfg := m.config
	return classificationservice.ClassifyRequest{
		Workbook:       cfg.Input.Workbook,
		TeamSheet:      cfg.Input.TeamSheet,
		ScoreSheet:     cfg.Input.ScoreSheet,
		UpdateWorkbook: cfg.Output.UpdateWorkbook,
		SummarySheet:   cfg.Output.SummarySheet,
		Outputs: map[string]string{
			"html": cfg.Output.HTML,
			"pdf":  cfg.Output.PDF,
		},
		Headline:         cfg.Report.Headline,
		Subtitle:         cfg.Report.Subtitle,
		Title:            cfg.Report.Title,
		Footer:           cfg.Report.Footer,
		StageLabelFormat: cfg.Report.StageLabelFormat,
		LogoPath:         cfg.Report.Logo,
		Chart:            cfg.Report.Chart,
	}
}

// Run performs one classification with the configured request.
func (m *Module) Run(ctx context.Context) (*classificationservice.ClassifyResult, error) {
	m.logger.InfoContext(ctx, "Starting classification module",
		slog.String("workbook", m.config.Input.Workbook),
	)
	return m.Service.Classify(ctx, m.Request())
}
