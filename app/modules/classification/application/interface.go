package classificationservice

import (
	"context"

	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/renderers"
)

// Service runs team classifications.
type Service interface {
	// Classify reads the workbook named in req, ranks the teams, optionally
	// writes the summary sheet back and renders every configured report.
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResult, error)
}

// Renderer writes a report in one output format.
type Renderer interface {
	Format() string
	Render(ctx context.Context, report renderers.Report, path string) error
}
