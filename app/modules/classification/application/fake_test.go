package classificationservice

import (
	"context"
	"time"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
	classificationmetrics "github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/metrics"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/renderers"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/workbook"
)

// ------------------------
// Fake Workbook Repo
// ------------------------

// FakeWorkbookRepository provides a programmable stub for workbook.Repository.
type FakeWorkbookRepository struct {
	trace *[]string

	ReadSheetsFunc   func(ctx context.Context, path, scoreSheet, teamSheet string) (*workbook.Sheets, error)
	WriteSummaryFunc func(ctx context.Context, path, sheetName string, rows []classificationdomain.SummaryRow) error

	LastSummary      []classificationdomain.SummaryRow
	LastSummarySheet string
}

func NewFakeWorkbookRepository(trace *[]string) *FakeWorkbookRepository {
	return &FakeWorkbookRepository{trace: trace}
}

func (f *FakeWorkbookRepository) ReadSheets(ctx context.Context, path, scoreSheet, teamSheet string) (*workbook.Sheets, error) {
	*f.trace = append(*f.trace, "ReadSheets")
	if f.ReadSheetsFunc != nil {
		return f.ReadSheetsFunc(ctx, path, scoreSheet, teamSheet)
	}
	return &workbook.Sheets{}, nil
}

func (f *FakeWorkbookRepository) WriteSummary(ctx context.Context, path, sheetName string, rows []classificationdomain.SummaryRow) error {
	*f.trace = append(*f.trace, "WriteSummary")
	f.LastSummary = rows
	f.LastSummarySheet = sheetName
	if f.WriteSummaryFunc != nil {
		return f.WriteSummaryFunc(ctx, path, sheetName, rows)
	}
	return nil
}

var _ workbook.Repository = (*FakeWorkbookRepository)(nil)

// ------------------------
// Fake Renderer
// ------------------------

// FakeRenderer records the reports it is asked to render.
type FakeRenderer struct {
	trace  *[]string
	format string

	RenderFunc func(ctx context.Context, report renderers.Report, path string) error

	LastReport renderers.Report
	LastPath   string
	Calls      int
}

func NewFakeRenderer(trace *[]string, format string) *FakeRenderer {
	return &FakeRenderer{trace: trace, format: format}
}

func (f *FakeRenderer) Format() string { return f.format }

func (f *FakeRenderer) Render(ctx context.Context, report renderers.Report, path string) error {
	*f.trace = append(*f.trace, "Render:"+f.format)
	f.Calls++
	f.LastReport = report
	f.LastPath = path
	if f.RenderFunc != nil {
		return f.RenderFunc(ctx, report, path)
	}
	return nil
}

var _ Renderer = (*FakeRenderer)(nil)

// ------------------------
// Fake Metrics
// ------------------------

// FakeMetrics counts calls per operation and label.
type FakeMetrics struct {
	Attempts  map[string]int
	Successes map[string]int
	Failures  map[string]int
	Matched   map[string]int
	Skipped   map[string]int
	Teams     int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		Attempts:  map[string]int{},
		Successes: map[string]int{},
		Failures:  map[string]int{},
		Matched:   map[string]int{},
		Skipped:   map[string]int{},
	}
}

func (f *FakeMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	f.Attempts[operation]++
}

func (f *FakeMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	f.Successes[operation]++
}

func (f *FakeMetrics) RecordOperationFailure(_ context.Context, operation string) {
	f.Failures[operation]++
}

func (f *FakeMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (f *FakeMetrics) RecordPlayersMatched(_ context.Context, strategy string, count int) {
	f.Matched[strategy] += count
}

func (f *FakeMetrics) RecordTeamsRanked(_ context.Context, count int) {
	f.Teams = count
}

func (f *FakeMetrics) RecordArtifactSkipped(_ context.Context, format string) {
	f.Skipped[format]++
}

var _ classificationmetrics.Metrics = (*FakeMetrics)(nil)
