package classificationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/renderers"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/workbook"
)

// Classify runs one classification: load, compute, write back, render.
// Failures to load or write back are fatal. Report failures only add warnings.
func (s *ClassificationService) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResult, error) {
	runID := s.newRunID()

	return withTelemetry(s, ctx, "Classify", runID, func(ctx context.Context) (*ClassifyResult, error) {
		sheets, err := withTelemetry(s, ctx, "LoadSources", runID, func(ctx context.Context) (*workbook.Sheets, error) {
			return s.repo.ReadSheets(ctx, req.Workbook, req.ScoreSheet, req.TeamSheet)
		})
		if err != nil {
			return nil, err
		}

		result, err := withTelemetry(s, ctx, "ComputeClassification", runID, func(ctx context.Context) (*ClassifyResult, error) {
			return s.compute(ctx, runID, sheets), nil
		})
		if err != nil {
			return nil, err
		}

		if req.UpdateWorkbook {
			_, err := withTelemetry(s, ctx, "WriteBack", runID, func(ctx context.Context) (struct{}, error) {
				return struct{}{}, s.repo.WriteSummary(ctx, req.Workbook, req.SummarySheet, result.Summary)
			})
			if err != nil {
				return nil, err
			}
			result.WorkbookUpdated = true
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		_, err = withTelemetry(s, ctx, "Render", runID, func(ctx context.Context) (struct{}, error) {
			s.render(ctx, req, result)
			return struct{}{}, nil
		})
		if err != nil {
			return nil, err
		}

		return result, nil
	})
}

func (s *ClassificationService) compute(ctx context.Context, runID uuid.UUID, sheets *workbook.Sheets) *ClassifyResult {
	table, stats := s.engine.LoadScores(sheets.Scores)
	s.logger.DebugContext(ctx, "Score sheet loaded",
		slog.String("run_id", runID.String()),
		slog.Int("rows", stats.Rows),
		slog.Int("loaded", stats.Loaded),
		slog.Int("blank", stats.Blank),
		slog.Int("bad_score", stats.BadScore),
		slog.Int("empty_key", stats.EmptyKey),
		slog.Int("duplicates", stats.Duplicates),
	)

	roster := s.engine.LoadRoster(sheets.TeamHeader, sheets.TeamRows)
	ranking := s.engine.Score(roster, table)

	result := &ClassifyResult{
		RunID:      runID,
		Ranking:    ranking,
		Points:     s.engine.DerivePoints(ranking),
		Details:    s.engine.BuildDetails(roster, table),
		Summary:    classificationdomain.BuildSummary(ranking),
		ScoreStats: stats,
	}
	result.Matches, result.Unmatched = s.diagnose(roster, table)

	for _, strategy := range []classificationdomain.MatchStrategy{
		classificationdomain.MatchExact,
		classificationdomain.MatchSubstring,
		classificationdomain.MatchNone,
	} {
		s.metrics.RecordPlayersMatched(ctx, string(strategy), result.Matches[strategy])
	}
	s.metrics.RecordTeamsRanked(ctx, len(ranking))

	for _, u := range result.Unmatched {
		s.logger.DebugContext(ctx, "Roster player has no score",
			slog.String("run_id", runID.String()),
			slog.String("team", u.Team),
			slog.String("player", u.Player),
			slog.String("key", string(u.Key)),
			slog.Any("suggestions", u.Suggestions),
		)
	}
	s.logger.InfoContext(ctx, "Classification computed",
		slog.String("run_id", runID.String()),
		slog.Int("teams", len(ranking)),
		slog.Int("players", roster.PlayerCount()),
		slog.Int("exact", result.Matches[classificationdomain.MatchExact]),
		slog.Int("substring", result.Matches[classificationdomain.MatchSubstring]),
		slog.Int("unmatched", len(result.Unmatched)),
	)

	return result
}

func (s *ClassificationService) render(ctx context.Context, req ClassifyRequest, result *ClassifyResult) {
	report := renderers.Report{
		Headline:    req.Headline,
		Subtitle:    req.Subtitle,
		Title:       req.Title,
		Footer:      req.Footer,
		StageLabels: classificationdomain.StageLabels(req.StageLabelFormat, s.engine.Rules().StageCount),
		Ranking:     result.Ranking,
		Points:      result.Points,
		Details:     result.Details,
		Summary:     result.Summary,
		Logo:        s.loadLogo(ctx, req.LogoPath, result),
	}

	if req.Chart {
		chart, err := renderers.TotalsChart(result.Ranking)
		if err != nil {
			s.warn(ctx, result, fmt.Sprintf("chart skipped: %v", err))
		}
		report.Chart = chart
	}

	for _, r := range s.renderers {
		format := r.Format()
		path := req.Outputs[format]
		if path == "" {
			s.skip(ctx, result, format, fmt.Sprintf("%s report skipped: no output path", format))
			continue
		}

		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				s.skip(ctx, result, format, fmt.Sprintf("%s report skipped: %v", format, err))
				continue
			}
		}

		if err := r.Render(ctx, report, path); err != nil {
			s.skip(ctx, result, format, fmt.Sprintf("%s report skipped: %v", format, err))
			continue
		}

		result.Artifacts = append(result.Artifacts, Artifact{Format: format, Path: path})
		s.logger.InfoContext(ctx, "Report written",
			slog.String("run_id", result.RunID.String()),
			slog.String("format", format),
			slog.String("path", path),
		)
	}
}

// loadLogo returns the logo PNG, or nil when none is configured or the file
// does not exist.
func (s *ClassificationService) loadLogo(ctx context.Context, path string, result *ClassifyResult) []byte {
	if path == "" {
		return nil
	}
	data, err := s.readFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.logger.DebugContext(ctx, "Logo not found",
			slog.String("run_id", result.RunID.String()),
			slog.String("path", path),
		)
		return nil
	case err != nil:
		s.warn(ctx, result, fmt.Sprintf("logo skipped: %v", err))
		return nil
	}
	return data
}

func (s *ClassificationService) warn(ctx context.Context, result *ClassifyResult, msg string) {
	result.Warnings = append(result.Warnings, msg)
	s.logger.WarnContext(ctx, msg, slog.String("run_id", result.RunID.String()))
}

func (s *ClassificationService) skip(ctx context.Context, result *ClassifyResult, format, msg string) {
	s.metrics.RecordArtifactSkipped(ctx, format)
	s.warn(ctx, result, msg)
}
