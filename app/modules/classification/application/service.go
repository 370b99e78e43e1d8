package classificationservice

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
	classificationmetrics "github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/metrics"
	"github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/workbook"
)

// ClassificationService implements the Service interface.
type ClassificationService struct {
	engine    *classificationdomain.Engine
	repo      workbook.Repository
	renderers []Renderer
	logger    *slog.Logger
	metrics   classificationmetrics.Metrics
	tracer    trace.Tracer

	readFile func(name string) ([]byte, error)
	newRunID func() uuid.UUID
}

// NewClassificationService creates a new ClassificationService. Renderers run
// in the order given.
func NewClassificationService(
	engine *classificationdomain.Engine,
	repo workbook.Repository,
	renderers []Renderer,
	logger *slog.Logger,
	metrics classificationmetrics.Metrics,
	tracer trace.Tracer,
) *ClassificationService {
	return &ClassificationService{
		engine:    engine,
		repo:      repo,
		renderers: renderers,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		readFile:  os.ReadFile,
		newRunID:  uuid.New,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *ClassificationService,
	ctx context.Context,
	operationName string,
	runID uuid.UUID,
	op operationFunc[T],
) (result T, err error) {

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("run_id", runID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
		slog.String("run_id", runID.String()),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.String("run_id", runID.String()),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("run_id", runID.String()),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		slog.String("operation", operationName),
		slog.String("run_id", runID.String()),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)

	return result, nil
}
