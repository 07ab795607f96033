package course

import (
	"context"
	"fmt"
	"sync"

	"github.com/goto/salt/log"
	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/goto/coursefinder/core/course"

type Service struct {
	discoveryRepository DiscoveryRepository
	dataset             Dataset
	logger              log.Logger

	// serialises bootstrap and reindex runs
	indexing sync.Mutex

	tracer          trace.Tracer
	courseOpCounter metric.Int64Counter
}

type ServiceDeps struct {
	DiscoveryRepo DiscoveryRepository
	Dataset       Dataset
	Logger        log.Logger
}

// IndexReport summarises a bootstrap or reindex run
type IndexReport struct {
	Total   int  `json:"total"`
	Indexed int  `json:"indexed"`
	Failed  int  `json:"failed"`
	Skipped bool `json:"skipped"`
}

func NewService(deps ServiceDeps) *Service {
	courseOpCounter, err := otel.Meter(instrumentationName).
		Int64Counter("coursefinder.course.operation")
	if err != nil {
		otel.Handle(err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}

	return &Service{
		discoveryRepository: deps.DiscoveryRepo,
		dataset:             deps.Dataset,
		logger:              logger,

		tracer:          otel.Tracer(instrumentationName),
		courseOpCounter: courseOpCounter,
	}
}

// Search runs the criteria against the search engine and projects a page of results.
// Engine failures are returned, an empty page is not an error.
func (s *Service) Search(ctx context.Context, cfg SearchCriteria) (result SearchResult, err error) {
	ctx, span := s.tracer.Start(ctx, "course.Search")
	defer func() {
		endSpan(span, err)
		s.instrumentCourseOp(ctx, "Search", err)
	}()

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Page < 0 {
		cfg.Page = DefaultPage
	}

	hits, err := s.discoveryRepository.Search(ctx, cfg)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search courses: %w", err)
	}

	return NewSearchResult(cfg, hits), nil
}

// Suggest returns up to MaxSuggestions distinct titles completing the prefix.
// It is best-effort: engine failures are logged and yield an empty list.
func (s *Service) Suggest(ctx context.Context, prefix string) []string {
	titles, err := s.discoveryRepository.Suggest(ctx, prefix)
	s.instrumentCourseOp(ctx, "Suggest", err)
	if err != nil {
		s.logger.Error("error getting suggestions", "query", prefix, "err", err)
		return []string{}
	}

	return ReduceSuggestions(titles)
}

// Bootstrap loads the dataset into the index only when the index is empty.
func (s *Service) Bootstrap(ctx context.Context) (report IndexReport, err error) {
	const op = "Bootstrap"
	if !s.indexing.TryLock() {
		return IndexReport{}, ErrReindexInProgress
	}
	defer s.indexing.Unlock()

	ctx, span := s.tracer.Start(ctx, "course.Bootstrap")
	defer func() {
		endSpan(span, err)
		s.instrumentCourseOp(ctx, op, err)
	}()

	s.logger.Info("starting to index course data")
	count, err := s.discoveryRepository.Count(ctx)
	if err != nil {
		return IndexReport{}, IndexingError{Op: op, Err: fmt.Errorf("count courses: %w", err)}
	}
	if count > 0 {
		s.logger.Info("data already exists in index, skipping initial load", "count", count)
		return IndexReport{Skipped: true}, nil
	}

	return s.load(ctx, op)
}

// Reindex deletes every course and loads the dataset again. Concurrent
// calls are rejected with ErrReindexInProgress.
func (s *Service) Reindex(ctx context.Context) (report IndexReport, err error) {
	const op = "Reindex"
	if !s.indexing.TryLock() {
		return IndexReport{}, ErrReindexInProgress
	}
	defer s.indexing.Unlock()

	ctx, span := s.tracer.Start(ctx, "course.Reindex")
	defer func() {
		span.SetAttributes(
			attribute.Int("coursefinder.indexed", report.Indexed),
			attribute.Int("coursefinder.failed", report.Failed),
		)
		endSpan(span, err)
		s.instrumentCourseOp(ctx, op, err)
	}()

	s.logger.Info("reindexing all course data")
	if err := s.discoveryRepository.DeleteAll(ctx); err != nil {
		return IndexReport{}, IndexingError{Op: op, Err: fmt.Errorf("delete courses: %w", err)}
	}

	return s.load(ctx, op)
}

func (s *Service) load(ctx context.Context, op string) (IndexReport, error) {
	courses, err := s.dataset.Load(ctx)
	if err != nil {
		return IndexReport{}, IndexingError{Op: op, Err: fmt.Errorf("load dataset: %w", err)}
	}
	s.logger.Info("loaded courses from dataset", "count", len(courses))

	docs := make([]Course, len(courses))
	for i, c := range courses {
		docs[i] = c.WithSuggestions()
	}

	report := IndexReport{Total: len(docs)}
	err = s.discoveryRepository.BulkUpsert(ctx, docs)
	if err == nil {
		report.Indexed = len(docs)
		s.logger.Info("successfully indexed courses", "count", report.Indexed)
		return report, nil
	}
	s.logger.Error("failed to bulk index courses, indexing individually", "err", err)

	var failures *multierror.Error
	for _, doc := range docs {
		if ctx.Err() != nil {
			return report, IndexingError{Op: op, Err: fmt.Errorf("index courses individually: %w", ctx.Err())}
		}
		if err := s.discoveryRepository.Upsert(ctx, doc); err != nil {
			s.logger.Error("failed to index course", "id", doc.ID, "title", doc.Title, "err", err)
			failures = multierror.Append(failures, fmt.Errorf("course %q: %w", doc.ID, err))
			continue
		}
		report.Indexed++
	}
	report.Failed = report.Total - report.Indexed
	s.logger.Info("indexed courses individually", "indexed", report.Indexed, "total", report.Total)

	if report.Total > 0 && report.Indexed == 0 {
		return report, IndexingError{Op: op, Err: fmt.Errorf("no course could be indexed: %w", failures.ErrorOrNil())}
	}
	return report, nil
}

func (s *Service) instrumentCourseOp(ctx context.Context, op string, err error) {
	if s.courseOpCounter == nil {
		return
	}

	s.courseOpCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("coursefinder.course_operation", op),
		attribute.Bool("operation.success", err == nil),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
