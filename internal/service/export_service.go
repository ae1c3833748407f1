package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"rawdati/internal/model"
	"rawdati/internal/report"
)

// ErrExportInFlight is returned when an export is requested while
// another one is still running.
var ErrExportInFlight = errors.New("an export is already in progress")

// ResultsFetcher supplies current aggregates for a survey. Best-effort:
// implementations degrade to an empty slice instead of failing.
type ResultsFetcher interface {
	FetchResults(ctx context.Context, surveyID string) ([]model.SurveyResult, error)
}

// AnalysisFetcher supplies the optional narrative analysis. Best-effort:
// implementations return nil on any failure.
type AnalysisFetcher interface {
	FetchAnalysis(ctx context.Context, survey *model.Survey, results []model.SurveyResult) (*model.NarrativeAnalysis, error)
}

// FileEmitter hands the finished artifact to whatever delivers it (an
// HTTP download, a file on disk).
type FileEmitter interface {
	EmitFile(artifact *model.ExportArtifact) error
}

// ExportService runs the report export pipeline: fetch aggregates,
// request analysis, compose, rasterize, paginate, emit PDF. One export
// is in flight at a time; the off-screen surface is created and
// disposed inside each invocation, never shared.
type ExportService struct {
	results  ResultsFetcher
	analysis AnalysisFetcher
	layout   report.PageLayout
	timeout  time.Duration
	busy     atomic.Bool
	now      func() time.Time
}

// NewExportService creates a new export service
func NewExportService(results ResultsFetcher, analysis AnalysisFetcher, timeout time.Duration) *ExportService {
	return &ExportService{
		results:  results,
		analysis: analysis,
		layout:   report.A4,
		timeout:  timeout,
		now:      time.Now,
	}
}

// ExportReport generates the survey's report PDF and hands it to sink.
// Fetch failures degrade (empty results, nil analysis); compose, render,
// paginate and emit failures abort with a single wrapped error. The
// rendering surface is released on every exit path.
func (s *ExportService) ExportReport(ctx context.Context, survey *model.Survey, tenant model.TenantInfo, sink FileEmitter) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrExportInFlight
	}
	defer s.busy.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	log.Printf("[Export] starting for survey %s", survey.ID)

	// 1. Aggregates, degrading to empty on failure.
	results, err := s.results.FetchResults(ctx, survey.ID)
	if err != nil {
		log.Printf("[Export] results fetch failed, exporting empty report: %v", err)
		results = []model.SurveyResult{}
	}

	// 2. Narrative analysis, skipped when there is nothing to analyze
	// and dropped on failure.
	var analysis *model.NarrativeAnalysis
	if len(results) > 0 {
		analysis, err = s.analysis.FetchAnalysis(ctx, survey, results)
		if err != nil {
			log.Printf("[Export] analysis fetch failed, continuing without: %v", err)
			analysis = nil
		}
	}

	// 3. Compose the document.
	doc := report.Compose(survey, tenant, results, analysis, s.now())

	// 4. Rasterize on a surface owned by this invocation only.
	surface := report.NewSurface()
	defer surface.Dispose()

	img, err := surface.Render(doc)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	// 5. Slice into pages.
	pages, err := report.Paginate(img, s.layout)
	if err != nil {
		return fmt.Errorf("paginate report: %w", err)
	}

	// 6. Emit the artifact.
	data, err := report.EncodePDF(pages, s.layout)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	artifact := &model.ExportArtifact{
		Filename:    report.Filename(survey.Title, s.now()),
		ContentType: "application/pdf",
		PageCount:   len(pages),
		Data:        data,
	}
	if err := sink.EmitFile(artifact); err != nil {
		return fmt.Errorf("emit report: %w", err)
	}

	log.Printf("[Export] finished for survey %s: %d pages, %d bytes in %s",
		survey.ID, artifact.PageCount, len(artifact.Data), time.Since(start))
	return nil
}
