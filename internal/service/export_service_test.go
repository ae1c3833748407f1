package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rawdati/internal/model"
)

type fakeResults struct {
	results []model.SurveyResult
	err     error
}

func (f *fakeResults) FetchResults(ctx context.Context, surveyID string) ([]model.SurveyResult, error) {
	return f.results, f.err
}

type fakeAnalysis struct {
	analysis *model.NarrativeAnalysis
	err      error
	called   bool
}

func (f *fakeAnalysis) FetchAnalysis(ctx context.Context, survey *model.Survey, results []model.SurveyResult) (*model.NarrativeAnalysis, error) {
	f.called = true
	return f.analysis, f.err
}

type captureEmitter struct {
	artifact *model.ExportArtifact
	err      error

	// Optional rendezvous for the in-flight test.
	entered chan struct{}
	release chan struct{}
}

func (e *captureEmitter) EmitFile(artifact *model.ExportArtifact) error {
	if e.entered != nil {
		close(e.entered)
		<-e.release
	}
	e.artifact = artifact
	return e.err
}

func exportSurvey() *model.Survey {
	return &model.Survey{ID: "s1", TenantID: "t1", Title: "Spring Survey"}
}

func exportResults() []model.SurveyResult {
	return []model.SurveyResult{
		{QuestionID: "q1", QuestionText: "Happy?", QuestionType: model.QuestionTypeYesNo,
			TotalResponses: 4, YesCount: 3, NoCount: 1, YesPercentage: 75},
	}
}

func newTestExportService(results ResultsFetcher, analysis AnalysisFetcher) *ExportService {
	svc := NewExportService(results, analysis, 30*time.Second)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportReportEmitsArtifact(t *testing.T) {
	analysis := &fakeAnalysis{analysis: &model.NarrativeAnalysis{Summary: "All good."}}
	svc := newTestExportService(&fakeResults{results: exportResults()}, analysis)
	sink := &captureEmitter{}

	err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	require.NoError(t, err)
	require.True(t, analysis.called)

	require.NotNil(t, sink.artifact)
	require.Equal(t, "تقرير_Spring_Survey_2026-03-15.pdf", sink.artifact.Filename)
	require.Equal(t, "application/pdf", sink.artifact.ContentType)
	require.GreaterOrEqual(t, sink.artifact.PageCount, 1)
	require.True(t, bytes.HasPrefix(sink.artifact.Data, []byte("%PDF-1.4")))
}

func TestExportReportDegradesOnResultsFailure(t *testing.T) {
	analysis := &fakeAnalysis{}
	svc := newTestExportService(&fakeResults{err: errors.New("mongo down")}, analysis)
	sink := &captureEmitter{}

	err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	require.NoError(t, err)

	// Empty results skip the analysis call and still produce a PDF.
	require.False(t, analysis.called)
	require.NotNil(t, sink.artifact)
	require.GreaterOrEqual(t, sink.artifact.PageCount, 1)
}

func TestExportReportContinuesOnAnalysisFailure(t *testing.T) {
	svc := newTestExportService(
		&fakeResults{results: exportResults()},
		&fakeAnalysis{err: errors.New("gemini timeout")},
	)
	sink := &captureEmitter{}

	err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	require.NoError(t, err)
	require.NotNil(t, sink.artifact)
}

func TestExportReportEmitFailureIsFatal(t *testing.T) {
	svc := newTestExportService(&fakeResults{results: exportResults()}, &fakeAnalysis{})
	sink := &captureEmitter{err: errors.New("client went away")}

	err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	require.Error(t, err)
	require.Contains(t, err.Error(), "emit report")

	// The busy flag is released even when the export fails.
	sink.err = nil
	err = svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	require.NoError(t, err)
}

func TestExportReportRejectsConcurrentExport(t *testing.T) {
	svc := newTestExportService(&fakeResults{results: exportResults()}, &fakeAnalysis{})
	sink := &captureEmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		done <- svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
	}()

	<-sink.entered
	err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, &captureEmitter{})
	require.ErrorIs(t, err, ErrExportInFlight)

	close(sink.release)
	require.NoError(t, <-done)

	// Once the first export finishes the service accepts work again.
	err = svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, &captureEmitter{})
	require.NoError(t, err)
}

func TestExportReportSequentialExports(t *testing.T) {
	svc := newTestExportService(&fakeResults{results: exportResults()}, &fakeAnalysis{})

	for i := 0; i < 3; i++ {
		sink := &captureEmitter{}
		err := svc.ExportReport(context.Background(), exportSurvey(), model.TenantInfo{Name: "N"}, sink)
		require.NoError(t, err)
		require.NotNil(t, sink.artifact)
	}
}
