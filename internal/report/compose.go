// Package report turns survey aggregates into a downloadable, paginated
// PDF: compose a document, rasterize it at a fixed width, slice the
// raster into A4-sized pages, emit one PDF.
package report

import (
	"time"

	"rawdati/internal/model"
	"rawdati/internal/stats"
)

// SummaryStats is the statistics banner under the report header.
type SummaryStats struct {
	TotalResponses     int
	QuestionCount      int
	AveragePerQuestion float64
}

// QuestionBlock is one question's visual section in the document.
// Text and zero-response questions carry a chart with an explicit
// fallback kind instead of bars.
type QuestionBlock struct {
	Result model.SurveyResult
	Chart  model.ChartSpec
}

// Document is the in-memory report tree. Built fresh per export and
// discarded after rasterization. Section order is fixed: header,
// summary, optional analysis, question blocks, footer.
type Document struct {
	Title       string
	Description string
	Tenant      model.TenantInfo
	Stats       SummaryStats
	Analysis    *model.NarrativeAnalysis // nil or empty -> section omitted
	Blocks      []QuestionBlock
	NoResults   bool // true when the survey has no aggregates at all
	GeneratedAt time.Time
}

// Compose assembles the report document from a survey, its aggregates,
// tenant metadata and the optional narrative analysis. Every optional
// field guards its own presence; nothing here can fail.
func Compose(survey *model.Survey, tenant model.TenantInfo, results []model.SurveyResult, analysis *model.NarrativeAnalysis, now time.Time) *Document {
	doc := &Document{
		Title:       survey.Title,
		Description: survey.Description,
		Tenant:      tenant,
		GeneratedAt: now,
	}

	total := 0
	for _, r := range results {
		total += r.TotalResponses
	}
	doc.Stats = SummaryStats{
		TotalResponses: total,
		QuestionCount:  len(results),
	}
	if len(results) > 0 {
		doc.Stats.AveragePerQuestion = float64(total) / float64(len(results))
	} else {
		doc.NoResults = true
	}

	if !analysis.IsEmpty() {
		doc.Analysis = analysis
	}

	for _, r := range results {
		doc.Blocks = append(doc.Blocks, QuestionBlock{
			Result: r,
			Chart:  stats.PresentChart(r),
		})
	}

	return doc
}
