package stats

import (
	"fmt"
	"sort"

	"rawdati/internal/model"
)

// PresentChart maps one aggregate to its on-screen visual. Zero-response
// questions get an explicit empty state rather than a malformed chart;
// text questions are not chartable at all.
func PresentChart(result model.SurveyResult) model.ChartSpec {
	spec := model.ChartSpec{
		QuestionID: result.QuestionID,
		Title:      result.QuestionText,
	}

	if result.QuestionType == model.QuestionTypeText {
		spec.Kind = model.ChartKindNone
		spec.Caption = fmt.Sprintf("%d text responses", result.TotalResponses)
		return spec
	}

	if result.TotalResponses == 0 {
		spec.Kind = model.ChartKindEmpty
		spec.Caption = "No responses yet"
		return spec
	}

	switch result.QuestionType {
	case model.QuestionTypeYesNo:
		spec.Kind = model.ChartKindPie
		spec.Segments = []model.ChartSegment{
			{Label: "Yes", Value: result.YesCount, Percent: result.YesPercentage},
			{Label: "No", Value: result.NoCount, Percent: result.NoPercentage()},
		}

	case model.QuestionTypeSingleChoice, model.QuestionTypeMultipleChoice:
		spec.Kind = model.ChartKindBars
		spec.Segments = optionSegments(result)

	case model.QuestionTypeRating:
		spec.Kind = model.ChartKindBars
		spec.Segments = ratingSegments(result)
		spec.Caption = fmt.Sprintf("Average rating: %.1f / 5", result.AverageRating)
	}

	return spec
}

// optionSegments turns the option count map into stable, descending bars.
// The total selection count (not respondent count) is the percentage base
// so multiple-choice bars still sum to 100.
func optionSegments(result model.SurveyResult) []model.ChartSegment {
	total := 0
	for _, c := range result.OptionCounts {
		total += c
	}

	segments := make([]model.ChartSegment, 0, len(result.OptionCounts))
	for opt, count := range result.OptionCounts {
		seg := model.ChartSegment{Label: opt, Value: count}
		if total > 0 {
			seg.Percent = float64(count) / float64(total) * 100
		}
		segments = append(segments, seg)
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Value != segments[j].Value {
			return segments[i].Value > segments[j].Value
		}
		return segments[i].Label < segments[j].Label
	})
	return segments
}

// ratingSegments builds one bar per scale value, 1 through 5, including
// empty buckets.
func ratingSegments(result model.SurveyResult) []model.ChartSegment {
	hist := make(map[int]int, 5)
	for _, v := range result.Ratings {
		hist[v]++
	}

	segments := make([]model.ChartSegment, 0, 5)
	for v := 1; v <= 5; v++ {
		seg := model.ChartSegment{Label: fmt.Sprintf("%d", v), Value: hist[v]}
		if len(result.Ratings) > 0 {
			seg.Percent = float64(hist[v]) / float64(len(result.Ratings)) * 100
		}
		segments = append(segments, seg)
	}
	return segments
}
