// Package stats holds the pure aggregation functions behind the survey
// dashboard and the exported report. Everything here is a function of its
// inputs: no storage, no clocks, no side effects.
package stats

import (
	"rawdati/internal/model"
)

// Aggregate computes one SurveyResult per question, in question order,
// from raw responses in any order. Calling it twice with the same input
// yields identical output.
//
// A response row that exists but carries a value the question type cannot
// parse still counts toward TotalResponses: a submitted record is
// participation even when the value is unusable.
func Aggregate(questions []model.Question, responses []model.RawResponse) []model.SurveyResult {
	byQuestion := make(map[string][]model.RawResponse, len(questions))
	for _, resp := range responses {
		byQuestion[resp.QuestionID] = append(byQuestion[resp.QuestionID], resp)
	}

	results := make([]model.SurveyResult, 0, len(questions))
	for _, q := range questions {
		results = append(results, aggregateQuestion(q, byQuestion[q.ID]))
	}
	return results
}

func aggregateQuestion(q model.Question, responses []model.RawResponse) model.SurveyResult {
	result := model.SurveyResult{
		QuestionID:     q.ID,
		QuestionText:   q.Text,
		QuestionType:   q.Type,
		TotalResponses: len(responses),
	}

	switch q.Type {
	case model.QuestionTypeYesNo:
		for _, r := range responses {
			switch r.SelectedOption {
			case model.AnswerYes:
				result.YesCount++
			case model.AnswerNo:
				result.NoCount++
			}
		}
		if result.TotalResponses > 0 {
			result.YesPercentage = float64(result.YesCount) / float64(result.TotalResponses) * 100
		}

	case model.QuestionTypeSingleChoice:
		result.OptionCounts = make(map[string]int)
		for _, r := range responses {
			if r.SelectedOption != "" {
				result.OptionCounts[r.SelectedOption]++
			}
		}

	case model.QuestionTypeMultipleChoice:
		result.OptionCounts = make(map[string]int)
		for _, r := range responses {
			for _, opt := range r.SelectedOptions {
				result.OptionCounts[opt]++
			}
		}

	case model.QuestionTypeRating:
		result.Ratings = []int{}
		sum := 0
		for _, r := range responses {
			if r.RatingValue < 1 || r.RatingValue > 5 {
				continue // out of range, still counted in TotalResponses
			}
			result.Ratings = append(result.Ratings, r.RatingValue)
			sum += r.RatingValue
		}
		if len(result.Ratings) > 0 {
			// Unrounded mean; rounding happens at presentation time only.
			result.AverageRating = float64(sum) / float64(len(result.Ratings))
		}

	case model.QuestionTypeText:
		// Only the participation count.
	}

	return result
}
