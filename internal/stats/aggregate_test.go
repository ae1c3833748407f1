package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rawdati/internal/model"
)

func yesNoQuestion(id string) model.Question {
	return model.Question{ID: id, Text: "Is your child happy at the nursery?", Type: model.QuestionTypeYesNo}
}

func TestAggregateYesNo(t *testing.T) {
	questions := []model.Question{yesNoQuestion("q1")}
	responses := []model.RawResponse{
		{QuestionID: "q1", SelectedOption: model.AnswerYes},
		{QuestionID: "q1", SelectedOption: model.AnswerYes},
		{QuestionID: "q1", SelectedOption: model.AnswerNo},
	}

	results := Aggregate(questions, responses)
	require.Len(t, results, 1)

	r := results[0]
	require.Equal(t, 3, r.TotalResponses)
	require.Equal(t, 2, r.YesCount)
	require.Equal(t, 1, r.NoCount)
	require.Equal(t, r.TotalResponses, r.YesCount+r.NoCount)
	require.InDelta(t, 66.7, r.YesPercentage, 0.1)
	require.InDelta(t, 100, r.YesPercentage+r.NoPercentage(), 1e-9)
}

func TestAggregateYesNoEmpty(t *testing.T) {
	results := Aggregate([]model.Question{yesNoQuestion("q1")}, nil)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].TotalResponses)
	require.Equal(t, float64(0), results[0].YesPercentage)
	require.Equal(t, float64(0), results[0].NoPercentage())
}

func TestAggregateYesNoUnparseableStillCounts(t *testing.T) {
	// A submitted record with a value neither marker recognizes is still
	// participation: it counts toward the total but neither tally.
	questions := []model.Question{yesNoQuestion("q1")}
	responses := []model.RawResponse{
		{QuestionID: "q1", SelectedOption: model.AnswerYes},
		{QuestionID: "q1", SelectedOption: "maybe"},
	}

	r := Aggregate(questions, responses)[0]
	require.Equal(t, 2, r.TotalResponses)
	require.Equal(t, 1, r.YesCount)
	require.Equal(t, 0, r.NoCount)
}

func TestAggregateSingleChoice(t *testing.T) {
	questions := []model.Question{{
		ID:      "q1",
		Text:    "Preferred pickup time",
		Type:    model.QuestionTypeSingleChoice,
		Options: []string{"2pm", "3pm", "4pm"},
	}}
	responses := []model.RawResponse{
		{QuestionID: "q1", SelectedOption: "2pm"},
		{QuestionID: "q1", SelectedOption: "3pm"},
		{QuestionID: "q1", SelectedOption: "3pm"},
	}

	r := Aggregate(questions, responses)[0]
	require.Equal(t, 3, r.TotalResponses)
	require.Equal(t, map[string]int{"2pm": 1, "3pm": 2}, r.OptionCounts)

	sum := 0
	for _, c := range r.OptionCounts {
		sum += c
	}
	require.Equal(t, r.TotalResponses, sum)
}

func TestAggregateMultipleChoice(t *testing.T) {
	questions := []model.Question{{
		ID:      "q1",
		Text:    "Which activities does your child enjoy?",
		Type:    model.QuestionTypeMultipleChoice,
		Options: []string{"painting", "music", "outdoor play"},
	}}
	responses := []model.RawResponse{
		{QuestionID: "q1", SelectedOptions: []string{"painting", "music"}},
		{QuestionID: "q1", SelectedOptions: []string{"outdoor play"}},
	}

	r := Aggregate(questions, responses)[0]
	// Each respondent counts once even when they pick several options.
	require.Equal(t, 2, r.TotalResponses)

	sum := 0
	for _, c := range r.OptionCounts {
		sum += c
	}
	require.Equal(t, 3, sum)
	require.GreaterOrEqual(t, sum, r.TotalResponses)
}

func TestAggregateRating(t *testing.T) {
	questions := []model.Question{{ID: "q1", Text: "Rate our communication", Type: model.QuestionTypeRating}}
	responses := []model.RawResponse{
		{QuestionID: "q1", RatingValue: 5},
		{QuestionID: "q1", RatingValue: 4},
		{QuestionID: "q1", RatingValue: 4},
	}

	r := Aggregate(questions, responses)[0]
	require.Equal(t, 3, r.TotalResponses)
	require.Equal(t, []int{5, 4, 4}, r.Ratings)
	require.Len(t, r.Ratings, r.TotalResponses)
	require.InDelta(t, 13.0/3.0, r.AverageRating, 1e-9)
	require.GreaterOrEqual(t, r.AverageRating, 1.0)
	require.LessOrEqual(t, r.AverageRating, 5.0)
}

func TestAggregateRatingEmpty(t *testing.T) {
	questions := []model.Question{{ID: "q1", Text: "Rate us", Type: model.QuestionTypeRating}}

	r := Aggregate(questions, nil)[0]
	require.Equal(t, 0, r.TotalResponses)
	require.Equal(t, float64(0), r.AverageRating)
	require.Empty(t, r.Ratings)
}

func TestAggregateRatingOutOfRange(t *testing.T) {
	questions := []model.Question{{ID: "q1", Text: "Rate us", Type: model.QuestionTypeRating}}
	responses := []model.RawResponse{
		{QuestionID: "q1", RatingValue: 3},
		{QuestionID: "q1", RatingValue: 9},
	}

	r := Aggregate(questions, responses)[0]
	require.Equal(t, 2, r.TotalResponses)
	require.Equal(t, []int{3}, r.Ratings)
	require.InDelta(t, 3.0, r.AverageRating, 1e-9)
}

func TestAggregateText(t *testing.T) {
	questions := []model.Question{{ID: "q1", Text: "Anything else?", Type: model.QuestionTypeText}}
	responses := []model.RawResponse{
		{QuestionID: "q1", TextValue: "more outdoor time please"},
		{QuestionID: "q1", TextValue: "all good"},
	}

	r := Aggregate(questions, responses)[0]
	require.Equal(t, 2, r.TotalResponses)
	require.Nil(t, r.OptionCounts)
	require.Empty(t, r.Ratings)
}

func TestAggregatePreservesQuestionOrder(t *testing.T) {
	questions := []model.Question{
		{ID: "q2", Text: "second", Type: model.QuestionTypeText},
		{ID: "q1", Text: "first", Type: model.QuestionTypeText},
	}

	results := Aggregate(questions, nil)
	require.Equal(t, "q2", results[0].QuestionID)
	require.Equal(t, "q1", results[1].QuestionID)
}

func TestAggregateIdempotent(t *testing.T) {
	questions := []model.Question{
		yesNoQuestion("q1"),
		{ID: "q2", Text: "Rate us", Type: model.QuestionTypeRating},
		{ID: "q3", Text: "Pick", Type: model.QuestionTypeSingleChoice, Options: []string{"a", "b"}},
	}
	responses := []model.RawResponse{
		{QuestionID: "q1", SelectedOption: model.AnswerYes},
		{QuestionID: "q2", RatingValue: 4},
		{QuestionID: "q3", SelectedOption: "b"},
	}

	first := Aggregate(questions, responses)
	second := Aggregate(questions, responses)
	require.Equal(t, first, second)
}
