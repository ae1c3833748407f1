package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rawdati/internal/model"
)

func TestRollupCounts(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	surveys := []model.Survey{
		{ID: "s1", Type: model.SurveyTypeSatisfaction, IsActive: true},
		{ID: "s2", Type: model.SurveyTypeSatisfaction, IsActive: false},
		{ID: "s3", Type: model.SurveyTypeFeedback, IsActive: true},
	}
	responses := []model.ResponseMeta{
		{RespondentType: model.RespondentGuardian, CreatedAt: now},
		{RespondentType: model.RespondentGuardian, CreatedAt: now.AddDate(0, 0, -1)},
		{RespondentType: model.RespondentStaff, CreatedAt: now.AddDate(0, 0, -2)},
	}

	dash := Rollup(surveys, responses, now)
	require.Equal(t, 3, dash.TotalSurveys)
	require.Equal(t, 2, dash.ActiveSurveys)
	require.Equal(t, 3, dash.TotalResponses)
	require.InDelta(t, 1.0, dash.AverageResponseRate, 1e-9)
	require.Equal(t, 2, dash.RespondentsByType[model.RespondentGuardian])
	require.Equal(t, 1, dash.RespondentsByType[model.RespondentStaff])
	require.Equal(t, 2, dash.SurveysByType[model.SurveyTypeSatisfaction])
	require.Equal(t, 1, dash.SurveysByType[model.SurveyTypeFeedback])
}

func TestRollupSevenDayTrend(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	responses := []model.ResponseMeta{
		{RespondentType: model.RespondentGuardian, CreatedAt: now},                      // today
		{RespondentType: model.RespondentGuardian, CreatedAt: now.AddDate(0, 0, -6)},    // window start
		{RespondentType: model.RespondentGuardian, CreatedAt: now.AddDate(0, 0, -7)},    // outside window
		{RespondentType: model.RespondentGuardian, CreatedAt: now.AddDate(0, 0, -3)},    // mid-window
		{RespondentType: model.RespondentGuardian, CreatedAt: now.Add(-23 * time.Hour)}, // still today
	}

	dash := Rollup([]model.Survey{{ID: "s1"}}, responses, now)
	require.Len(t, dash.ResponsesByDate, 7)

	// Chronological, unique, one entry per consecutive day.
	seen := map[string]bool{}
	for i, dc := range dash.ResponsesByDate {
		require.False(t, seen[dc.Date], "duplicate date %s", dc.Date)
		seen[dc.Date] = true
		expected := now.AddDate(0, 0, i-6).Format("2006-01-02")
		require.Equal(t, expected, dc.Date)
	}

	require.Equal(t, 1, dash.ResponsesByDate[0].Responses) // -6 days
	require.Equal(t, 0, dash.ResponsesByDate[1].Responses)
	require.Equal(t, 1, dash.ResponsesByDate[3].Responses) // -3 days
	require.Equal(t, 2, dash.ResponsesByDate[6].Responses) // today
}

func TestRollupEmpty(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	dash := Rollup(nil, nil, now)
	require.Equal(t, 0, dash.TotalSurveys)
	require.Equal(t, float64(0), dash.AverageResponseRate)
	require.Len(t, dash.ResponsesByDate, 7)
	for _, dc := range dash.ResponsesByDate {
		require.Equal(t, 0, dc.Responses)
	}
}
