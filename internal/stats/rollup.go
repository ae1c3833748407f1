package stats

import (
	"time"

	"rawdati/internal/model"
)

// trendDays is the length of the dashboard response trend window.
const trendDays = 7

// Rollup derives the dashboard stats from all of a tenant's surveys and
// the slim response metadata across them. now anchors the 7-day trend
// window (the window covers the 7 calendar days ending on now's day,
// oldest first).
func Rollup(surveys []model.Survey, responses []model.ResponseMeta, now time.Time) model.DashboardStats {
	dash := model.DashboardStats{
		TotalSurveys:      len(surveys),
		TotalResponses:    len(responses),
		RespondentsByType: make(map[model.RespondentType]int),
		SurveysByType:     make(map[model.SurveyType]int),
	}

	for _, s := range surveys {
		if s.IsActive {
			dash.ActiveSurveys++
		}
		dash.SurveysByType[s.Type]++
	}

	if len(surveys) > 0 {
		dash.AverageResponseRate = float64(len(responses)) / float64(len(surveys))
	}

	// Bucket responses per calendar day in now's location.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	perDay := make(map[string]int, trendDays)
	for _, r := range responses {
		dash.RespondentsByType[r.RespondentType]++
		day := r.CreatedAt.In(now.Location()).Format("2006-01-02")
		perDay[day]++
	}

	dash.ResponsesByDate = make([]model.DateCount, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		dash.ResponsesByDate = append(dash.ResponsesByDate, model.DateCount{
			Date:      day,
			Responses: perDay[day],
		})
	}

	return dash
}
