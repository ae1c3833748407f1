package model

// DateCount is one day's response volume in the dashboard trend.
type DateCount struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Responses int    `json:"responses"`
}

// DashboardStats is the cross-survey rollup shown on the tenant dashboard.
type DashboardStats struct {
	TotalSurveys        int                    `json:"totalSurveys"`
	ActiveSurveys       int                    `json:"activeSurveys"`
	TotalResponses      int                    `json:"totalResponses"`
	AverageResponseRate float64                `json:"averageResponseRate"` // responses per survey
	RespondentsByType   map[RespondentType]int `json:"respondentsByType"`
	SurveysByType       map[SurveyType]int     `json:"surveysByType"`
	ResponsesByDate     []DateCount            `json:"responsesByDate"` // 7 days ending today, oldest first
}
