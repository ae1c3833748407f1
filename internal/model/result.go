package model

// SurveyResult is the per-question aggregate derived from raw responses.
// Recomputed on demand; never the source of truth.
type SurveyResult struct {
	QuestionID     string       `json:"questionId"`
	QuestionText   string       `json:"questionText"`
	QuestionType   QuestionType `json:"questionType"`
	TotalResponses int          `json:"totalResponses"`

	// yes_no
	YesCount      int     `json:"yesCount,omitempty"`
	NoCount       int     `json:"noCount,omitempty"`
	YesPercentage float64 `json:"yesPercentage,omitempty"` // 0-100, 0 when no responses

	// single_choice / multiple_choice
	OptionCounts map[string]int `json:"optionCounts,omitempty"`

	// rating
	Ratings       []int   `json:"ratings,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"` // mean, 0 when empty
}

// NoPercentage returns the complement of YesPercentage, 0 when there are
// no responses.
func (r *SurveyResult) NoPercentage() float64 {
	if r.TotalResponses == 0 {
		return 0
	}
	return 100 - r.YesPercentage
}
