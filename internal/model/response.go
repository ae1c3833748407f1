package model

import "time"

// RespondentType is who submitted a response, for dashboard grouping.
// No respondent identity is retained beyond this.
type RespondentType string

const (
	RespondentGuardian RespondentType = "guardian"
	RespondentStaff    RespondentType = "staff"
	RespondentUnknown  RespondentType = "unknown"
)

// RawResponse is one respondent's answer to one question. Exactly one of
// the value fields is set, depending on the question's type. Written once
// per submission, never mutated.
type RawResponse struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	SurveyID        string         `json:"surveyId" bson:"surveyId"`
	QuestionID      string         `json:"questionId" bson:"questionId"`
	SubmissionID    string         `json:"submissionId" bson:"submissionId"` // groups one respondent's answers
	RespondentType  RespondentType `json:"respondentType" bson:"respondentType"`
	TextValue       string         `json:"textValue,omitempty" bson:"textValue,omitempty"`
	SelectedOption  string         `json:"selectedOption,omitempty" bson:"selectedOption,omitempty"`
	SelectedOptions []string       `json:"selectedOptions,omitempty" bson:"selectedOptions,omitempty"`
	RatingValue     int            `json:"ratingValue,omitempty" bson:"ratingValue,omitempty"` // 1..5
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

// ResponseMeta is the slim projection of a RawResponse used for
// dashboard rollups across many surveys.
type ResponseMeta struct {
	RespondentType RespondentType `json:"respondentType" bson:"respondentType"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
}
