package model

import "time"

// SurveyType categorizes a survey for dashboard grouping
type SurveyType string

const (
	SurveyTypeSatisfaction SurveyType = "satisfaction"
	SurveyTypeFeedback     SurveyType = "feedback"
	SurveyTypeEvaluation   SurveyType = "evaluation"
	SurveyTypeGeneral      SurveyType = "general"
)

// TargetAudience is who a survey is addressed to
type TargetAudience string

const (
	AudienceGuardians TargetAudience = "guardians"
	AudienceStaff     TargetAudience = "staff"
	AudienceAll       TargetAudience = "all"
)

// Survey is a persistent questionnaire created by a tenant
type Survey struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	TenantID       string         `json:"tenantId" bson:"tenantId"`
	Title          string         `json:"title" bson:"title"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	Type           SurveyType     `json:"type" bson:"type"`
	TargetAudience TargetAudience `json:"targetAudience" bson:"targetAudience"`
	IsActive       bool           `json:"isActive" bson:"isActive"`
	Questions      []Question     `json:"questions" bson:"questions"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// TenantInfo is the nursery metadata stamped onto exported reports.
// Supplied by the caller; only the name is mandatory.
type TenantInfo struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}
