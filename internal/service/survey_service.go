package service

import (
	"context"
	"errors"
	"fmt"

	"rawdati/internal/model"
	"rawdati/internal/repository"
)

var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService handles survey CRUD on top of the survey repository
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo}
}

// Create validates and stores a new survey. Question IDs are assigned
// sequentially when the caller leaves them blank.
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (*model.Survey, error) {
	if err := validateQuestions(survey.Questions); err != nil {
		return nil, err
	}
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}
	if survey.Type == "" {
		survey.Type = model.SurveyTypeGeneral
	}
	if survey.TargetAudience == "" {
		survey.TargetAudience = model.AudienceAll
	}

	id, err := s.surveyRepo.Create(ctx, survey)
	if err != nil {
		return nil, err
	}
	survey.ID = id
	return survey, nil
}

// Get returns one survey owned by the tenant.
func (s *SurveyService) Get(ctx context.Context, tenantID, surveyID string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil || survey.TenantID != tenantID {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// List returns all of a tenant's surveys.
func (s *SurveyService) List(ctx context.Context, tenantID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByTenantID(ctx, tenantID)
}

// SetActive opens or closes a survey for responses.
func (s *SurveyService) SetActive(ctx context.Context, tenantID, surveyID string, active bool) error {
	if _, err := s.Get(ctx, tenantID, surveyID); err != nil {
		return err
	}
	return s.surveyRepo.SetActive(ctx, surveyID, active)
}

func validateQuestions(questions []model.Question) error {
	if len(questions) == 0 {
		return errors.New("survey needs at least one question")
	}
	for i, q := range questions {
		if q.Text == "" {
			return fmt.Errorf("question %d: text is required", i+1)
		}
		if !q.Type.IsValid() {
			return fmt.Errorf("question %d: unknown type %q", i+1, q.Type)
		}
		if q.Type.HasOptions() && len(q.Options) < 2 {
			return fmt.Errorf("question %d: choice questions need at least two options", i+1)
		}
		if !q.Type.HasOptions() && len(q.Options) > 0 {
			return fmt.Errorf("question %d: type %q does not take options", i+1, q.Type)
		}
	}
	return nil
}
