package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"rawdati/internal/cache"
	"rawdati/internal/model"
	"rawdati/internal/repository"
)

var ErrSurveyClosed = errors.New("survey is not accepting responses")

// Answer is one question's answer inside a submission payload.
type Answer struct {
	QuestionID      string   `json:"questionId" validate:"required"`
	TextValue       string   `json:"textValue,omitempty"`
	SelectedOption  string   `json:"selectedOption,omitempty"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
	RatingValue     int      `json:"ratingValue,omitempty" validate:"omitempty,min=1,max=5"`
}

// Submission is one respondent's full answer set for a survey.
type Submission struct {
	RespondentType model.RespondentType `json:"respondentType" validate:"omitempty,oneof=guardian staff unknown"`
	Answers        []Answer             `json:"answers" validate:"required,min=1,dive"`
}

// ResponseService stores anonymous survey submissions
type ResponseService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	resultsCache cache.ResultsCache
	validate     *validator.Validate
}

// NewResponseService creates a new response service
func NewResponseService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo, resultsCache cache.ResultsCache) *ResponseService {
	return &ResponseService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		resultsCache: resultsCache,
		validate:     validator.New(),
	}
}

// Submit validates a submission against the survey's questions and
// appends one RawResponse row per answered question. All rows share a
// submission ID; no respondent identity is stored.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, sub *Submission) error {
	if err := s.validate.Struct(sub); err != nil {
		return err
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return ErrSurveyNotFound
	}
	if !survey.IsActive {
		return ErrSurveyClosed
	}

	questions := make(map[string]model.Question, len(survey.Questions))
	for _, q := range survey.Questions {
		questions[q.ID] = q
	}

	if sub.RespondentType == "" {
		sub.RespondentType = model.RespondentUnknown
	}

	submissionID := uuid.New().String()
	now := time.Now()
	rows := make([]model.RawResponse, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			return fmt.Errorf("unknown question %q", a.QuestionID)
		}
		if err := checkAnswer(q, a); err != nil {
			return err
		}
		rows = append(rows, model.RawResponse{
			SurveyID:        surveyID,
			QuestionID:      a.QuestionID,
			SubmissionID:    submissionID,
			RespondentType:  sub.RespondentType,
			TextValue:       a.TextValue,
			SelectedOption:  a.SelectedOption,
			SelectedOptions: a.SelectedOptions,
			RatingValue:     a.RatingValue,
			CreatedAt:       now,
		})
	}

	// Required questions must all be present.
	for _, q := range survey.Questions {
		if !q.Required {
			continue
		}
		found := false
		for _, a := range sub.Answers {
			if a.QuestionID == q.ID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %q requires an answer", q.ID)
		}
	}

	if err := s.responseRepo.CreateMany(ctx, rows); err != nil {
		return err
	}

	// Stale aggregates are tolerable, a failed invalidation is not fatal.
	if err := s.resultsCache.Invalidate(ctx, surveyID); err != nil {
		log.Printf("[Responses] cache invalidation failed for survey %s: %v", surveyID, err)
	}
	return nil
}

// checkAnswer enforces the value shape the question type expects.
func checkAnswer(q model.Question, a Answer) error {
	switch q.Type {
	case model.QuestionTypeYesNo:
		if a.SelectedOption != model.AnswerYes && a.SelectedOption != model.AnswerNo {
			return fmt.Errorf("question %q expects %q or %q", q.ID, model.AnswerYes, model.AnswerNo)
		}
	case model.QuestionTypeSingleChoice:
		if !containsOption(q.Options, a.SelectedOption) {
			return fmt.Errorf("question %q: %q is not an offered option", q.ID, a.SelectedOption)
		}
	case model.QuestionTypeMultipleChoice:
		if len(a.SelectedOptions) == 0 {
			return fmt.Errorf("question %q expects at least one selection", q.ID)
		}
		for _, opt := range a.SelectedOptions {
			if !containsOption(q.Options, opt) {
				return fmt.Errorf("question %q: %q is not an offered option", q.ID, opt)
			}
		}
	case model.QuestionTypeRating:
		if a.RatingValue < 1 || a.RatingValue > 5 {
			return fmt.Errorf("question %q expects a rating between 1 and 5", q.ID)
		}
	case model.QuestionTypeText:
		if a.TextValue == "" {
			return fmt.Errorf("question %q expects a text answer", q.ID)
		}
	}
	return nil
}

func containsOption(options []string, opt string) bool {
	for _, o := range options {
		if o == opt {
			return true
		}
	}
	return false
}
