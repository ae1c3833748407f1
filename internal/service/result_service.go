package service

import (
	"context"
	"log"

	"rawdati/internal/cache"
	"rawdati/internal/model"
	"rawdati/internal/repository"
	"rawdati/internal/stats"
)

// ResultService computes per-question aggregates, cache-aside over
// Redis. Aggregation itself is the pure stats.Aggregate; this service
// only supplies its inputs.
type ResultService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	resultsCache cache.ResultsCache
}

// NewResultService creates a new result service
func NewResultService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo, resultsCache cache.ResultsCache) *ResultService {
	return &ResultService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		resultsCache: resultsCache,
	}
}

// GetResults returns the current aggregates for a survey.
func (s *ResultService) GetResults(ctx context.Context, surveyID string) ([]model.SurveyResult, error) {
	if cached, err := s.resultsCache.Get(ctx, surveyID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("[Results] cache read failed for survey %s: %v", surveyID, err)
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	results := stats.Aggregate(survey.Questions, responses)

	if err := s.resultsCache.Set(ctx, surveyID, results); err != nil {
		log.Printf("[Results] cache write failed for survey %s: %v", surveyID, err)
	}
	return results, nil
}

// FetchResults is the best-effort variant the export pipeline consumes:
// any failure degrades to an empty result set instead of propagating.
func (s *ResultService) FetchResults(ctx context.Context, surveyID string) ([]model.SurveyResult, error) {
	results, err := s.GetResults(ctx, surveyID)
	if err != nil {
		log.Printf("[Results] degraded to empty results for survey %s: %v", surveyID, err)
		return []model.SurveyResult{}, nil
	}
	return results, nil
}
