package service

import (
	"context"
	"log"
	"time"

	"rawdati/internal/cache"
	"rawdati/internal/model"
	"rawdati/internal/repository"
	"rawdati/internal/stats"
)

// DashboardService produces the cross-survey rollup for the tenant
// dashboard, cache-aside over Redis.
type DashboardService struct {
	surveyRepo     repository.SurveyRepo
	responseRepo   repository.ResponseRepo
	dashboardCache cache.DashboardCache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo, dashboardCache cache.DashboardCache) *DashboardService {
	return &DashboardService{
		surveyRepo:     surveyRepo,
		responseRepo:   responseRepo,
		dashboardCache: dashboardCache,
	}
}

// GetStats returns the tenant's dashboard rollup.
func (s *DashboardService) GetStats(ctx context.Context, tenantID string) (*model.DashboardStats, error) {
	if cached, err := s.dashboardCache.Get(ctx, tenantID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("[Dashboard] cache read failed for tenant %s: %v", tenantID, err)
	}

	surveyPtrs, err := s.surveyRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	surveys := make([]model.Survey, 0, len(surveyPtrs))
	surveyIDs := make([]string, 0, len(surveyPtrs))
	for _, sv := range surveyPtrs {
		surveys = append(surveys, *sv)
		surveyIDs = append(surveyIDs, sv.ID)
	}

	meta, err := s.responseRepo.GetMetaBySurveyIDs(ctx, surveyIDs)
	if err != nil {
		return nil, err
	}

	rollup := stats.Rollup(surveys, meta, time.Now())

	if err := s.dashboardCache.Set(ctx, tenantID, &rollup); err != nil {
		log.Printf("[Dashboard] cache write failed for tenant %s: %v", tenantID, err)
	}
	return &rollup, nil
}
