package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"rawdati/internal/model"
	"rawdati/internal/service"
	"rawdati/internal/transport/rest/middleware"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
	resultSvc *service.ResultService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService, resultSvc *service.ResultService) *SurveyHandler {
	return &SurveyHandler{
		surveySvc: surveySvc,
		resultSvc: resultSvc,
	}
}

// CreateSurveyRequest is the request body for creating a survey
type CreateSurveyRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Type           model.SurveyType     `json:"type"`
	TargetAudience model.TargetAudience `json:"targetAudience"`
	Questions      []model.Question     `json:"questions"`
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	if tenantID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	survey := &model.Survey{
		TenantID:       tenantID,
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
		IsActive:       true,
		Questions:      req.Questions,
	}

	created, err := h.surveySvc.Create(r.Context(), survey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	if tenantID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	surveys, err := h.surveySvc.List(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	survey, err := h.surveySvc.Get(r.Context(), tenantID, surveyID)
	if errors.Is(err, service.ErrSurveyNotFound) {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// SetActiveRequest toggles whether a survey accepts responses
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// SetActive handles PUT /v1/surveys/{surveyId}/active
func (h *SurveyHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.surveySvc.SetActive(r.Context(), tenantID, surveyID, req.IsActive)
	if errors.Is(err, service.ErrSurveyNotFound) {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isActive": req.IsActive})
}

// GetResults handles GET /v1/surveys/{surveyId}/results
func (h *SurveyHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	// Ownership check before exposing aggregates.
	if _, err := h.surveySvc.Get(r.Context(), tenantID, surveyID); err != nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	results, err := h.resultSvc.GetResults(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
