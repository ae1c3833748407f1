package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"rawdati/internal/model"
	"rawdati/internal/service"
	"rawdati/internal/stats"
	"rawdati/internal/transport/rest/middleware"
)

// DashboardHandler handles the on-screen analytics endpoints
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
	surveySvc    *service.SurveyService
	resultSvc    *service.ResultService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardSvc *service.DashboardService, surveySvc *service.SurveyService, resultSvc *service.ResultService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		surveySvc:    surveySvc,
		resultSvc:    resultSvc,
	}
}

// GetStats handles GET /v1/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	if tenantID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dash, err := h.dashboardSvc.GetStats(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

// GetCharts handles GET /v1/surveys/{surveyId}/charts: the renderable
// chart specs for a survey's current aggregates.
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	if _, err := h.surveySvc.Get(r.Context(), tenantID, surveyID); err != nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}

	results, err := h.resultSvc.GetResults(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	charts := make([]model.ChartSpec, 0, len(results))
	for _, res := range results {
		charts = append(charts, stats.PresentChart(res))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"charts": charts})
}
