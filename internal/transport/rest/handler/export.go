package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"rawdati/internal/model"
	"rawdati/internal/service"
	"rawdati/internal/transport/rest/middleware"
)

// ExportHandler handles report export endpoints
type ExportHandler struct {
	surveySvc *service.SurveyService
	exportSvc *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(surveySvc *service.SurveyService, exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{
		surveySvc: surveySvc,
		exportSvc: exportSvc,
	}
}

// ExportRequest carries the tenant metadata stamped onto the report
type ExportRequest struct {
	Tenant model.TenantInfo `json:"tenant"`
}

// httpEmitter streams the artifact as a download response.
type httpEmitter struct {
	w http.ResponseWriter
}

func (e *httpEmitter) EmitFile(artifact *model.ExportArtifact) error {
	e.w.Header().Set("Content-Type", artifact.ContentType)
	e.w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(artifact.Filename)))
	e.w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	_, err := e.w.Write(artifact.Data)
	return err
}

// Export handles POST /v1/surveys/{surveyId}/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
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

	var req ExportRequest
	if r.Body != nil {
		// Tenant block is optional; an empty body exports without it.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Tenant.Name == "" {
		req.Tenant.Name = tenantID
	}

	err = h.exportSvc.ExportReport(r.Context(), survey, req.Tenant, &httpEmitter{w: w})
	if errors.Is(err, service.ErrExportInFlight) {
		writeError(w, http.StatusConflict, "an export is already in progress")
		return
	}
	if err != nil {
		// One user-facing message regardless of which step failed.
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
}
