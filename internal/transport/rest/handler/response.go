package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"rawdati/internal/service"
)

// ResponseHandler handles public survey submission
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// Submit handles POST /v1/surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var sub service.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.responseSvc.Submit(r.Context(), surveyID, &sub)
	switch {
	case errors.Is(err, service.ErrSurveyNotFound):
		writeError(w, http.StatusNotFound, "survey not found")
	case errors.Is(err, service.ErrSurveyClosed):
		writeError(w, http.StatusConflict, "survey is not accepting responses")
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
	}
}
