package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"rawdati/internal/service"
	"rawdati/internal/transport/rest/handler"
	"rawdati/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	SurveyService    *service.SurveyService
	ResponseService  *service.ResponseService
	ResultService    *service.ResultService
	DashboardService *service.DashboardService
	ExportService    *service.ExportService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService, c.ResultService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardService, c.SurveyService, c.ResultService)
	exportHandler := handler.NewExportHandler(c.SurveyService, c.ExportService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Tenant routes (require tenant auth)
	tenantRoutes := v1.NewRoute().Subrouter()
	tenantRoutes.Use(authMW.RequireTenant)

	tenantRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys/{surveyId}/active", surveyHandler.SetActive).Methods("PUT", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys/{surveyId}/results", surveyHandler.GetResults).Methods("GET", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys/{surveyId}/charts", dashboardHandler.GetCharts).Methods("GET", "OPTIONS")
	tenantRoutes.HandleFunc("/surveys/{surveyId}/export", exportHandler.Export).Methods("POST", "OPTIONS")
	tenantRoutes.HandleFunc("/dashboard/stats", dashboardHandler.GetStats).Methods("GET", "OPTIONS")

	return r
}

// corsMiddleware allows the dashboard frontend to call the API
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
