package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evcomply/compliance-checker-api/internal/handlers"
	"github.com/evcomply/compliance-checker-api/internal/middleware"
	"github.com/evcomply/compliance-checker-api/internal/services"
	"github.com/evcomply/compliance-checker-api/internal/utils"
)

func NewRouter(reportService services.ReportService, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	reportHandler := handlers.NewReportHandler(reportService, logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Report endpoints
	api.HandleFunc("/reports/upload", reportHandler.UploadReport).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}/verify", reportHandler.VerifyReport).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}", reportHandler.GetReport).Methods(http.MethodGet)

	// Requirement endpoints
	api.HandleFunc("/requirements/generate", reportHandler.GenerateRequirements).Methods(http.MethodPost)
	api.HandleFunc("/requirements/export", reportHandler.ExportRequirements).Methods(http.MethodPost)

	// Component endpoints
	api.HandleFunc("/components", reportHandler.AddComponent).Methods(http.MethodPost)
	api.HandleFunc("/components", reportHandler.ListComponents).Methods(http.MethodGet)
	api.HandleFunc("/components/{part}", reportHandler.LookupComponent).Methods(http.MethodGet)

	// Dashboard
	api.HandleFunc("/dashboard", reportHandler.Dashboard).Methods(http.MethodGet)

	return r
}
