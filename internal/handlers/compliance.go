package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evcomply/compliance-checker-api/internal/models"
	"github.com/evcomply/compliance-checker-api/internal/utils"
)

func (h *ReportHandler) GenerateRequirements(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	reqs, err := h.service.GenerateRequirements(r.Context(), req.TestCases)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.GenerateRequirementsResponse{Requirements: reqs})
}

func (h *ReportHandler) ExportRequirements(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	data, err := h.service.ExportRequirements(r.Context(), req.TestCases)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="requirements.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write export response", "error", err)
	}
}

func (h *ReportHandler) LookupComponent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	part := vars["part"]

	info, err := h.service.LookupComponent(r.Context(), part)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, info)
}

func (h *ReportHandler) AddComponent(w http.ResponseWriter, r *http.Request) {
	var component models.ProjectComponent
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	saved, err := h.service.AddComponent(r.Context(), &component)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, saved)
}

func (h *ReportHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.service.ListComponents(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, components)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}
