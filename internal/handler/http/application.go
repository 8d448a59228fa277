package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/go-chi/chi/v5"
)

type ApplicationHandler interface {
	ListApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	SubmitApplication(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
	}
}

// ListApplications implements ApplicationHandler
func (h *applicationHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := application.ApplicationFilter{
		Pagination: query.ParsePagination(q.Get("page"), q.Get("limit")),
		Status:     q.Get("status"),
		Department: q.Get("department"),
		Search:     q.Get("search"),
	}

	result, err := h.applicationService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetApplication implements ApplicationHandler
func (h *applicationHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	result, err := h.applicationService.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitApplication implements ApplicationHandler
func (h *applicationHandlerImpl) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req application.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.applicationService.SubmitApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted successfully", "application", result)
}

// UpdateStatus implements ApplicationHandler
func (h *applicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	reviewer, _ := auth.IdentityFromContext(r.Context())

	result, err := h.applicationService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req, reviewer)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated successfully", "application", result)
}
