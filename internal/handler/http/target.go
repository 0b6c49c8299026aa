package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/handler/http/response"
)

type TargetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddToRoster(w http.ResponseWriter, r *http.Request)
	RemoveFromRoster(w http.ResponseWriter, r *http.Request)
}

type TargetHandlerImpl struct {
	targetService target.TargetService
}

func NewTargetHandler(targetService target.TargetService) TargetHandler {
	return &TargetHandlerImpl{targetService: targetService}
}

// List implements TargetHandler.
func (h *TargetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	targets, err := h.targetService.List(r.Context())
	if err != nil {
		slog.Error("List targets error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, targets)
}

// Get implements TargetHandler.
func (h *TargetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.targetService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Create implements TargetHandler.
func (h *TargetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req target.CreateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create target decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.targetService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create target service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Target created", created)
}

// Update implements TargetHandler.
func (h *TargetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req target.UpdateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update target decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.targetService.Update(r.Context(), id, req); err != nil {
		slog.Error("Update target service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Target updated", nil)
}

// Delete implements TargetHandler.
func (h *TargetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.targetService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete target service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Target deleted", nil)
}

type rosterRequest struct {
	EmployeeID string `json:"employee_id"`
	Shift      string `json:"shift"`
}

// AddToRoster implements TargetHandler.
func (h *TargetHandlerImpl) AddToRoster(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req rosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.targetService.AddToRoster(r.Context(), id, req.EmployeeID, req.Shift); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee added to roster", nil)
}

// RemoveFromRoster implements TargetHandler.
func (h *TargetHandlerImpl) RemoveFromRoster(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeId")

	if err := h.targetService.RemoveFromRoster(r.Context(), id, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee removed from roster", nil)
}
