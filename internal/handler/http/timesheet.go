package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/handler/http/response"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	GetGrid(w http.ResponseWriter, r *http.Request)
	CommitGrid(w http.ResponseWriter, r *http.Request)
	SetCell(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	Copy(w http.ResponseWriter, r *http.Request)
	Paste(w http.ResponseWriter, r *http.Request)
	Fill(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	Autocomplete(w http.ResponseWriter, r *http.Request)
	AddRowsFromTarget(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Template(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

func monthParams(r *http.Request) (int, time.Month, bool) {
	return validator.ParseMonthParam(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
}

// GetGrid implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	view, err := h.timesheetService.GetGrid(r.Context(), year, month)
	if err != nil {
		slog.Error("GetGrid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// CommitGrid implements TimesheetHandler.
func (h *TimesheetHandlerImpl) CommitGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req timesheet.CommitGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CommitGrid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.timesheetService.CommitGrid(r.Context(), year, month, req)
	if err != nil {
		slog.Error("CommitGrid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, res)
}

// SetCell implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SetCell(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req timesheet.SetCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.timesheetService.SetCell(r.Context(), year, month, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cell updated", nil)
}

// Select implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Select(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req timesheet.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.timesheetService.Select(r.Context(), year, month, req); err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	response.SuccessWithMessage(w, "Selection updated", nil)
}

// Copy implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Copy(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	text, err := h.timesheetService.Copy(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]string{"text": text})
}

// Paste implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Paste(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req timesheet.PasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.timesheetService.Paste(r.Context(), year, month, req.Text); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pasted", nil)
}

// Fill implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Fill(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	if err := h.timesheetService.Fill(r.Context(), year, month); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Filled", nil)
}

// Clear implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	if err := h.timesheetService.ClearSelection(r.Context(), year, month); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cleared", nil)
}

// Autocomplete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Autocomplete(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req timesheet.AutocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	suggestions, err := h.timesheetService.Autocomplete(r.Context(), year, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []timesheet.SuggestionResponse{}
	}
	response.Success(w, map[string]interface{}{"suggestions": suggestions})
}

// AddRowsFromTarget implements TimesheetHandler.
func (h *TimesheetHandlerImpl) AddRowsFromTarget(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}
	targetID := chi.URLParam(r, "targetId")

	if err := h.timesheetService.AddRowsFromTarget(r.Context(), year, month, targetID); err != nil {
		slog.Error("AddRowsFromTarget service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Rows added", nil)
}

// Export implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	data, err := h.timesheetService.Export(r.Context(), year, month)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeWorkbook(w, fmt.Sprintf("timesheet-%04d-%02d.xlsx", year, month), data)
}

// Template implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Template(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	data, err := h.timesheetService.Template(year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeWorkbook(w, fmt.Sprintf("timesheet-template-%04d-%02d.xlsx", year, month), data)
}

// Import implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	res, err := h.timesheetService.Import(r.Context(), year, month, file)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}
	response.Success(w, res)
}

// Stats implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	stats, err := h.timesheetService.Stats(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
