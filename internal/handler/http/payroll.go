package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/guardhq/timesheet-backend-go/internal/domain/payroll"
	"github.com/guardhq/timesheet-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Report implements PayrollHandler.
func (h *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	report, err := h.payrollService.Report(r.Context(), year, month)
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Export implements PayrollHandler.
func (h *PayrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	data, err := h.payrollService.ExportReport(r.Context(), year, month)
	if err != nil {
		slog.Error("Payroll export service error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeWorkbook(w, fmt.Sprintf("payroll-%04d-%02d.xlsx", year, month), data)
}
