package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewSalaryHandler(payrollService payroll.PayrollService) SalaryHandler {
	return &salaryHandlerImpl{payrollService: payrollService}
}

func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown, err := h.payrollService.GetSalary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, breakdown)
}

func (h *salaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := h.payrollService.UpdateSalary(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary structure updated successfully", breakdown)
}
