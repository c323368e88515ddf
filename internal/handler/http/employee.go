package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", created)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	detail, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

// Status implements EmployeeHandler.
func (h *employeeHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.attendanceService.DayStatus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}
