package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler. The body is optional.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := h.attendanceService.ListMine(r.Context(), attendance.ListAttendanceRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	daily, err := h.attendanceService.ListByDate(r.Context(), attendance.ListByDateRequest{
		Date: r.URL.Query().Get("attendance_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, daily)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	daily, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, daily)
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	month, err := intQuery(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := intQuery(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.Stats(r.Context(), attendance.StatsRequest{Month: month, Year: year})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
