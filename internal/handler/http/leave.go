package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApplyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", created)
}

// ListMine implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListMine(r.Context(), leave.ListLeaveRequest{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListAll implements LeaveHandler.
func (l *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListAll(r.Context(), leave.ListLeaveRequest{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := l.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, request)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, leave.LeaveRequestStatusApproved, "Leave request approved successfully")
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, leave.LeaveRequestStatusRejected, "Leave request rejected successfully")
}

func (l *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, outcome leave.LeaveRequestStatus, message string) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := l.leaveService.Decide(r.Context(), id, outcome)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, message, decided)
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}
