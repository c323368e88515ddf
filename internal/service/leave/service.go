package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
	now       func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		now:       time.Now,
	}
}

func (s *LeaveServiceImpl) authorize(ctx context.Context, op auth.Operation, owner ...int64) (auth.Claims, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return auth.Claims{}, err
	}
	if err := auth.Authorize(claims, op, owner...); err != nil {
		return auth.Claims{}, err
	}
	return claims, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationLeaveApply)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, err := datetime.ParseDate(req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	end, err := datetime.ParseDate(req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := leave.NewLeaveRequest(claims.AccountID, leave.LeaveType(req.LeaveType), start, end, req.Description, s.now())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, req leave.ListLeaveRequest) ([]leave.LeaveRequestResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationLeaveViewOwn)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.list(ctx, leave.LeaveRequestFilter{AccountID: &claims.AccountID, Status: req.StatusFilter()})
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	if _, err := s.authorize(ctx, auth.OperationLeaveViewAll); err != nil {
		return nil, err
	}
	pending := leave.LeaveRequestStatusPending
	return s.list(ctx, leave.LeaveRequestFilter{Status: &pending})
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, req leave.ListLeaveRequest) ([]leave.LeaveRequestResponse, error) {
	if _, err := s.authorize(ctx, auth.OperationLeaveViewAll); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.list(ctx, leave.LeaveRequestFilter{Status: req.StatusFilter()})
}

func (s *LeaveServiceImpl) list(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// Get implements leave.LeaveService. The owner is known only after the read,
// so the gate runs on the loaded request.
func (s *LeaveServiceImpl) Get(ctx context.Context, id int64) (leave.LeaveRequestResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := auth.Authorize(claims, auth.OperationLeaveView, request.AccountID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id int64, outcome leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationLeaveDecide)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !outcome.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidOutcome
	}

	decided, err := s.leaveRepo.Decide(ctx, id, outcome, claims.AccountID, s.now())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request decided", "leave_id", id, "status", outcome, "approver_id", claims.AccountID)
	return leave.NewLeaveRequestResponse(decided), nil
}
