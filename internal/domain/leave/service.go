package leave

import (
	"context"
)

type LeaveService interface {
	Apply(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, req ListLeaveRequest) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context, req ListLeaveRequest) ([]LeaveRequestResponse, error)
	Get(ctx context.Context, id int64) (LeaveRequestResponse, error)
	Decide(ctx context.Context, id int64, outcome LeaveRequestStatus) (LeaveRequestResponse, error)
}
