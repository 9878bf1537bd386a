package leave

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type StoreAPI interface {
	Create(ctx context.Context, request LeaveRequest) (int64, error)
	Get(ctx context.Context, id int64) (LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)

	BeginTx(ctx context.Context) (pgx.Tx, error)
	GetForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (LeaveRequest, error)
	MarkApprovedTx(ctx context.Context, tx pgx.Tx, id int64, approver string, at time.Time) error
	MarkRejectedTx(ctx context.Context, tx pgx.Tx, id int64, reason string, at time.Time) error
	AdjustBalanceTx(ctx context.Context, tx pgx.Tx, employeeID int64, delta int) error
}
