package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kalarp/employee-management-system/internal/platform/db"
)

// Notifier is told about decided requests. Implementations must not
// block approval on delivery failure.
type Notifier interface {
	LeaveDecided(ctx context.Context, request LeaveRequest, approved bool)
}

type Service struct {
	Store  StoreAPI
	Notify Notifier
}

func NewService(store StoreAPI, notify Notifier) *Service {
	return &Service{Store: store, Notify: notify}
}

// Submit validates and persists a new request in the Pending state.
func (s *Service) Submit(ctx context.Context, request LeaveRequest) (int64, error) {
	if err := Validate(request); err != nil {
		return 0, err
	}
	return s.Store.Create(ctx, request)
}

func (s *Service) Get(ctx context.Context, id int64) (LeaveRequest, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]LeaveRequest, error) {
	return s.Store.List(ctx, filter)
}

// Approve moves a pending request to Approved and decrements the
// employee's remaining balance by the request's day count, both inside
// one transaction. It reports false without error when the request is
// missing or no longer pending; the balance is never clamped at zero.
func (s *Service) Approve(ctx context.Context, requestID int64, approver string) (bool, error) {
	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	request, err := s.Store.GetForUpdateTx(ctx, tx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !request.IsPending() {
		return false, nil
	}

	now := time.Now()
	if err := s.Store.MarkApprovedTx(ctx, tx, requestID, approver, now); err != nil {
		return false, err
	}
	if err := s.Store.AdjustBalanceTx(ctx, tx, request.EmployeeID, -request.DaysCount); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	request.Status = StatusApproved
	request.ApprovedBy = &approver
	request.ApprovedDate = &now
	s.notifyDecision(ctx, request, true)
	return true, nil
}

// Reject moves a pending request to Rejected. Balances are untouched.
func (s *Service) Reject(ctx context.Context, requestID int64, reason string) (bool, error) {
	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	request, err := s.Store.GetForUpdateTx(ctx, tx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !request.IsPending() {
		return false, nil
	}

	if err := s.Store.MarkRejectedTx(ctx, tx, requestID, reason, time.Now()); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	request.Status = StatusRejected
	request.RejectionReason = reason
	s.notifyDecision(ctx, request, false)
	return true, nil
}

func (s *Service) notifyDecision(ctx context.Context, request LeaveRequest, approved bool) {
	if s.Notify == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("leave decision notifier panicked", "requestId", request.ID, "panic", r)
		}
	}()
	s.Notify.LeaveDecided(ctx, request, approved)
}
