package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/platform/db"
)

const requestColumns = `id, employee_id, leave_type, start_date, end_date, days_count,
    reason, status, approved_by, approved_date, COALESCE(rejection_reason, ''), created_at`

func (s *Store) Create(ctx context.Context, request LeaveRequest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, days_count, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, request.EmployeeID, string(request.LeaveType), request.StartDate, request.EndDate,
		request.DaysCount, request.Reason, string(StatusPending)).Scan(&id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (LeaveRequest, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id)
	request, err := scanRequest(row)
	if err != nil {
		return LeaveRequest{}, db.MapError(err)
	}
	return request, nil
}

func (s *Store) List(ctx context.Context, filter Filter) ([]LeaveRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM leave_requests WHERE 1=1`
	var args []any
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	var out []LeaveRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		out = append(out, request)
	}
	return out, rows.Err()
}

func (s *Store) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.DB.BeginTx(ctx, pgx.TxOptions{})
}

func (s *Store) GetForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (LeaveRequest, error) {
	row := tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1 FOR UPDATE`, id)
	request, err := scanRequest(row)
	if err != nil {
		return LeaveRequest{}, db.MapError(err)
	}
	return request, nil
}

func (s *Store) MarkApprovedTx(ctx context.Context, tx pgx.Tx, id int64, approver string, at time.Time) error {
	tag, err := tx.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, approved_by = $2, approved_date = $3
    WHERE id = $4
  `, string(StatusApproved), approver, at, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) MarkRejectedTx(ctx context.Context, tx pgx.Tx, id int64, reason string, at time.Time) error {
	tag, err := tx.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, rejection_reason = $2, approved_date = $3
    WHERE id = $4
  `, string(StatusRejected), reason, at, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) AdjustBalanceTx(ctx context.Context, tx pgx.Tx, employeeID int64, delta int) error {
	tag, err := tx.Exec(ctx, `
    UPDATE employees
    SET remaining_leave_days = remaining_leave_days + $1, updated_at = now()
    WHERE id = $2
  `, delta, employeeID)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func scanRequest(row pgx.Row) (LeaveRequest, error) {
	var r LeaveRequest
	var leaveType, status string
	err := row.Scan(
		&r.ID, &r.EmployeeID, &leaveType, &r.StartDate, &r.EndDate, &r.DaysCount,
		&r.Reason, &status, &r.ApprovedBy, &r.ApprovedDate, &r.RejectionReason, &r.CreatedAt,
	)
	if err != nil {
		return LeaveRequest{}, err
	}
	r.LeaveType = Type(leaveType)
	r.Status = Status(status)
	return r, nil
}
