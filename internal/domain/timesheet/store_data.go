package timesheet

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/platform/db"
)

const entryColumns = `id, employee_id, entry_date, check_in, check_out, work_mode, notes, created_at`

func (s *Store) Create(ctx context.Context, entry TimeEntry) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (employee_id, entry_date, check_in, check_out, work_mode, notes)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, entry.EmployeeID, entry.Date, entry.CheckIn, entry.CheckOut, string(entry.WorkMode), entry.Notes).Scan(&id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (TimeEntry, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+entryColumns+` FROM time_entries WHERE id = $1`, id)
	entry, err := scanEntry(row)
	if err != nil {
		return TimeEntry{}, db.MapError(err)
	}
	return entry, nil
}

func (s *Store) List(ctx context.Context, employeeID int64, from, to *time.Time) ([]TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE employee_id = $1`
	args := []any{employeeID}
	if from != nil {
		args = append(args, *from)
		query += ` AND entry_date >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND entry_date <= $3`
		} else {
			query += ` AND entry_date <= $2`
		}
	}
	query += ` ORDER BY entry_date DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	var out []TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// OpenEntry returns the employee's entry for the given day that has a
// check-in but no check-out yet.
func (s *Store) OpenEntry(ctx context.Context, employeeID int64, day time.Time) (TimeEntry, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+entryColumns+`
    FROM time_entries
    WHERE employee_id = $1 AND entry_date = $2 AND check_in IS NOT NULL AND check_out IS NULL
    ORDER BY check_in DESC
    LIMIT 1
  `, employeeID, day)
	entry, err := scanEntry(row)
	if err != nil {
		return TimeEntry{}, db.MapError(err)
	}
	return entry, nil
}

func (s *Store) SetCheckOut(ctx context.Context, id int64, at time.Time) error {
	tag, err := s.DB.Exec(ctx, `UPDATE time_entries SET check_out = $1 WHERE id = $2`, at, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (TimeEntry, error) {
	var t TimeEntry
	var workMode string
	if err := row.Scan(&t.ID, &t.EmployeeID, &t.Date, &t.CheckIn, &t.CheckOut, &workMode, &t.Notes, &t.CreatedAt); err != nil {
		return TimeEntry{}, err
	}
	t.WorkMode = employees.WorkMode(workMode)
	return t, nil
}
