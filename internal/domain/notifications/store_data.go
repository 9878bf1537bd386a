package notifications

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/platform/db"
)

const notificationColumns = `id, employee_id, notification_type, title, message, due_date, is_read, created_at`

func (s *Store) Create(ctx context.Context, notification Notification) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO notifications (employee_id, notification_type, title, message, due_date)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, notification.EmployeeID, string(notification.Type), notification.Title,
		notification.Message, notification.DueDate).Scan(&id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return id, nil
}

func (s *Store) Pending(ctx context.Context) ([]Notification, error) {
	return s.list(ctx, `
    SELECT `+notificationColumns+`
    FROM notifications
    WHERE is_read = FALSE
    ORDER BY due_date ASC NULLS LAST
  `)
}

func (s *Store) All(ctx context.Context) ([]Notification, error) {
	return s.list(ctx, `
    SELECT `+notificationColumns+`
    FROM notifications
    ORDER BY due_date ASC NULLS LAST
  `)
}

func (s *Store) CountPending(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `SELECT COUNT(1) FROM notifications WHERE is_read = FALSE`).Scan(&count); err != nil {
		return 0, db.MapError(err)
	}
	return count, nil
}

func (s *Store) MarkRead(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) list(ctx context.Context, query string) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		out = append(out, notification)
	}
	return out, rows.Err()
}

func scanNotification(row pgx.Row) (Notification, error) {
	var n Notification
	var ntype string
	err := row.Scan(&n.ID, &n.EmployeeID, &ntype, &n.Title, &n.Message, &n.DueDate, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return Notification{}, err
	}
	n.Type = Type(ntype)
	return n, nil
}
