package timesheet

import (
	"context"
	"time"
)

type StoreAPI interface {
	Create(ctx context.Context, entry TimeEntry) (int64, error)
	Get(ctx context.Context, id int64) (TimeEntry, error)
	List(ctx context.Context, employeeID int64, from, to *time.Time) ([]TimeEntry, error)
	OpenEntry(ctx context.Context, employeeID int64, day time.Time) (TimeEntry, error)
	SetCheckOut(ctx context.Context, id int64, at time.Time) error
}
