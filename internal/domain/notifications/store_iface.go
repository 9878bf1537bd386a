package notifications

import "context"

type StoreAPI interface {
	Create(ctx context.Context, notification Notification) (int64, error)
	Pending(ctx context.Context) ([]Notification, error)
	All(ctx context.Context) ([]Notification, error)
	CountPending(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
}
