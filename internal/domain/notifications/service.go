package notifications

import "context"

type Service struct {
	store StoreAPI
}

func New(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, notification Notification) (int64, error) {
	return s.store.Create(ctx, notification)
}

func (s *Service) Pending(ctx context.Context) ([]Notification, error) {
	return s.store.Pending(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.CountPending(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.store.MarkRead(ctx, id)
}
