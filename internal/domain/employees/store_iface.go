package employees

import "context"

type StoreAPI interface {
	Create(ctx context.Context, employee Employee) (int64, error)
	Get(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id int64) error
}
