package documents

import "context"

type StoreAPI interface {
	Create(ctx context.Context, document Document) (int64, error)
	Get(ctx context.Context, id int64) (Document, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]Document, error)
}
