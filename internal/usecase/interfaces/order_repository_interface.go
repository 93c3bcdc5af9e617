package interfaces

import (
	"context"
	"rocket_help/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Close is a conditional write: it only applies while the stored order is
// still open and stamps closed_at with the store's clock. It returns an empty
// Order when the id does not exist and entities.ErrOrderAlreadyClosed when the
// condition fails on an existing order.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByOwner(ctx context.Context, ownerID string, status entities.OrderStatus) ([]entities.Order, error)
	Close(ctx context.Context, id string, solution string) (entities.Order, error)
}
