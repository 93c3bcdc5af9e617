package helpdesksdk

import (
	"context"

	"rocket_help/pkg/dateformat"
)

// OrderService is the part of the API the order views need.
type OrderService interface {
	ListOrders(ctx context.Context, status Status) ([]Order, error)
	GetOrder(ctx context.Context, id string) (Order, error)
	CreateOrder(ctx context.Context, patrimony, description string) (Order, error)
	CloseOrder(ctx context.Context, id, solution string) (Order, error)
}

var _ OrderService = (*Client)(nil)

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID        string
	Patrimony string
	When      string
	Status    Status
}

func (c viewConfig) summarize(o Order) OrderSummary {
	return OrderSummary{
		ID:        o.ID,
		Patrimony: o.Patrimony,
		When:      dateformat.Format(o.CreatedAt, c.locale, c.location),
		Status:    o.Status,
	}
}
