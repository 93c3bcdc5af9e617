package response

import (
	"time"

	"rocket_help/internal/domain/entities"
)

type OrderResponse struct {
	ID          string     `json:"id"`
	Patrimony   string     `json:"patrimony"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Solution    string     `json:"solution,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Patrimony:   o.Patrimony,
		Description: o.Description,
		Status:      string(o.Status),
		Solution:    o.Solution,
		CreatedAt:   o.CreatedAt,
		ClosedAt:    o.ClosedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
