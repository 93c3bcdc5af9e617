package request

import (
	"strings"

	"rocket_help/internal/domain/entities"
)

type CreateOrderRequest struct {
	Patrimony   string `json:"patrimony" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CloseOrderRequest is the body of PATCH /orders/:id/close.
type CloseOrderRequest struct {
	Solution string `json:"solution"`
}

type ListOrdersQuery struct {
	Status string `form:"status"`
}

// ResolveStatus returns the status filter; empty means every status.
func (q ListOrdersQuery) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(q.Status)))
}
