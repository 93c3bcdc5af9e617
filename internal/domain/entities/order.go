package entities

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle of a support request.
//
// The only permitted transition is open -> closed.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

// ErrOrderAlreadyClosed is returned by the store when a close finds the order
// no longer open.
var ErrOrderAlreadyClosed = errors.New("order already closed")

func (s OrderStatus) Valid() bool {
	return s == OrderStatusOpen || s == OrderStatusClosed
}

// Order is an equipment-support request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id, sorted by created_at
//
// ClosedAt is nil while the order is open and set exactly once when it closes.
type Order struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Patrimony   string      `json:"patrimony"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`
	Solution    string      `json:"solution,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	ClosedAt    *time.Time  `json:"closed_at,omitempty"`
}

func (o Order) IsClosed() bool {
	return o.Status == OrderStatusClosed
}
