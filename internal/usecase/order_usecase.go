package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyClosed = entities.ErrOrderAlreadyClosed
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrInvalidPatrimony   = errors.New("invalid patrimony")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrSolutionRequired   = errors.New("solution is required to close an order")
)

// IOrderUseCase exposes the support-request lifecycle:
//   - "Nova solicitação" => CreateOrder()
//   - "Meus chamados" (filtered by status) => ListByOwner()
//   - request details => GetByID()
//   - "Encerrar solicitação" => CloseOrder()

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, ownerID, patrimony, description string) (entities.Order, error)
	ListByOwner(ctx context.Context, ownerID string, status entities.OrderStatus) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	CloseOrder(ctx context.Context, id, solution string) (entities.Order, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, logger: logger}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, ownerID, patrimony, description string) (entities.Order, error) {
	ownerID = strings.TrimSpace(ownerID)
	patrimony = strings.TrimSpace(patrimony)
	description = strings.TrimSpace(description)
	if ownerID == "" {
		return entities.Order{}, ErrInvalidOwnerID
	}
	if patrimony == "" {
		return entities.Order{}, ErrInvalidPatrimony
	}
	if description == "" {
		return entities.Order{}, ErrInvalidDescription
	}

	o := entities.Order{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Patrimony:   patrimony,
		Description: description,
		Status:      entities.OrderStatusOpen,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.logger.Error("[order][usecase] create failed", zap.String("owner_id", ownerID), zap.Error(err))
		return entities.Order{}, err
	}
	u.logger.Info("[order][usecase] order opened", zap.String("order_id", created.ID), zap.String("patrimony", created.Patrimony))
	return created, nil
}

// ListByOwner returns the owner's orders; an empty status lists every status.
func (u *OrderUseCase) ListByOwner(ctx context.Context, ownerID string, status entities.OrderStatus) ([]entities.Order, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	return u.repo.ListByOwner(ctx, ownerID, status)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// CloseOrder performs the only permitted transition, open -> closed. A blank
// solution is rejected before any write is issued.
func (u *OrderUseCase) CloseOrder(ctx context.Context, id, solution string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	solution = strings.TrimSpace(solution)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if solution == "" {
		return entities.Order{}, ErrSolutionRequired
	}

	closed, err := u.repo.Close(ctx, id, solution)
	if err != nil {
		if errors.Is(err, entities.ErrOrderAlreadyClosed) {
			u.logger.Info("[order][usecase] close rejected, already closed", zap.String("order_id", id))
			return entities.Order{}, ErrOrderAlreadyClosed
		}
		u.logger.Error("[order][usecase] close failed", zap.String("order_id", id), zap.Error(err))
		return entities.Order{}, err
	}
	if closed.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if closed.Status != entities.OrderStatusClosed || closed.ClosedAt == nil {
		return entities.Order{}, fmt.Errorf("order %s: store returned inconsistent close result (status=%s)", id, closed.Status)
	}
	u.logger.Info("[order][usecase] order closed", zap.String("order_id", id), zap.Time("closed_at", *closed.ClosedAt))
	return closed, nil
}
