package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rocket_help/internal/domain/entities"
	mock_interfaces "rocket_help/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestOrderUseCase_CreateOrder(t *testing.T) {
	cases := []struct {
		name        string
		owner       string
		patrimony   string
		description string
		want        error
	}{
		{name: "invalid owner", owner: " ", patrimony: "9231123", description: "no video", want: ErrInvalidOwnerID},
		{name: "invalid patrimony", owner: "u-1", patrimony: "", description: "no video", want: ErrInvalidPatrimony},
		{name: "invalid description", owner: "u-1", patrimony: "9231123", description: "  ", want: ErrInvalidDescription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewOrderUseCase(nil, zap.NewNop())
			_, err := uc.CreateOrder(context.Background(), tc.owner, tc.patrimony, tc.description)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "u-1", "9231123", "no video")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success opens order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.OwnerID != "u-1" || o.Patrimony != "9231123" || o.Description != "no video" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusOpen || o.Solution != "" || o.ClosedAt != nil {
					t.Fatalf("new order must be open without solution: %+v", o)
				}
				o.CreatedAt = time.Now().UTC()
				return o, nil
			},
		)

		res, err := uc.CreateOrder(context.Background(), " u-1 ", " 9231123 ", " no video ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestOrderUseCase_ListByOwner(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewOrderUseCase(nil, zap.NewNop())
		_, err := uc.ListByOwner(context.Background(), "", entities.OrderStatusOpen)
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, zap.NewNop())
		_, err := uc.ListByOwner(context.Background(), "u-1", entities.OrderStatus("pending"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("all statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		repo.EXPECT().ListByOwner(gomock.Any(), "u-1", entities.OrderStatus("")).Return([]entities.Order{{ID: "1"}, {ID: "2"}}, nil)

		res, err := uc.ListByOwner(context.Background(), "u-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(res))
		}
	})

	t.Run("filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		repo.EXPECT().ListByOwner(gomock.Any(), "u-1", entities.OrderStatusClosed).Return([]entities.Order{}, nil)

		res, err := uc.ListByOwner(context.Background(), "u-1", entities.OrderStatusClosed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected no orders, got %d", len(res))
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Order{ID: "1", Patrimony: "9231123", Status: entities.OrderStatusOpen}, nil)

		res, err := uc.GetByID(context.Background(), " 1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Patrimony != "9231123" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestOrderUseCase_CloseOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, zap.NewNop())
		_, err := uc.CloseOrder(context.Background(), "", "Replaced cable")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty solution never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		for _, solution := range []string{"", "   ", "\n\t"} {
			_, err := uc.CloseOrder(context.Background(), "1", solution)
			if !errors.Is(err, ErrSolutionRequired) {
				t.Fatalf("expected ErrSolutionRequired for %q, got %v", solution, err)
			}
		}
	})

	t.Run("already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().Close(gomock.Any(), "1", "Replaced cable").Return(entities.Order{}, entities.ErrOrderAlreadyClosed)

		_, err := uc.CloseOrder(context.Background(), "1", "Replaced cable")
		if !errors.Is(err, ErrOrderAlreadyClosed) {
			t.Fatalf("expected ErrOrderAlreadyClosed, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().Close(gomock.Any(), "1", "Replaced cable").Return(entities.Order{}, nil)

		_, err := uc.CloseOrder(context.Background(), "1", "Replaced cable")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().Close(gomock.Any(), "1", "Replaced cable").Return(entities.Order{}, errors.New("db"))

		_, err := uc.CloseOrder(context.Background(), "1", "Replaced cable")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("inconsistent store result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())
		repo.EXPECT().Close(gomock.Any(), "1", "Replaced cable").Return(entities.Order{ID: "1", Status: entities.OrderStatusClosed}, nil)

		if _, err := uc.CloseOrder(context.Background(), "1", "Replaced cable"); err == nil {
			t.Fatalf("expected error for closed order without closed_at")
		}
	})

	t.Run("success issues exactly one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, zap.NewNop())

		closedAt := time.Now().UTC()
		repo.EXPECT().Close(gomock.Any(), "1", "Replaced cable").Times(1).Return(entities.Order{
			ID:        "1",
			Patrimony: "9231123",
			Status:    entities.OrderStatusClosed,
			Solution:  "Replaced cable",
			ClosedAt:  &closedAt,
		}, nil)

		res, err := uc.CloseOrder(context.Background(), " 1 ", " Replaced cable ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusClosed || res.Solution != "Replaced cable" || res.ClosedAt == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
