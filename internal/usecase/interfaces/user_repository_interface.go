package interfaces

import (
	"context"
	"rocket_help/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
// Lookups return an empty User when nothing matches.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
