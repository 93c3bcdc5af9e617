package usecase

import (
	"context"
	"errors"
	"strings"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrWeakPassword = errors.New("password must have at least 6 characters")
)

const minPasswordLength = 6

// PasswordHasher turns a plain password into a storable hash.
type PasswordHasher func(password string) (string, error)

type IUserUseCase interface {
	Register(ctx context.Context, email, name, password string) (entities.User, error)
}

type UserUseCase struct {
	repo     interfaces.IUserRepository
	hash     PasswordHasher
	validate *validator.Validate
	logger   *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, hash PasswordHasher, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, hash: hash, validate: validator.New(), logger: logger}
}

func (u *UserUseCase) Register(ctx context.Context, email, name, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}
	if err := u.validate.Var(email, "email"); err != nil {
		return entities.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := u.hash(password)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.repo.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		u.logger.Error("[user][usecase] create failed", zap.String("email", email), zap.Error(err))
		return entities.User{}, err
	}
	u.logger.Info("[user][usecase] registered", zap.String("user_id", created.ID))
	return created, nil
}
