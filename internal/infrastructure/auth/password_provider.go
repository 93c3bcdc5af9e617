package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// PasswordProvider checks email/password pairs against the users table.
type PasswordProvider struct {
	users    interfaces.IUserRepository
	validate *validator.Validate
}

var _ interfaces.IAuthProvider = (*PasswordProvider)(nil)

func NewPasswordProvider(users interfaces.IUserRepository) *PasswordProvider {
	return &PasswordProvider{users: users, validate: validator.New()}
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := p.validate.Var(email, "required,email"); err != nil {
		return entities.User{}, &interfaces.AuthError{Code: interfaces.AuthCodeInvalidEmail, Err: err}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, &interfaces.AuthError{Code: interfaces.AuthCodeInternal, Err: err}
	}
	if user.ID == "" {
		return entities.User{}, &interfaces.AuthError{Code: interfaces.AuthCodeUserNotFound}
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entities.User{}, &interfaces.AuthError{Code: interfaces.AuthCodeWrongPassword}
		}
		return entities.User{}, &interfaces.AuthError{Code: interfaces.AuthCodeInternal, Err: err}
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
