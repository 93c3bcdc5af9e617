package interfaces

import (
	"context"
	"fmt"
	"rocket_help/internal/domain/entities"
	"time"
)

// Auth provider failure codes.
const (
	AuthCodeInvalidEmail  = "auth/invalid-email"
	AuthCodeWrongPassword = "auth/wrong-password"
	AuthCodeUserNotFound  = "auth/user-not-found"
	AuthCodeInternal      = "auth/internal-error"
)

// AuthError is the failure reported by an IAuthProvider.
type AuthError struct {
	Code string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *AuthError) Unwrap() error { return e.Err }

// IAuthProvider verifies email/password credentials.
type IAuthProvider interface {
	SignIn(ctx context.Context, email, password string) (entities.User, error)
}

// TokenClaims is what a verified session token carries.
type TokenClaims struct {
	TokenID   string
	UserID    string
	ExpiresAt time.Time
}

// ITokenIssuer signs and verifies session tokens.
type ITokenIssuer interface {
	Issue(userID string) (token string, claims TokenClaims, err error)
	Verify(token string) (TokenClaims, error)
}

// ISessionRevoker remembers signed-out token ids until they would have expired.
type ISessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
