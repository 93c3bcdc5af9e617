package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignInFailed       = errors.New("could not sign in")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")
)

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	User      entities.User
	ExpiresAt time.Time
}

// ISessionUseCase owns authentication state on the service side.

type ISessionUseCase interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, claims interfaces.TokenClaims) error
	Authenticate(ctx context.Context, token string) (interfaces.TokenClaims, error)
	CurrentUser(ctx context.Context, userID string) (entities.User, error)
}

type SessionUseCase struct {
	provider interfaces.IAuthProvider
	tokens   interfaces.ITokenIssuer
	revoker  interfaces.ISessionRevoker
	users    interfaces.IUserRepository
	logger   *zap.Logger
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	provider interfaces.IAuthProvider,
	tokens interfaces.ITokenIssuer,
	revoker interfaces.ISessionRevoker,
	users interfaces.IUserRepository,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{provider: provider, tokens: tokens, revoker: revoker, users: users, logger: logger}
}

// SignIn validates locally, then delegates to the auth provider. Wrong password
// and unknown user collapse into ErrInvalidCredentials.
func (u *SessionUseCase) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrMissingCredentials
	}

	user, err := u.provider.SignIn(ctx, email, password)
	if err != nil {
		return Session{}, u.mapProviderError(email, err)
	}

	token, claims, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.logger.Error("[session][usecase] token issue failed", zap.String("user_id", user.ID), zap.Error(err))
		return Session{}, fmt.Errorf("%w: %v", ErrSignInFailed, err)
	}
	u.logger.Info("[session][usecase] signed in", zap.String("user_id", user.ID))
	return Session{Token: token, User: user, ExpiresAt: claims.ExpiresAt}, nil
}

func (u *SessionUseCase) mapProviderError(email string, err error) error {
	var authErr *interfaces.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case interfaces.AuthCodeInvalidEmail:
			return ErrInvalidEmail
		case interfaces.AuthCodeWrongPassword, interfaces.AuthCodeUserNotFound:
			u.logger.Info("[session][usecase] sign-in rejected", zap.String("email", email), zap.String("code", authErr.Code))
			return ErrInvalidCredentials
		}
	}
	u.logger.Error("[session][usecase] sign-in failed", zap.String("email", email), zap.Error(err))
	return fmt.Errorf("%w: %v", ErrSignInFailed, err)
}

// SignOut revokes the token until it would have expired on its own.
func (u *SessionUseCase) SignOut(ctx context.Context, claims interfaces.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if claims.TokenID == "" || ttl <= 0 {
		return nil
	}
	if err := u.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		u.logger.Error("[session][usecase] revoke failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return err
	}
	u.logger.Info("[session][usecase] signed out", zap.String("user_id", claims.UserID))
	return nil
}

// Authenticate verifies a bearer token. Revocation lookups that fail are
// treated as unauthenticated.
func (u *SessionUseCase) Authenticate(ctx context.Context, token string) (interfaces.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.TokenClaims{}, ErrUnauthenticated
	}

	claims, err := u.tokens.Verify(token)
	if err != nil {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	revoked, err := u.revoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		u.logger.Warn("[session][usecase] revocation lookup failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return interfaces.TokenClaims{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if revoked {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: session signed out", ErrUnauthenticated)
	}
	return claims, nil
}

func (u *SessionUseCase) CurrentUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUnauthenticated
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
