package response

import (
	"time"

	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// CurrentSessionResponse is the user behind a token plus the token's expiry.
type CurrentSessionResponse struct {
	UserResponse
	ExpiresAt time.Time `json:"expires_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      FromUser(s.User),
	}
}

func FromCurrentSession(u entities.User, expiresAt time.Time) CurrentSessionResponse {
	return CurrentSessionResponse{UserResponse: FromUser(u), ExpiresAt: expiresAt}
}
