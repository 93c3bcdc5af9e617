package entities

import "time"

// User is an account allowed to sign in.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
