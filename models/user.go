package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque identifier of the account.
	UserID string `json:"userId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier, stored lower-cased and trimmed.
	Email string `json:"email"`

	// Password carries the plaintext password on the way in (register, login).
	// It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
