package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque identifier assigned by the store on creation.
	UserID string `json:"id,omitempty"`

	// Name is the display name of the user.
	Name string `json:"nome" validate:"required"`

	// Email is the unique login identifier. Equality is case-sensitive.
	Email string `json:"email" validate:"required,email"`

	// Password is the plaintext secret as received from the client.
	// It is write-only: services clear it before a User leaves the service
	// layer, so it never appears in a response body.
	Password string `json:"senha,omitempty" validate:"required,min=4,bcryptmax"`

	// PasswordHash is the bcrypt digest persisted in the store.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"criado_em"`

	// UpdatedAt is the timestamp of the last successful update.
	UpdatedAt time.Time `json:"atualizado_em"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to serialize: the plaintext
// password and the digest are cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
