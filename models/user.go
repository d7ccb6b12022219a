package models

import "time"

// User represents a credential record in the authentication database.
// It is created on registration and read on login; records are never
// mutated or deleted by the API.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password carries the plain-text password of an inbound register or
	// login request. It only ever exists in memory while the request is
	// being processed and MUST NOT be persisted or logged.
	Password string `json:"password"`

	// PasswordHash is the bcrypt hash stored for the user. The per-record
	// salt is embedded in the hash blob itself.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "i_user"
}
