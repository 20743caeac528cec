package types

import "time"

// Account represents a registered user of the career navigator.
// It contains identity and credential metadata.
type Account struct {
	// ID is the unique identifier of the account, assigned at creation.
	ID string `json:"id" db:"id"`

	// Email is the account's email address, stored lower-cased.
	// Exactly one account exists per normalized email.
	Email string `json:"email" db:"email"`

	// FullName is the optional display name.
	FullName string `json:"full_name,omitempty" db:"full_name"`

	// PasswordHash stores the tagged hash of the account's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AccountPublic is the safe representation of an account returned
// by the API.
type AccountPublic struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Public returns the API-safe view of the account.
func (a Account) Public() AccountPublic {
	return AccountPublic{
		ID:       a.ID,
		Email:    a.Email,
		FullName: a.FullName,
	}
}
