package types

import "time"

// Job is a tracked job application owned by a single account.
type Job struct {
	ID      string `json:"id" db:"id"`
	OwnerID string `json:"owner_id" db:"owner_id"`
	Title   string `json:"title" db:"title"`
	Company string `json:"company" db:"company"`

	// Status is free-form, e.g. "applied", "interview", "offer".
	Status string `json:"status" db:"status"`
	Notes  string `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
