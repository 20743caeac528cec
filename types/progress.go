package types

import "time"

// Progress is a competency progress record owned by a single account.
type Progress struct {
	ID         string `json:"id" db:"id"`
	OwnerID    string `json:"owner_id" db:"owner_id"`
	Competency string `json:"competency" db:"competency"`

	// Level is the self-assessed proficiency, e.g. "P" or "A".
	Level       string `json:"level" db:"level"`
	EvidenceURL string `json:"evidence_url,omitempty" db:"evidence_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
