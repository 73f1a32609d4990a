package model

import "time"

// Domain is a flagged-domain row in the admin domain table.
// Opaque DTO: passed through from the backend without client-side validation.
type Domain struct {
	ID         string    `json:"id"`
	Domain     string    `json:"domain"`
	IsPhishing bool      `json:"isPhishing"`
	ReportedBy string    `json:"reportedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DomainCheck is the verdict for a single domain lookup.
type DomainCheck struct {
	IsPhishing bool           `json:"isPhishing"`
	Details    map[string]any `json:"details,omitempty"`
}

// EmailReputation carries the optional reputation block of an email check.
type EmailReputation struct {
	Score float64  `json:"score"`
	Flags []string `json:"flags"`
}

// EmailCheck is the verdict for a single email lookup.
type EmailCheck struct {
	IsValid    bool             `json:"isValid"`
	Reputation *EmailReputation `json:"reputation,omitempty"`
}
