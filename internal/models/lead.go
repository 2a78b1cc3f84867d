package models

import "time"

// Lead statuses.
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadConverted = "converted"
	LeadClosed    = "closed"
)

// Lead is a contact-form submission. Leads are created once and never
// mutated by this codebase.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}
