package models

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a volunteer task posted by an organization.
type Opportunity struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Date              string    `json:"date"`       // YYYY-MM-DD
	StartTime         string    `json:"start_time"` // HH:MM
	EndTime           string    `json:"end_time"`   // HH:MM
	VolunteersNeeded  int       `json:"volunteers_needed"`
	CurrentVolunteers int       `json:"current_volunteers"`
	RequiredSkills    []string  `json:"required_skills"`
	Location          string    `json:"location,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurringPattern  string    `json:"recurring_pattern,omitempty"`
	OrganizationID    uuid.UUID `json:"organization_id"`
	CreatedByID       uuid.UUID `json:"created_by_id"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OpportunityWithDetails is an opportunity with organization, creator and signups populated.
type OpportunityWithDetails struct {
	Opportunity
	Organization     Organization     `json:"organization"`
	CreatedBy        UserPublic       `json:"created_by"`
	VolunteerSignups []SignupWithUser `json:"volunteer_signups"`
}
