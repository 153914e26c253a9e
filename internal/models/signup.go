package models

import (
	"time"

	"github.com/google/uuid"
)

// SignupStatus is the lifecycle status of a volunteer signup.
type SignupStatus string

const (
	SignupStatusSignedUp  SignupStatus = "signed_up"
	SignupStatusCompleted SignupStatus = "completed"
	SignupStatusCancelled SignupStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s SignupStatus) Valid() bool {
	switch s {
	case SignupStatusSignedUp, SignupStatusCompleted, SignupStatusCancelled:
		return true
	}
	return false
}

// CountsTowardCapacity reports whether a signup in status s occupies a slot
// in the opportunity's current_volunteers counter.
func (s SignupStatus) CountsTowardCapacity() bool {
	switch s {
	case SignupStatusSignedUp, SignupStatusCompleted:
		return true
	case SignupStatusCancelled:
		return false
	}
	return false
}

// CounterDelta returns the change to current_volunteers when a signup moves from one status to another.
func CounterDelta(from, to SignupStatus) int {
	switch {
	case from.CountsTowardCapacity() && !to.CountsTowardCapacity():
		return -1
	case !from.CountsTowardCapacity() && to.CountsTowardCapacity():
		return 1
	}
	return 0
}

// VolunteerSignup links a user to an opportunity.
type VolunteerSignup struct {
	ID            uuid.UUID    `json:"id"`
	OpportunityID uuid.UUID    `json:"opportunity_id"`
	UserID        uuid.UUID    `json:"user_id"`
	Status        SignupStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`
	HoursWorked   *float64     `json:"hours_worked,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SignupWithUser is a signup with its user populated.
type SignupWithUser struct {
	VolunteerSignup
	User UserPublic `json:"user"`
}

// SignupWithOpportunity is a signup with its opportunity populated.
type SignupWithOpportunity struct {
	VolunteerSignup
	Opportunity OpportunityWithDetails `json:"opportunity"`
}
