package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a church or nonprofit that posts opportunities.
type Organization struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description,omitempty"`
	Address                 string    `json:"address"`
	City                    string    `json:"city"`
	State                   string    `json:"state"`
	ZipCode                 string    `json:"zip_code"`
	Phone                   string    `json:"phone,omitempty"`
	Email                   string    `json:"email,omitempty"`
	Website                 string    `json:"website,omitempty"`
	DenominationAffiliation string    `json:"denomination_affiliation,omitempty"`
	IsVerified              bool      `json:"is_verified"`
	OwnerID                 uuid.UUID `json:"owner_id"`
	Latitude                *float64  `json:"latitude,omitempty"`
	Longitude               *float64  `json:"longitude,omitempty"`
	LogoKey                 string    `json:"logo_key,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// OrgRole is the role of a user in an organization.
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
)

// Valid reports whether r is one of the known roles.
func (r OrgRole) Valid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may edit members and opportunities of the organization.
func (r OrgRole) CanManage() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin:
		return true
	case OrgRoleMember:
		return false
	}
	return false
}

// OrganizationMember links a user to an organization with a role.
type OrganizationMember struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Role           OrgRole   `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// MemberWithUser is a membership row with its user populated.
type MemberWithUser struct {
	OrganizationMember
	User UserPublic `json:"user"`
}

// MembershipWithOrganization is a membership row with its organization populated.
type MembershipWithOrganization struct {
	OrganizationMember
	Organization Organization `json:"organization"`
}

// OrganizationWithDetails is an organization with owner, members and opportunities populated.
type OrganizationWithDetails struct {
	Organization
	Owner         UserPublic       `json:"owner"`
	Members       []MemberWithUser `json:"members"`
	Opportunities []Opportunity    `json:"opportunities"`
}
