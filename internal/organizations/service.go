package organizations

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_organization_store.go -package=mocks -mock_names Store=MockOrganizationStore

// Store is the persistence surface of the organization service.
type Store interface {
	CreateWithOwner(ctx context.Context, org *models.Organization) (*models.OrganizationMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetOwner(ctx context.Context, org *models.Organization) (models.UserPublic, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Organization, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (bool, error)
	SetLogoKey(ctx context.Context, id uuid.UUID, key string) (string, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) (*models.OrganizationMember, error)
	GetMemberRole(ctx context.Context, orgID, userID uuid.UUID) (models.OrgRole, error)
	UpdateMemberRole(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) error
	RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error
	ListMembers(ctx context.Context, orgID uuid.UUID) ([]models.MemberWithUser, error)
	ListMembershipsForUser(ctx context.Context, userID uuid.UUID) ([]models.MembershipWithOrganization, error)
}

// OpportunityLister returns an organization's opportunities, newest first.
type OpportunityLister interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Opportunity, error)
}

// CreateInput is the payload for creating an organization.
type CreateInput struct {
	Name                    string   `json:"name" validate:"required,max=255"`
	Description             string   `json:"description" validate:"max=5000"`
	Address                 string   `json:"address" validate:"required"`
	City                    string   `json:"city" validate:"required,max=100"`
	State                   string   `json:"state" validate:"required,max=50"`
	ZipCode                 string   `json:"zip_code" validate:"required,max=10"`
	Phone                   string   `json:"phone" validate:"max=20"`
	Email                   string   `json:"email" validate:"omitempty,email,max=255"`
	Website                 string   `json:"website" validate:"omitempty,url,max=255"`
	DenominationAffiliation string   `json:"denomination_affiliation" validate:"max=100"`
	Latitude                *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Service implements organization operations.
type Service struct {
	store         Store
	opportunities OpportunityLister
	logger        *zap.Logger
}

// NewService creates an organization service.
func NewService(store Store, opportunities OpportunityLister, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, opportunities: opportunities, logger: logger}
}

// Create creates an organization owned by ownerID. The owner membership is written in the same transaction.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*models.Organization, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, domain.Invalid("owner_id", "is required")
	}
	org := &models.Organization{
		Name:                    in.Name,
		Description:             in.Description,
		Address:                 in.Address,
		City:                    in.City,
		State:                   in.State,
		ZipCode:                 in.ZipCode,
		Phone:                   in.Phone,
		Email:                   in.Email,
		Website:                 in.Website,
		DenominationAffiliation: in.DenominationAffiliation,
		OwnerID:                 ownerID,
		Latitude:                in.Latitude,
		Longitude:               in.Longitude,
	}
	if _, err := s.store.CreateWithOwner(ctx, org); err != nil {
		return nil, err
	}
	s.logger.Info("organization created", zap.String("organization_id", org.ID.String()), zap.String("owner_id", ownerID.String()))
	return org, nil
}

// Get returns the organization with owner, members and opportunities, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.OrganizationWithDetails, error) {
	org, err := s.store.GetByID(ctx, id)
	if err != nil || org == nil {
		return nil, err
	}
	out := &models.OrganizationWithDetails{Organization: *org}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := s.store.GetOwner(gctx, org)
		out.Owner = owner
		return err
	})
	g.Go(func() error {
		members, err := s.store.ListMembers(gctx, id)
		out.Members = members
		return err
	})
	g.Go(func() error {
		opps, err := s.opportunities.ListByOrganization(gctx, id)
		out.Opportunities = opps
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hydrate organization: %w", err)
	}
	return out, nil
}

// ListForUser returns the user's memberships with their organizations.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.MembershipWithOrganization, error) {
	return s.store.ListMembershipsForUser(ctx, userID)
}

// ListByOwner returns organizations owned by the user ordered by name.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Update applies a partial update. Authorization is the caller's responsibility.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Organization, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	org, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.NotFound("organization", id)
	}
	return org, nil
}

// Verify marks the organization as verified.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.SetVerified(ctx, id, true)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("organization", id)
	}
	s.logger.Info("organization verified", zap.String("organization_id", id.String()))
	return nil
}

// Role returns the user's role in the organization, or "" when not a member.
func (s *Service) Role(ctx context.Context, orgID, userID uuid.UUID) (models.OrgRole, error) {
	return s.store.GetMemberRole(ctx, orgID, userID)
}

// AddMember adds a user with role admin or member. Ownership is only assigned at creation.
func (s *Service) AddMember(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) (*models.OrganizationMember, error) {
	if err := assignableRole(role); err != nil {
		return nil, err
	}
	return s.store.AddMember(ctx, orgID, userID, role)
}

// UpdateMemberRole changes a member's role. The owner's row cannot be changed.
func (s *Service) UpdateMemberRole(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) error {
	if err := assignableRole(role); err != nil {
		return err
	}
	return s.store.UpdateMemberRole(ctx, orgID, userID, role)
}

// RemoveMember removes a non-owner member.
func (s *Service) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	return s.store.RemoveMember(ctx, orgID, userID)
}

// ListMembers returns the organization's members with their users.
func (s *Service) ListMembers(ctx context.Context, orgID uuid.UUID) ([]models.MemberWithUser, error) {
	return s.store.ListMembers(ctx, orgID)
}

// ReplaceLogo records a new logo key and returns the key it replaced.
func (s *Service) ReplaceLogo(ctx context.Context, orgID uuid.UUID, key string) (string, error) {
	return s.store.SetLogoKey(ctx, orgID, key)
}

// LogoKey returns the organization's logo object key, "" when it has none or does not exist.
func (s *Service) LogoKey(ctx context.Context, orgID uuid.UUID) (string, error) {
	org, err := s.store.GetByID(ctx, orgID)
	if err != nil || org == nil {
		return "", err
	}
	return org.LogoKey, nil
}

func assignableRole(role models.OrgRole) error {
	switch role {
	case models.OrgRoleAdmin, models.OrgRoleMember:
		return nil
	case models.OrgRoleOwner:
		return domain.Invalid("role", "owner is assigned at creation only")
	}
	return domain.Invalid("role", "must be one of: admin member")
}
