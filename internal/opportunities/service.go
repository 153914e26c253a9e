package opportunities

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_opportunity_store.go -package=mocks -mock_names Store=MockOpportunityStore

// Store is the persistence surface of the opportunity service.
type Store interface {
	Create(ctx context.Context, o *models.Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*models.OpportunityWithDetails, error)
	List(ctx context.Context, f ListFilters) ([]models.OpportunityWithDetails, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Opportunity, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ListFilters selects a page of opportunities. Nil fields do not filter, except IsActive which defaults to true.
type ListFilters struct {
	OrganizationID *uuid.UUID
	Category       *string
	IsActive       *bool
	Limit          int
	Offset         int
}

// CreateInput is the payload for creating an opportunity.
type CreateInput struct {
	Title            string    `json:"title" validate:"required,max=255"`
	Description      string    `json:"description" validate:"required"`
	Category         string    `json:"category" validate:"required,max=100"`
	Date             string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime        string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime          string    `json:"end_time" validate:"required,datetime=15:04"`
	VolunteersNeeded int       `json:"volunteers_needed" validate:"required,min=1"`
	RequiredSkills   []string  `json:"required_skills" validate:"omitempty,dive,min=1,max=100"`
	Location         string    `json:"location" validate:"max=500"`
	IsRecurring      bool      `json:"is_recurring"`
	RecurringPattern string    `json:"recurring_pattern" validate:"required_if=IsRecurring true,max=50"`
	OrganizationID   uuid.UUID `json:"organization_id" validate:"required"`
	IsActive         *bool     `json:"is_active"`
}

// Service implements opportunity operations.
type Service struct {
	store        Store
	defaultLimit int
	maxLimit     int
	logger       *zap.Logger
}

// NewService creates an opportunity service. Page sizes of zero fall back to 50 and 200.
func NewService(store Store, defaultLimit, maxLimit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	if maxLimit < defaultLimit {
		maxLimit = 200
	}
	return &Service{store: store, defaultLimit: defaultLimit, maxLimit: maxLimit, logger: logger}
}

// Create validates and inserts an opportunity created by createdByID. Membership in the organization is checked by the caller.
func (s *Service) Create(ctx context.Context, createdByID uuid.UUID, in CreateInput) (*models.Opportunity, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	if in.EndTime < in.StartTime {
		return nil, errEndBeforeStart()
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	o := &models.Opportunity{
		Title:            in.Title,
		Description:      in.Description,
		Category:         in.Category,
		Date:             in.Date,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		VolunteersNeeded: in.VolunteersNeeded,
		RequiredSkills:   in.RequiredSkills,
		Location:         in.Location,
		IsRecurring:      in.IsRecurring,
		RecurringPattern: in.RecurringPattern,
		OrganizationID:   in.OrganizationID,
		CreatedByID:      createdByID,
		IsActive:         active,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Info("opportunity created",
		zap.String("opportunity_id", o.ID.String()),
		zap.String("organization_id", o.OrganizationID.String()))
	return o, nil
}

// Get returns the hydrated opportunity, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.OpportunityWithDetails, error) {
	return s.store.GetWithDetails(ctx, id)
}

// Find returns the bare opportunity row, or nil when it does not exist.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	return s.store.GetByID(ctx, id)
}

// List resolves filter defaults and returns one page of hydrated opportunities.
func (s *Service) List(ctx context.Context, f ListFilters) ([]models.OpportunityWithDetails, error) {
	return s.store.List(ctx, s.Resolve(f))
}

// Resolve applies the listing defaults: active only, default page size, size cap, non-negative offset.
func (s *Service) Resolve(f ListFilters) ListFilters {
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	if f.Limit <= 0 {
		f.Limit = s.defaultLimit
	}
	if f.Limit > s.maxLimit {
		f.Limit = s.maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Update applies a partial update. Ownership is checked by the caller.
// When only one of start_time and end_time is given, the store checks it against the stored other.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Opportunity, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}
	if p.StartTime != nil && p.EndTime != nil && *p.EndTime < *p.StartTime {
		return nil, errEndBeforeStart()
	}
	o, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("opportunity", id)
	}
	return o, nil
}

// Delete removes the opportunity and all of its signups.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("opportunity", id)
	}
	s.logger.Info("opportunity deleted", zap.String("opportunity_id", id.String()))
	return nil
}
