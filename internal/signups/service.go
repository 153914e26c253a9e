package signups

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/metrics"
	"github.com/churchserve/backend/internal/models"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_signup_store.go -package=mocks -mock_names Store=MockSignupStore

// Store is the persistence surface of the signup lifecycle.
type Store interface {
	Create(ctx context.Context, opportunityID, userID uuid.UUID, notes string) (*models.VolunteerSignup, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.VolunteerSignup, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SignupStatus, hoursWorked *float64) (StatusChange, error)
	Cancel(ctx context.Context, id uuid.UUID) (CancelResult, error)
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]models.SignupWithUser, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VolunteerSignup, error)
}

// OpportunityLoader hydrates opportunities in bulk.
type OpportunityLoader interface {
	GetManyWithDetails(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.OpportunityWithDetails, error)
}

// Enqueuer schedules a counter reconciliation for an opportunity.
type Enqueuer interface {
	EnqueueReconcile(ctx context.Context, opportunityID uuid.UUID, reason string) error
}

// SignUpInput is the optional body of a signup request.
type SignUpInput struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// UpdateStatusInput is the body of a signup status change.
type UpdateStatusInput struct {
	Status      models.SignupStatus `json:"status" validate:"required"`
	HoursWorked *float64            `json:"hours_worked" validate:"omitempty,gte=0,lte=999.99"`
}

// Service implements the signup lifecycle.
type Service struct {
	store         Store
	opportunities OpportunityLoader
	reconcile     Enqueuer
	logger        *zap.Logger
}

// NewService creates a signup service. reconcile may be nil, in which case drift is only logged.
func NewService(store Store, opportunities OpportunityLoader, reconcile Enqueuer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, opportunities: opportunities, reconcile: reconcile, logger: logger}
}

// SignUp registers userID for the opportunity. No capacity check is made; the counter may exceed volunteers_needed.
func (s *Service) SignUp(ctx context.Context, opportunityID, userID uuid.UUID, in SignUpInput) (*models.VolunteerSignup, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	if opportunityID == uuid.Nil {
		return nil, domain.Invalid("opportunity_id", "is required")
	}
	if userID == uuid.Nil {
		return nil, domain.Invalid("user_id", "is required")
	}
	signup, err := s.store.Create(ctx, opportunityID, userID, in.Notes)
	if err != nil {
		return nil, err
	}
	metrics.SignupsCreated.Inc()
	s.logger.Info("volunteer signed up",
		zap.String("signup_id", signup.ID.String()),
		zap.String("opportunity_id", opportunityID.String()),
		zap.String("user_id", userID.String()))
	return signup, nil
}

// Get returns a signup, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.VolunteerSignup, error) {
	return s.store.GetByID(ctx, id)
}

// UpdateStatus moves a signup to any status, keeping the opportunity counter in step.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, in UpdateStatusInput) (*models.VolunteerSignup, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, domain.Invalid("status", "must be one of: signed_up completed cancelled")
	}
	change, err := s.store.UpdateStatus(ctx, id, in.Status, in.HoursWorked)
	if err != nil {
		return nil, err
	}
	if change.Signup == nil {
		return nil, domain.NotFound("signup", id)
	}
	metrics.SignupStatusChanges.WithLabelValues(string(change.From), string(in.Status)).Inc()
	if change.Drift {
		s.drift(ctx, change.Signup.OpportunityID, "status change to cancelled")
	}
	return change.Signup, nil
}

// Cancel deletes the signup. Cancelling an unknown id is a no-op.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	res, err := s.store.Cancel(ctx, id)
	if err != nil {
		return err
	}
	if !res.Found {
		s.logger.Debug("cancel of unknown signup ignored", zap.String("signup_id", id.String()))
		return nil
	}
	metrics.SignupsCancelled.Inc()
	if res.Drift {
		s.drift(ctx, res.OpportunityID, "cancel")
	}
	return nil
}

func (s *Service) drift(ctx context.Context, opportunityID uuid.UUID, reason string) {
	metrics.CounterDrift.Inc()
	s.logger.Warn("volunteer counter already zero, decrement skipped",
		zap.String("opportunity_id", opportunityID.String()),
		zap.String("reason", reason))
	if s.reconcile == nil {
		return
	}
	if err := s.reconcile.EnqueueReconcile(ctx, opportunityID, reason); err != nil {
		s.logger.Error("enqueue reconcile failed", zap.Error(err), zap.String("opportunity_id", opportunityID.String()))
	}
}

// ListForOpportunity returns the opportunity's signups with users.
func (s *Service) ListForOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]models.SignupWithUser, error) {
	return s.store.ListByOpportunity(ctx, opportunityID)
}

// ListForUser returns the user's signups, newest first, each with its hydrated opportunity.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.SignupWithOpportunity, error) {
	list, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.SignupWithOpportunity, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}
	seen := make(map[uuid.UUID]struct{}, len(list))
	ids := make([]uuid.UUID, 0, len(list))
	for _, su := range list {
		if _, ok := seen[su.OpportunityID]; !ok {
			seen[su.OpportunityID] = struct{}{}
			ids = append(ids, su.OpportunityID)
		}
	}
	details, err := s.opportunities.GetManyWithDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load signup opportunities: %w", err)
	}
	for _, su := range list {
		out = append(out, models.SignupWithOpportunity{VolunteerSignup: su, Opportunity: details[su.OpportunityID]})
	}
	return out, nil
}
