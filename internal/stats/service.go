package stats

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/churchserve/backend/internal/models"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_stats_store.go -package=mocks -mock_names Store=MockStatsStore

// Store runs the individual aggregate queries.
type Store interface {
	HoursVolunteered(ctx context.Context, userID uuid.UUID) (float64, error)
	OpportunitiesCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	ChurchesServed(ctx context.Context, userID uuid.UUID) (int, error)
	CountOpportunities(ctx context.Context, orgID uuid.UUID, active bool) (int, error)
	TotalVolunteers(ctx context.Context, orgID uuid.UUID) (int, error)
}

// Service computes volunteer and organization statistics. Nothing is cached.
type Service struct {
	store Store
}

// NewService creates a stats service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// VolunteerStats returns the user's hours, completed count and distinct organizations served.
func (s *Service) VolunteerStats(ctx context.Context, userID uuid.UUID) (models.VolunteerStats, error) {
	var out models.VolunteerStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.HoursVolunteered, err = s.store.HoursVolunteered(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.OpportunitiesCompleted, err = s.store.OpportunitiesCompleted(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.ChurchesServed, err = s.store.ChurchesServed(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.VolunteerStats{}, err
	}
	return out, nil
}

// OrganizationStats returns active and inactive ("completed") opportunity counts and distinct volunteers.
func (s *Service) OrganizationStats(ctx context.Context, orgID uuid.UUID) (models.OrganizationStats, error) {
	var out models.OrganizationStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.ActiveOpportunities, err = s.store.CountOpportunities(ctx, orgID, true)
		return err
	})
	g.Go(func() (err error) {
		out.CompletedOpportunities, err = s.store.CountOpportunities(ctx, orgID, false)
		return err
	})
	g.Go(func() (err error) {
		out.TotalVolunteers, err = s.store.TotalVolunteers(ctx, orgID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.OrganizationStats{}, err
	}
	return out, nil
}
