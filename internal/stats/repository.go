package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchserve/backend/internal/models"
)

// Repository runs the aggregate queries behind the dashboards.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a stats repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// HoursVolunteered sums hours_worked over the user's completed signups.
func (r *Repository) HoursVolunteered(ctx context.Context, userID uuid.UUID) (float64, error) {
	const q = `SELECT COALESCE(SUM(hours_worked), 0)::float8 FROM volunteer_signups
		WHERE user_id = $1 AND status = $2`
	var total float64
	if err := r.pool.QueryRow(ctx, q, userID, models.SignupStatusCompleted).Scan(&total); err != nil {
		return 0, fmt.Errorf("hours volunteered: %w", err)
	}
	return total, nil
}

// OpportunitiesCompleted counts the user's completed signups.
func (r *Repository) OpportunitiesCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(*) FROM volunteer_signups WHERE user_id = $1 AND status = $2`
	var n int
	if err := r.pool.QueryRow(ctx, q, userID, models.SignupStatusCompleted).Scan(&n); err != nil {
		return 0, fmt.Errorf("opportunities completed: %w", err)
	}
	return n, nil
}

// ChurchesServed counts distinct organizations reached through any of the user's signups, whatever their status.
func (r *Repository) ChurchesServed(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(DISTINCT p.organization_id)
		FROM volunteer_signups s
		INNER JOIN opportunities p ON p.id = s.opportunity_id
		WHERE s.user_id = $1`
	var n int
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("churches served: %w", err)
	}
	return n, nil
}

// CountOpportunities counts the organization's opportunities with the given is_active flag.
func (r *Repository) CountOpportunities(ctx context.Context, orgID uuid.UUID, active bool) (int, error) {
	const q = `SELECT COUNT(*) FROM opportunities WHERE organization_id = $1 AND is_active = $2`
	var n int
	if err := r.pool.QueryRow(ctx, q, orgID, active).Scan(&n); err != nil {
		return 0, fmt.Errorf("count opportunities: %w", err)
	}
	return n, nil
}

// TotalVolunteers counts distinct users with any signup on the organization's opportunities.
func (r *Repository) TotalVolunteers(ctx context.Context, orgID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(DISTINCT s.user_id)
		FROM volunteer_signups s
		INNER JOIN opportunities p ON p.id = s.opportunity_id
		WHERE p.organization_id = $1`
	var n int
	if err := r.pool.QueryRow(ctx, q, orgID).Scan(&n); err != nil {
		return 0, fmt.Errorf("total volunteers: %w", err)
	}
	return n, nil
}
