package signups

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/opportunities"
	"github.com/churchserve/backend/pkg/database"
)

const (
	incrementCounter = `UPDATE opportunities SET current_volunteers = current_volunteers + 1, updated_at = NOW()
		WHERE id = $1`
	// The floor guard keeps the counter non-negative; a blocked decrement means the counter had drifted.
	decrementCounter = `UPDATE opportunities SET current_volunteers = current_volunteers - 1, updated_at = NOW()
		WHERE id = $1 AND current_volunteers > 0`
)

// StatusChange is the outcome of UpdateStatus.
type StatusChange struct {
	Signup *models.VolunteerSignup
	From   models.SignupStatus
	// Drift is set when a decrement was blocked because the counter was already zero.
	Drift bool
}

// CancelResult is the outcome of Cancel.
type CancelResult struct {
	Found         bool
	OpportunityID uuid.UUID
	Decremented   bool
	Drift         bool
}

// Repository handles volunteer signup persistence and the opportunity counter.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a signups repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a signed_up signup and increments the opportunity counter in one transaction.
// The counter row is updated first so concurrent signups for one opportunity serialize on it.
func (r *Repository) Create(ctx context.Context, opportunityID, userID uuid.UUID, notes string) (*models.VolunteerSignup, error) {
	const insert = `INSERT INTO volunteer_signups AS s (opportunity_id, user_id, status, notes)
		VALUES ($1, $2, $3, NULLIF($4,''))
		RETURNING ` + opportunities.SignupColumns
	var s models.VolunteerSignup
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, incrementCounter, opportunityID)
		if err != nil {
			return fmt.Errorf("increment volunteers: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFound("opportunity", opportunityID)
		}
		err = tx.QueryRow(ctx, insert, opportunityID, userID, models.SignupStatusSignedUp, notes).
			Scan(opportunities.SignupDest(&s)...)
		if err != nil {
			switch database.PgCode(err) {
			case database.CodeUniqueViolation:
				return fmt.Errorf("user already signed up for this opportunity: %w", domain.ErrConflict)
			case database.CodeForeignKeyViolation:
				return domain.NotFound("user", userID)
			}
			return fmt.Errorf("insert signup: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID returns a signup, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.VolunteerSignup, error) {
	var s models.VolunteerSignup
	err := r.pool.QueryRow(ctx, `SELECT `+opportunities.SignupColumns+` FROM volunteer_signups s WHERE s.id = $1`, id).
		Scan(opportunities.SignupDest(&s)...)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signup: %w", err)
	}
	return &s, nil
}

// UpdateStatus sets the status (and hours, when given) under a row lock and moves the
// opportunity counter when the status crosses the cancelled boundary.
// Change.Signup is nil when the signup does not exist.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SignupStatus, hoursWorked *float64) (StatusChange, error) {
	const lock = `SELECT status, opportunity_id FROM volunteer_signups WHERE id = $1 FOR UPDATE`
	const update = `UPDATE volunteer_signups AS s SET status = $2, hours_worked = COALESCE($3, hours_worked), updated_at = NOW()
		WHERE s.id = $1
		RETURNING ` + opportunities.SignupColumns
	var change StatusChange
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var opportunityID uuid.UUID
		if err := tx.QueryRow(ctx, lock, id).Scan(&change.From, &opportunityID); err != nil {
			if database.IsNoRows(err) {
				return nil
			}
			return fmt.Errorf("lock signup: %w", err)
		}
		var s models.VolunteerSignup
		if err := tx.QueryRow(ctx, update, id, status, hoursWorked).Scan(opportunities.SignupDest(&s)...); err != nil {
			if database.PgCode(err) == database.CodeUniqueViolation {
				return fmt.Errorf("user already has an active signup for this opportunity: %w", domain.ErrConflict)
			}
			return fmt.Errorf("update signup status: %w", err)
		}
		change.Signup = &s
		switch models.CounterDelta(change.From, status) {
		case 1:
			if _, err := tx.Exec(ctx, incrementCounter, opportunityID); err != nil {
				return fmt.Errorf("increment volunteers: %w", err)
			}
		case -1:
			tag, err := tx.Exec(ctx, decrementCounter, opportunityID)
			if err != nil {
				return fmt.Errorf("decrement volunteers: %w", err)
			}
			change.Drift = tag.RowsAffected() == 0
		}
		return nil
	})
	if err != nil {
		return StatusChange{}, err
	}
	return change, nil
}

// Cancel hard-deletes the signup and decrements the counter when the deleted row still held a slot.
// A missing signup yields a zero result and no error.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) (CancelResult, error) {
	const del = `DELETE FROM volunteer_signups WHERE id = $1 RETURNING opportunity_id, status`
	var res CancelResult
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status models.SignupStatus
		if err := tx.QueryRow(ctx, del, id).Scan(&res.OpportunityID, &status); err != nil {
			if database.IsNoRows(err) {
				return nil
			}
			return fmt.Errorf("delete signup: %w", err)
		}
		res.Found = true
		if !status.CountsTowardCapacity() {
			return nil
		}
		tag, err := tx.Exec(ctx, decrementCounter, res.OpportunityID)
		if err != nil {
			return fmt.Errorf("decrement volunteers: %w", err)
		}
		res.Decremented = tag.RowsAffected() == 1
		res.Drift = !res.Decremented
		return nil
	})
	if err != nil {
		return CancelResult{}, err
	}
	return res, nil
}

// ListByOpportunity returns the opportunity's signups with their users, oldest first.
func (r *Repository) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]models.SignupWithUser, error) {
	const q = `SELECT ` + opportunities.SignupColumns + `, ` + auth.PublicColumns + `
		FROM volunteer_signups s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.opportunity_id = $1
		ORDER BY s.created_at ASC`
	rows, err := r.pool.Query(ctx, q, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	defer rows.Close()
	list := []models.SignupWithUser{}
	for rows.Next() {
		var s models.SignupWithUser
		if err := rows.Scan(append(opportunities.SignupDest(&s.VolunteerSignup), auth.PublicDest(&s.User)...)...); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListByUser returns the user's signups, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VolunteerSignup, error) {
	const q = `SELECT ` + opportunities.SignupColumns + ` FROM volunteer_signups s
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list user signups: %w", err)
	}
	defer rows.Close()
	list := []models.VolunteerSignup{}
	for rows.Next() {
		var s models.VolunteerSignup
		if err := rows.Scan(opportunities.SignupDest(&s)...); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

const liveCount = `(SELECT COUNT(*) FROM volunteer_signups s
	WHERE s.opportunity_id = p.id AND s.status <> 'cancelled')`

// Reconcile rewrites one opportunity's counter from the live count of non-cancelled signups.
// Returns true when the stored value was wrong.
func (r *Repository) Reconcile(ctx context.Context, opportunityID uuid.UUID) (bool, error) {
	n, err := r.reconcile(ctx, `SELECT id FROM opportunities WHERE id = $1 FOR UPDATE`,
		`UPDATE opportunities p SET current_volunteers = `+liveCount+`, updated_at = NOW()
		WHERE p.id = $1 AND p.current_volunteers <> `+liveCount, opportunityID)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ReconcileAll repairs every drifted counter and returns how many were rewritten.
func (r *Repository) ReconcileAll(ctx context.Context) (int64, error) {
	return r.reconcile(ctx, `SELECT id FROM opportunities ORDER BY id FOR UPDATE`,
		`UPDATE opportunities p SET current_volunteers = `+liveCount+`, updated_at = NOW()
		WHERE p.current_volunteers <> `+liveCount)
}

// reconcile takes the counter row locks before counting. Create increments under the same
// lock before inserting, so the UPDATE, which gets a fresh snapshot once the locks are held,
// sees every signup whose increment has committed.
func (r *Repository) reconcile(ctx context.Context, lock, update string, args ...interface{}) (int64, error) {
	var n int64
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, lock, args...); err != nil {
			return fmt.Errorf("lock counters: %w", err)
		}
		tag, err := tx.Exec(ctx, update, args...)
		if err != nil {
			return fmt.Errorf("reconcile counters: %w", err)
		}
		n = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
