package opportunities

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/organizations"
	"github.com/churchserve/backend/pkg/database"
)

// Columns selects an opportunity aliased as p, in the order Dest expects.
const Columns = `p.id, p.title, p.description, p.category, to_char(p.date, 'YYYY-MM-DD'),
	to_char(p.start_time, 'HH24:MI'), to_char(p.end_time, 'HH24:MI'), p.volunteers_needed, p.current_volunteers,
	p.required_skills, COALESCE(p.location,''), p.is_recurring, COALESCE(p.recurring_pattern,''),
	p.organization_id, p.created_by_id, p.is_active, p.created_at, p.updated_at`

// Dest returns scan destinations for Columns.
func Dest(o *models.Opportunity) []interface{} {
	return []interface{}{&o.ID, &o.Title, &o.Description, &o.Category, &o.Date,
		&o.StartTime, &o.EndTime, &o.VolunteersNeeded, &o.CurrentVolunteers,
		&o.RequiredSkills, &o.Location, &o.IsRecurring, &o.RecurringPattern,
		&o.OrganizationID, &o.CreatedByID, &o.IsActive, &o.CreatedAt, &o.UpdatedAt}
}

// SignupColumns selects a volunteer signup aliased as s, in the order SignupDest expects.
const SignupColumns = `s.id, s.opportunity_id, s.user_id, s.status, COALESCE(s.notes,''), s.hours_worked::float8,
	s.created_at, s.updated_at`

// SignupDest returns scan destinations for SignupColumns.
func SignupDest(s *models.VolunteerSignup) []interface{} {
	return []interface{}{&s.ID, &s.OpportunityID, &s.UserID, &s.Status, &s.Notes, &s.HoursWorked,
		&s.CreatedAt, &s.UpdatedAt}
}

const detailsFrom = ` FROM opportunities p
	INNER JOIN organizations o ON o.id = p.organization_id
	INNER JOIN users u ON u.id = p.created_by_id`

// Repository handles opportunity persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an opportunities repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts an opportunity. current_volunteers always starts at zero.
func (r *Repository) Create(ctx context.Context, o *models.Opportunity) error {
	const q = `INSERT INTO opportunities AS p (title, description, category, date, start_time, end_time,
			volunteers_needed, required_skills, location, is_recurring, recurring_pattern,
			organization_id, created_by_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9,''), $10, NULLIF($11,''), $12, $13, $14)
		RETURNING ` + Columns
	skills := o.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	err := r.pool.QueryRow(ctx, q, o.Title, o.Description, o.Category, o.Date, o.StartTime, o.EndTime,
		o.VolunteersNeeded, skills, o.Location, o.IsRecurring, o.RecurringPattern,
		o.OrganizationID, o.CreatedByID, o.IsActive).Scan(Dest(o)...)
	if err != nil {
		if database.PgCode(err) == database.CodeForeignKeyViolation {
			return domain.NotFound("organization", o.OrganizationID)
		}
		if isTimeOrderViolation(err) {
			return errEndBeforeStart()
		}
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// GetByID returns the bare opportunity row, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	var o models.Opportunity
	err := r.pool.QueryRow(ctx, `SELECT `+Columns+` FROM opportunities p WHERE p.id = $1`, id).Scan(Dest(&o)...)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return &o, nil
}

// GetWithDetails returns the opportunity with organization, creator and signups, or nil when it does not exist.
func (r *Repository) GetWithDetails(ctx context.Context, id uuid.UUID) (*models.OpportunityWithDetails, error) {
	m, err := r.GetManyWithDetails(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	d, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// GetManyWithDetails loads the given opportunities with details in two queries. Missing ids are absent from the map.
func (r *Repository) GetManyWithDetails(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.OpportunityWithDetails, error) {
	out := make(map[uuid.UUID]models.OpportunityWithDetails, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := r.queryDetails(ctx, ` WHERE p.id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, d := range list {
		out[d.ID] = d
	}
	return out, nil
}

// List returns one page of opportunities matching f, newest first, each with organization, creator and signups.
// f must already carry resolved defaults.
func (r *Repository) List(ctx context.Context, f ListFilters) ([]models.OpportunityWithDetails, error) {
	var conds []string
	var args []interface{}
	if f.OrganizationID != nil {
		args = append(args, *f.OrganizationID)
		conds = append(conds, fmt.Sprintf("p.organization_id = $%d", len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", len(args)))
	}
	var where string
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	tail := fmt.Sprintf("%s ORDER BY p.created_at DESC, p.id LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))
	return r.queryDetails(ctx, tail, args...)
}

// queryDetails runs the opportunity+organization+creator join with the given WHERE/ORDER tail,
// then attaches the signups of the whole page with a single batched query.
func (r *Repository) queryDetails(ctx context.Context, tail string, args ...interface{}) ([]models.OpportunityWithDetails, error) {
	q := `SELECT ` + Columns + `, ` + organizations.Columns + `, ` + auth.PublicColumns + detailsFrom + tail
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	list := []models.OpportunityWithDetails{}
	for rows.Next() {
		var d models.OpportunityWithDetails
		dest := append(Dest(&d.Opportunity), organizations.Dest(&d.Organization)...)
		dest = append(dest, auth.PublicDest(&d.CreatedBy)...)
		if err := rows.Scan(dest...); err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	signups, err := r.signupsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if s, ok := signups[list[i].ID]; ok {
			list[i].VolunteerSignups = s
		} else {
			list[i].VolunteerSignups = []models.SignupWithUser{}
		}
	}
	return list, nil
}

func (r *Repository) signupsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.SignupWithUser, error) {
	q := `SELECT ` + SignupColumns + `, ` + auth.PublicColumns + `
		FROM volunteer_signups s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.opportunity_id = ANY($1)
		ORDER BY s.created_at ASC`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, fmt.Errorf("list signups for opportunities: %w", err)
	}
	defer rows.Close()
	out := make(map[uuid.UUID][]models.SignupWithUser, len(ids))
	for rows.Next() {
		var s models.SignupWithUser
		if err := rows.Scan(append(SignupDest(&s.VolunteerSignup), auth.PublicDest(&s.User)...)...); err != nil {
			return nil, err
		}
		out[s.OpportunityID] = append(out[s.OpportunityID], s)
	}
	return out, rows.Err()
}

// ListByOrganization returns the organization's opportunities, newest first.
func (r *Repository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Opportunity, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+Columns+` FROM opportunities p WHERE p.organization_id = $1 ORDER BY p.created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list opportunities by organization: %w", err)
	}
	defer rows.Close()
	list := []models.Opportunity{}
	for rows.Next() {
		var o models.Opportunity
		if err := rows.Scan(Dest(&o)...); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func errEndBeforeStart() error {
	return domain.Invalid("end_time", "must not be before start_time")
}

// isTimeOrderViolation matches the opportunities_time_order CHECK, which also covers partial updates.
func isTimeOrderViolation(err error) bool {
	return database.PgCode(err) == database.CodeCheckViolation &&
		database.ConstraintName(err) == "opportunities_time_order"
}

// UpdateParams carries optional opportunity changes; nil fields are left as they are.
// The live volunteer counter is deliberately absent.
type UpdateParams struct {
	Title            *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Description      *string   `json:"description" validate:"omitempty,min=1"`
	Category         *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Date             *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime        *string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime          *string   `json:"end_time" validate:"omitempty,datetime=15:04"`
	VolunteersNeeded *int      `json:"volunteers_needed" validate:"omitempty,min=1"`
	RequiredSkills   *[]string `json:"required_skills"`
	Location         *string   `json:"location" validate:"omitempty,max=500"`
	IsRecurring      *bool     `json:"is_recurring"`
	RecurringPattern *string   `json:"recurring_pattern" validate:"omitempty,max=50"`
	IsActive         *bool     `json:"is_active"`
}

// Update applies a partial update and returns the updated row, or nil when the opportunity does not exist.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Opportunity, error) {
	const q = `UPDATE opportunities AS p SET
		title = COALESCE($2, title),
		description = COALESCE($3, description),
		category = COALESCE($4, category),
		date = COALESCE($5::date, date),
		start_time = COALESCE($6::time, start_time),
		end_time = COALESCE($7::time, end_time),
		volunteers_needed = COALESCE($8, volunteers_needed),
		required_skills = COALESCE($9, required_skills),
		location = COALESCE($10, location),
		is_recurring = COALESCE($11, is_recurring),
		recurring_pattern = COALESCE($12, recurring_pattern),
		is_active = COALESCE($13, is_active),
		updated_at = NOW()
		WHERE p.id = $1
		RETURNING ` + Columns
	var skills []string
	if p.RequiredSkills != nil {
		skills = *p.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
	}
	var o models.Opportunity
	err := r.pool.QueryRow(ctx, q, id, p.Title, p.Description, p.Category, p.Date, p.StartTime, p.EndTime,
		p.VolunteersNeeded, skills, p.Location, p.IsRecurring, p.RecurringPattern, p.IsActive).Scan(Dest(&o)...)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		if isTimeOrderViolation(err) {
			return nil, errEndBeforeStart()
		}
		return nil, fmt.Errorf("update opportunity: %w", err)
	}
	return &o, nil
}

// Delete removes the opportunity's signups and then the opportunity in one transaction.
// Returns false when the opportunity did not exist.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM volunteer_signups WHERE opportunity_id = $1`, id); err != nil {
			return fmt.Errorf("delete signups: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete opportunity: %w", err)
		}
		deleted = tag.RowsAffected() == 1
		return nil
	})
	return deleted, err
}
