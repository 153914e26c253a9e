package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/database"
)

const userColumns = `id, email, password_hash, COALESCE(first_name,''), COALESCE(last_name,''),
	COALESCE(profile_image_url,''), COALESCE(location,''), skills, created_at, updated_at`

// PublicColumns selects a user's public profile aliased as u, in the order PublicDest expects.
const PublicColumns = `u.id, u.email, COALESCE(u.first_name,''), COALESCE(u.last_name,''),
	COALESCE(u.profile_image_url,''), COALESCE(u.location,''), u.skills, u.created_at`

// PublicDest returns scan destinations for PublicColumns.
func PublicDest(u *models.UserPublic) []interface{} {
	return []interface{}{&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.Location, &u.Skills, &u.CreatedAt}
}

// Repository handles user persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an auth repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.Location, &u.Skills, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a user by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.NotFound("user", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail returns a user by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, &domain.NotFoundError{Entity: "user"}
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// CreateUserParams holds the fields captured at registration.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Location     string
	Skills       []string
}

// Create inserts a new user. A duplicate email yields domain.ErrConflict.
func (r *Repository) Create(ctx context.Context, p CreateUserParams) (*models.User, error) {
	const q = `INSERT INTO users (email, password_hash, first_name, last_name, location, skills)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), $6)
		RETURNING ` + userColumns
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	u, err := scanUser(r.pool.QueryRow(ctx, q, p.Email, p.PasswordHash, p.FirstName, p.LastName, p.Location, skills))
	if err != nil {
		if database.PgCode(err) == database.CodeUniqueViolation {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// ProfileUpdate carries optional profile changes; nil fields are left as they are.
type ProfileUpdate struct {
	FirstName       *string   `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string   `json:"last_name" validate:"omitempty,max=100"`
	Location        *string   `json:"location" validate:"omitempty,max=255"`
	ProfileImageURL *string   `json:"profile_image_url" validate:"omitempty,url,max=512"`
	Skills          *[]string `json:"skills" validate:"omitempty,dive,min=1,max=100"`
}

// UpdateProfile applies a partial profile update and returns the updated user.
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) (*models.User, error) {
	const q = `UPDATE users SET
		first_name = COALESCE($2, first_name),
		last_name = COALESCE($3, last_name),
		location = COALESCE($4, location),
		profile_image_url = COALESCE($5, profile_image_url),
		skills = COALESCE($6, skills),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	var skills []string
	if p.Skills != nil {
		skills = *p.Skills
		if skills == nil {
			skills = []string{}
		}
	}
	u, err := scanUser(r.pool.QueryRow(ctx, q, id, p.FirstName, p.LastName, p.Location, p.ProfileImageURL, skills))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.NotFound("user", id)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}
