package organizations

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/database"
)

// Columns selects an organization aliased as o, in the order Dest expects.
const Columns = `o.id, o.name, COALESCE(o.description,''), o.address, o.city, o.state, o.zip_code,
	COALESCE(o.phone,''), COALESCE(o.email,''), COALESCE(o.website,''), COALESCE(o.denomination_affiliation,''),
	o.is_verified, o.owner_id, o.latitude::float8, o.longitude::float8, COALESCE(o.logo_key,''), o.created_at, o.updated_at`

// Repository handles organization and organization_members persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an organizations repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Dest returns scan destinations for Columns.
func Dest(o *models.Organization) []interface{} {
	return []interface{}{&o.ID, &o.Name, &o.Description, &o.Address, &o.City, &o.State, &o.ZipCode,
		&o.Phone, &o.Email, &o.Website, &o.DenominationAffiliation,
		&o.IsVerified, &o.OwnerID, &o.Latitude, &o.Longitude, &o.LogoKey, &o.CreatedAt, &o.UpdatedAt}
}

// CreateWithOwner inserts the organization and its single owner membership in one transaction.
func (r *Repository) CreateWithOwner(ctx context.Context, org *models.Organization) (*models.OrganizationMember, error) {
	const insertOrg = `INSERT INTO organizations AS o (name, description, address, city, state, zip_code, phone, email,
			website, denomination_affiliation, owner_id, latitude, longitude)
		VALUES ($1, NULLIF($2,''), $3, $4, $5, $6, NULLIF($7,''), NULLIF($8,''), NULLIF($9,''), NULLIF($10,''), $11, $12, $13)
		RETURNING ` + Columns
	const insertOwner = `INSERT INTO organization_members (organization_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, organization_id, user_id, role, created_at`

	var member models.OrganizationMember
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrg, org.Name, org.Description, org.Address, org.City, org.State, org.ZipCode,
			org.Phone, org.Email, org.Website, org.DenominationAffiliation, org.OwnerID, org.Latitude, org.Longitude).
			Scan(Dest(org)...)
		if err != nil {
			if database.PgCode(err) == database.CodeForeignKeyViolation {
				return domain.NotFound("user", org.OwnerID)
			}
			return fmt.Errorf("insert organization: %w", err)
		}
		if err := tx.QueryRow(ctx, insertOwner, org.ID, org.OwnerID, models.OrgRoleOwner).
			Scan(&member.ID, &member.OrganizationID, &member.UserID, &member.Role, &member.CreatedAt); err != nil {
			return fmt.Errorf("insert owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByID returns an organization by ID, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.pool.QueryRow(ctx, `SELECT `+Columns+` FROM organizations o WHERE o.id = $1`, id).Scan(Dest(&org)...)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

// GetOwner returns the public profile of the organization's owner.
func (r *Repository) GetOwner(ctx context.Context, org *models.Organization) (models.UserPublic, error) {
	var u models.UserPublic
	err := r.pool.QueryRow(ctx, `SELECT `+auth.PublicColumns+` FROM users u WHERE u.id = $1`, org.OwnerID).Scan(auth.PublicDest(&u)...)
	if err != nil {
		return u, fmt.Errorf("get owner: %w", err)
	}
	return u, nil
}

// ListByOwner returns organizations owned by the user ordered by name.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+Columns+` FROM organizations o WHERE o.owner_id = $1 ORDER BY o.name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list organizations by owner: %w", err)
	}
	defer rows.Close()
	list := []models.Organization{}
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(Dest(&o)...); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateParams carries optional organization changes; nil fields are left as they are.
type UpdateParams struct {
	Name                    *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description             *string  `json:"description" validate:"omitempty,max=5000"`
	Address                 *string  `json:"address" validate:"omitempty,min=1"`
	City                    *string  `json:"city" validate:"omitempty,min=1,max=100"`
	State                   *string  `json:"state" validate:"omitempty,min=1,max=50"`
	ZipCode                 *string  `json:"zip_code" validate:"omitempty,min=1,max=10"`
	Phone                   *string  `json:"phone" validate:"omitempty,max=20"`
	Email                   *string  `json:"email" validate:"omitempty,email,max=255"`
	Website                 *string  `json:"website" validate:"omitempty,url,max=255"`
	DenominationAffiliation *string  `json:"denomination_affiliation" validate:"omitempty,max=100"`
	Latitude                *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Update applies a partial update and returns the updated row, or nil when the organization does not exist.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Organization, error) {
	const q = `UPDATE organizations AS o SET
		name = COALESCE($2, name),
		description = COALESCE($3, description),
		address = COALESCE($4, address),
		city = COALESCE($5, city),
		state = COALESCE($6, state),
		zip_code = COALESCE($7, zip_code),
		phone = COALESCE($8, phone),
		email = COALESCE($9, email),
		website = COALESCE($10, website),
		denomination_affiliation = COALESCE($11, denomination_affiliation),
		latitude = COALESCE($12, latitude),
		longitude = COALESCE($13, longitude),
		updated_at = NOW()
		WHERE o.id = $1
		RETURNING ` + Columns
	var org models.Organization
	err := r.pool.QueryRow(ctx, q, id, p.Name, p.Description, p.Address, p.City, p.State, p.ZipCode,
		p.Phone, p.Email, p.Website, p.DenominationAffiliation, p.Latitude, p.Longitude).Scan(Dest(&org)...)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return &org, nil
}

// SetVerified sets is_verified. Returns false when the organization does not exist.
func (r *Repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE organizations SET is_verified = $2, updated_at = NOW() WHERE id = $1`, id, verified)
	if err != nil {
		return false, fmt.Errorf("set verified: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetLogoKey stores the S3 key of the organization's logo and returns the previous key.
func (r *Repository) SetLogoKey(ctx context.Context, id uuid.UUID, key string) (string, error) {
	const q = `UPDATE organizations o SET logo_key = $2, updated_at = NOW()
		FROM (SELECT id, logo_key FROM organizations WHERE id = $1 FOR UPDATE) prev
		WHERE o.id = prev.id
		RETURNING COALESCE(prev.logo_key, '')`
	var prev string
	if err := r.pool.QueryRow(ctx, q, id, key).Scan(&prev); err != nil {
		if database.IsNoRows(err) {
			return "", domain.NotFound("organization", id)
		}
		return "", fmt.Errorf("set logo key: %w", err)
	}
	return prev, nil
}

// AddMember inserts a membership row. A second row for the same (organization, user) yields domain.ErrConflict.
func (r *Repository) AddMember(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) (*models.OrganizationMember, error) {
	const q = `INSERT INTO organization_members (organization_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, organization_id, user_id, role, created_at`
	var m models.OrganizationMember
	err := r.pool.QueryRow(ctx, q, orgID, userID, role).Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		switch database.PgCode(err) {
		case database.CodeUniqueViolation:
			return nil, fmt.Errorf("user is already a member: %w", domain.ErrConflict)
		case database.CodeForeignKeyViolation:
			return nil, &domain.NotFoundError{Entity: "organization or user"}
		}
		return nil, fmt.Errorf("add member: %w", err)
	}
	return &m, nil
}

// GetMemberRole returns the user's role in the organization, or "" if not a member.
func (r *Repository) GetMemberRole(ctx context.Context, orgID, userID uuid.UUID) (models.OrgRole, error) {
	const q = `SELECT role FROM organization_members WHERE organization_id = $1 AND user_id = $2`
	var role models.OrgRole
	if err := r.pool.QueryRow(ctx, q, orgID, userID).Scan(&role); err != nil {
		if database.IsNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get member role: %w", err)
	}
	return role, nil
}

// UpdateMemberRole changes a non-owner member's role.
func (r *Repository) UpdateMemberRole(ctx context.Context, orgID, userID uuid.UUID, role models.OrgRole) error {
	const q = `UPDATE organization_members SET role = $3
		WHERE organization_id = $1 AND user_id = $2 AND role <> 'owner'`
	tag, err := r.pool.Exec(ctx, q, orgID, userID, role)
	if err != nil {
		return fmt.Errorf("update member role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "member", ID: userID.String()}
	}
	return nil
}

// RemoveMember deletes a non-owner membership.
func (r *Repository) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	const q = `DELETE FROM organization_members WHERE organization_id = $1 AND user_id = $2 AND role <> 'owner'`
	tag, err := r.pool.Exec(ctx, q, orgID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "member", ID: userID.String()}
	}
	return nil
}

// ListMembers returns members of an organization with their users, oldest first.
func (r *Repository) ListMembers(ctx context.Context, orgID uuid.UUID) ([]models.MemberWithUser, error) {
	const q = `SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at, ` + auth.PublicColumns + `
		FROM organization_members m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.organization_id = $1
		ORDER BY m.created_at ASC`
	rows, err := r.pool.Query(ctx, q, orgID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	list := []models.MemberWithUser{}
	for rows.Next() {
		var m models.MemberWithUser
		dest := append([]interface{}{&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt}, auth.PublicDest(&m.User)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListMembershipsForUser returns the user's memberships with their organizations.
func (r *Repository) ListMembershipsForUser(ctx context.Context, userID uuid.UUID) ([]models.MembershipWithOrganization, error) {
	const q = `SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at, ` + Columns + `
		FROM organization_members m
		INNER JOIN organizations o ON o.id = m.organization_id
		WHERE m.user_id = $1
		ORDER BY o.name`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	list := []models.MembershipWithOrganization{}
	for rows.Next() {
		var m models.MembershipWithOrganization
		dest := append([]interface{}{&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt}, Dest(&m.Organization)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
