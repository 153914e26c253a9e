// Package testutil provides a PostgreSQL fixture for repository integration tests.
// Tests using it are skipped unless TEST_DATABASE_URL is set.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/churchserve/backend/pkg/database"
)

// lockKey serializes integration tests across packages, which go test runs in parallel.
const lockKey = 7305214

// Pool connects to TEST_DATABASE_URL, applies migrations and empties every table.
// The database is held exclusively until the test ends.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, dsn, database.PoolOptions{}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
		conn.Release()
	})

	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE volunteer_signups, opportunities, organization_members, organizations, users`)
	require.NoError(t, err)
	return pool
}

// User inserts a user and returns its id.
func User(t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, first_name) VALUES ($1, 'x', 'Test') RETURNING id`, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// Organization inserts an organization owned by ownerID, with its owner membership, and returns its id.
func Organization(t *testing.T, pool *pgxpool.Pool, name string, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO organizations (name, address, city, state, zip_code, owner_id)
		 VALUES ($1, '1 Main St', 'Springfield', 'IL', '62701', $2) RETURNING id`, name, ownerID).Scan(&id)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO organization_members (organization_id, user_id, role) VALUES ($1, $2, 'owner')`, id, ownerID)
	require.NoError(t, err)
	return id
}

// Opportunity inserts an opportunity and returns its id.
func Opportunity(t *testing.T, pool *pgxpool.Pool, orgID, creatorID uuid.UUID, category string, active bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO opportunities (title, description, category, date, start_time, end_time,
			volunteers_needed, organization_id, created_by_id, is_active)
		 VALUES ('Serve', 'Help out', $1, '2026-11-01', '09:00', '12:00', 5, $2, $3, $4) RETURNING id`,
		category, orgID, creatorID, active).Scan(&id)
	require.NoError(t, err)
	return id
}

// Signup inserts a signup row directly, bypassing the counter. hours may be nil.
func Signup(t *testing.T, pool *pgxpool.Pool, oppID, userID uuid.UUID, status string, hours *float64) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO volunteer_signups (opportunity_id, user_id, status, hours_worked) VALUES ($1, $2, $3, $4) RETURNING id`,
		oppID, userID, status, hours).Scan(&id)
	require.NoError(t, err)
	return id
}

// Counter returns the stored current_volunteers of an opportunity.
func Counter(t *testing.T, pool *pgxpool.Pool, oppID uuid.UUID) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT current_volunteers FROM opportunities WHERE id = $1`, oppID).Scan(&n))
	return n
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
