package opportunities_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/opportunities"
	"github.com/churchserve/backend/internal/testutil"
)

func TestRepositoryCreateAndGet(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	org := testutil.Organization(t, pool, "Grace", owner)
	repo := opportunities.NewRepository(pool)

	o := &models.Opportunity{
		Title: "Food pantry", Description: "Sort cans", Category: "Food Service",
		Date: "2026-11-01", StartTime: "09:00", EndTime: "12:30",
		VolunteersNeeded: 4, OrganizationID: org, CreatedByID: owner, IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, o))
	assert.NotEqual(t, uuid.Nil, o.ID)
	assert.Equal(t, "2026-11-01", o.Date)
	assert.Equal(t, "12:30", o.EndTime)
	assert.Zero(t, o.CurrentVolunteers)
	assert.Equal(t, []string{}, o.RequiredSkills)

	d, err := repo.GetWithDetails(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Grace", d.Organization.Name)
	assert.Equal(t, owner, d.CreatedBy.ID)
	assert.Empty(t, d.VolunteerSignups)

	missing, err := repo.GetWithDetails(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	o.OrganizationID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, o), domain.ErrNotFound)
}

func TestRepositoryListFilters(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	orgA := testutil.Organization(t, pool, "A", owner)
	orgB := testutil.Organization(t, pool, "B", owner)
	food1 := testutil.Opportunity(t, pool, orgA, owner, "Food Service", true)
	food2 := testutil.Opportunity(t, pool, orgB, owner, "Food Service", true)
	youth := testutil.Opportunity(t, pool, orgA, owner, "Youth", true)
	inactive := testutil.Opportunity(t, pool, orgA, owner, "Food Service", false)
	svc := opportunities.NewService(opportunities.NewRepository(pool), 50, 200, nil)

	ids := func(list []models.OpportunityWithDetails) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(list))
		for _, d := range list {
			out = append(out, d.ID)
		}
		return out
	}

	list, err := svc.List(ctx, opportunities.ListFilters{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{food1, food2, youth}, ids(list))
	for _, d := range list {
		assert.True(t, d.IsActive)
	}

	off := false
	list, err = svc.List(ctx, opportunities.ListFilters{IsActive: &off})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{inactive}, ids(list))

	category := "Food Service"
	list, err = svc.List(ctx, opportunities.ListFilters{Category: &category})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, d := range list {
		assert.Equal(t, "Food Service", d.Category)
	}

	list, err = svc.List(ctx, opportunities.ListFilters{OrganizationID: &orgB})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{food2}, ids(list))

	list, err = svc.List(ctx, opportunities.ListFilters{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	page2, err := svc.List(ctx, opportunities.ListFilters{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.NotEqual(t, list[0].ID, page2[0].ID)
}

func TestRepositoryListHydratesSignups(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	org := testutil.Organization(t, pool, "Grace", owner)
	opp := testutil.Opportunity(t, pool, org, owner, "Food Service", true)
	v := testutil.User(t, pool, "v@example.com")
	testutil.Signup(t, pool, opp, v, "signed_up", nil)

	list, err := opportunities.NewRepository(pool).List(ctx, opportunities.NewService(nil, 0, 0, nil).Resolve(opportunities.ListFilters{}))
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].VolunteerSignups, 1)
	assert.Equal(t, v, list[0].VolunteerSignups[0].User.ID)
	assert.Equal(t, "v@example.com", list[0].VolunteerSignups[0].User.Email)
}

func TestRepositoryDeleteRemovesSignups(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	org := testutil.Organization(t, pool, "Grace", owner)
	opp := testutil.Opportunity(t, pool, org, owner, "Food Service", true)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		testutil.Signup(t, pool, opp, testutil.User(t, pool, email), "signed_up", nil)
	}
	svc := opportunities.NewService(opportunities.NewRepository(pool), 50, 200, nil)

	require.NoError(t, svc.Delete(ctx, opp))

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM volunteer_signups WHERE opportunity_id = $1`, opp).Scan(&n))
	assert.Zero(t, n)
	got, err := svc.Get(ctx, opp)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, svc.Delete(ctx, opp), domain.ErrNotFound)
}

func TestRepositoryUpdate(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	org := testutil.Organization(t, pool, "Grace", owner)
	opp := testutil.Opportunity(t, pool, org, owner, "Food Service", true)
	repo := opportunities.NewRepository(pool)

	title, date, active := "Renamed", "2026-12-24", false
	o, err := repo.Update(ctx, opp, opportunities.UpdateParams{Title: &title, Date: &date, IsActive: &active})
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, "Renamed", o.Title)
	assert.Equal(t, "2026-12-24", o.Date)
	assert.Equal(t, "Food Service", o.Category)
	assert.False(t, o.IsActive)

	o, err = repo.Update(ctx, uuid.New(), opportunities.UpdateParams{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRepositoryUpdateKeepsTimeOrder(t *testing.T) {
	pool := testutil.Pool(t)
	ctx := context.Background()
	owner := testutil.User(t, pool, "owner@example.com")
	org := testutil.Organization(t, pool, "Grace", owner)
	opp := testutil.Opportunity(t, pool, org, owner, "Food Service", true)
	svc := opportunities.NewService(opportunities.NewRepository(pool), 50, 200, nil)

	early := "08:00"
	_, err := svc.Update(ctx, opp, opportunities.UpdateParams{EndTime: &early})
	assert.True(t, domain.IsValidation(err), "end before the stored 09:00 start")

	late := "13:00"
	_, err = svc.Update(ctx, opp, opportunities.UpdateParams{StartTime: &late})
	assert.True(t, domain.IsValidation(err), "start after the stored 12:00 end")

	o, err := svc.Get(ctx, opp)
	require.NoError(t, err)
	assert.Equal(t, "09:00", o.StartTime)
	assert.Equal(t, "12:00", o.EndTime)

	lunch := "12:30"
	updated, err := svc.Update(ctx, opp, opportunities.UpdateParams{EndTime: &lunch})
	require.NoError(t, err)
	assert.Equal(t, "12:30", updated.EndTime)
}
