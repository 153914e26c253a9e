package opportunities_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/opportunities"
)

func validInput(orgID uuid.UUID) opportunities.CreateInput {
	return opportunities.CreateInput{
		Title:            " Food pantry ",
		Description:      "Sort donations",
		Category:         "food",
		Date:             "2026-11-01",
		StartTime:        "09:00",
		EndTime:          "12:00",
		VolunteersNeeded: 5,
		OrganizationID:   orgID,
	}
}

func TestResolveDefaults(t *testing.T) {
	svc := opportunities.NewService(nil, 50, 200, nil)

	f := svc.Resolve(opportunities.ListFilters{})
	require.NotNil(t, f.IsActive)
	assert.True(t, *f.IsActive)
	assert.Equal(t, 50, f.Limit)
	assert.Equal(t, 0, f.Offset)

	inactive := false
	f = svc.Resolve(opportunities.ListFilters{IsActive: &inactive, Limit: 1000, Offset: -3})
	assert.False(t, *f.IsActive)
	assert.Equal(t, 200, f.Limit)
	assert.Equal(t, 0, f.Offset)
}

func TestNewServiceFallbackLimits(t *testing.T) {
	f := opportunities.NewService(nil, 0, 0, nil).Resolve(opportunities.ListFilters{Limit: 500})
	assert.Equal(t, 200, f.Limit)
}

func TestCreateDefaultsActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOpportunityStore(ctrl)
	svc := opportunities.NewService(store, 50, 200, nil)
	orgID, creator := uuid.New(), uuid.New()

	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Opportunity) error {
		assert.Equal(t, "Food pantry", o.Title)
		assert.True(t, o.IsActive)
		assert.Zero(t, o.CurrentVolunteers)
		assert.Equal(t, creator, o.CreatedByID)
		o.ID = uuid.New()
		return nil
	})

	o, err := svc.Create(context.Background(), creator, validInput(orgID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, o.ID)
}

func TestCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := opportunities.NewService(mocks.NewMockOpportunityStore(ctrl), 50, 200, nil)

	tests := []struct {
		name  string
		edit  func(*opportunities.CreateInput)
		field string
	}{
		{"missing title", func(in *opportunities.CreateInput) { in.Title = "  " }, "title"},
		{"bad date", func(in *opportunities.CreateInput) { in.Date = "11/01/2026" }, "date"},
		{"bad time", func(in *opportunities.CreateInput) { in.StartTime = "9am" }, "start_time"},
		{"no volunteers", func(in *opportunities.CreateInput) { in.VolunteersNeeded = 0 }, "volunteers_needed"},
		{"recurring without pattern", func(in *opportunities.CreateInput) { in.IsRecurring = true }, "recurring_pattern"},
		{"no organization", func(in *opportunities.CreateInput) { in.OrganizationID = uuid.Nil }, "organization_id"},
		{"ends before start", func(in *opportunities.CreateInput) { in.EndTime = "08:00" }, "end_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(uuid.New())
			tt.edit(&in)
			_, err := svc.Create(context.Background(), uuid.New(), in)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestListPassesResolvedFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOpportunityStore(ctrl)
	svc := opportunities.NewService(store, 20, 100, nil)
	category := "youth"

	store.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f opportunities.ListFilters) ([]models.OpportunityWithDetails, error) {
			assert.Equal(t, category, *f.Category)
			assert.True(t, *f.IsActive)
			assert.Equal(t, 20, f.Limit)
			return []models.OpportunityWithDetails{}, nil
		})

	list, err := svc.List(context.Background(), opportunities.ListFilters{Category: &category})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOpportunityStore(ctrl)
	svc := opportunities.NewService(store, 50, 200, nil)
	id := uuid.New()

	title := "New"
	store.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, nil)
	_, err := svc.Update(context.Background(), id, opportunities.UpdateParams{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.EXPECT().Delete(gomock.Any(), id).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrNotFound)

	store.EXPECT().Delete(gomock.Any(), id).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestUpdateRejectsInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := opportunities.NewService(mocks.NewMockOpportunityStore(ctrl), 50, 200, nil)

	date := "tomorrow"
	_, err := svc.Update(context.Background(), uuid.New(), opportunities.UpdateParams{Date: &date})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateRejectsEndBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := opportunities.NewService(mocks.NewMockOpportunityStore(ctrl), 50, 200, nil)

	start, end := "14:00", "10:30"
	_, err := svc.Update(context.Background(), uuid.New(), opportunities.UpdateParams{StartTime: &start, EndTime: &end})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "end_time")
}
