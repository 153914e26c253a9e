package stats_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/stats"
)

func TestVolunteerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStatsStore(ctrl)
	svc := stats.NewService(store)
	userID := uuid.New()

	store.EXPECT().HoursVolunteered(gomock.Any(), userID).Return(5.5, nil)
	store.EXPECT().OpportunitiesCompleted(gomock.Any(), userID).Return(2, nil)
	store.EXPECT().ChurchesServed(gomock.Any(), userID).Return(2, nil)

	got, err := svc.VolunteerStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.VolunteerStats{HoursVolunteered: 5.5, OpportunitiesCompleted: 2, ChurchesServed: 2}, got)
}

func TestOrganizationStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStatsStore(ctrl)
	svc := stats.NewService(store)
	orgID := uuid.New()

	store.EXPECT().CountOpportunities(gomock.Any(), orgID, true).Return(2, nil)
	store.EXPECT().CountOpportunities(gomock.Any(), orgID, false).Return(1, nil)
	store.EXPECT().TotalVolunteers(gomock.Any(), orgID).Return(3, nil)

	got, err := svc.OrganizationStats(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, models.OrganizationStats{ActiveOpportunities: 2, CompletedOpportunities: 1, TotalVolunteers: 3}, got)
}

func TestStatsErrorDiscardsPartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStatsStore(ctrl)
	svc := stats.NewService(store)

	store.EXPECT().HoursVolunteered(gomock.Any(), gomock.Any()).Return(3.0, nil).AnyTimes()
	store.EXPECT().OpportunitiesCompleted(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))
	store.EXPECT().ChurchesServed(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()

	got, err := svc.VolunteerStats(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "timeout")
	assert.Zero(t, got)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStatsStore(ctrl)
	h := stats.NewHandler(stats.NewService(store), nil)
	caller := uuid.New()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, caller)
		c.Next()
	})
	r.GET("/user/stats", h.Volunteer)
	r.GET("/organizations/:id/stats", h.Organization)

	store.EXPECT().HoursVolunteered(gomock.Any(), caller).Return(0.0, nil)
	store.EXPECT().OpportunitiesCompleted(gomock.Any(), caller).Return(0, nil)
	store.EXPECT().ChurchesServed(gomock.Any(), caller).Return(0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hours_volunteered":0`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organizations/abc/stats", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
