package signups_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/metrics"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/signups"
)

type fixture struct {
	store *mocks.MockSignupStore
	opps  *mocks.MockOpportunityLoader
	queue *mocks.MockEnqueuer
	svc   *signups.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		store: mocks.NewMockSignupStore(ctrl),
		opps:  mocks.NewMockOpportunityLoader(ctrl),
		queue: mocks.NewMockEnqueuer(ctrl),
	}
	f.svc = signups.NewService(f.store, f.opps, f.queue, nil)
	return f
}

func TestSignUp(t *testing.T) {
	f := newFixture(t)
	oppID, userID := uuid.New(), uuid.New()
	before := testutil.ToFloat64(metrics.SignupsCreated)

	f.store.EXPECT().Create(gomock.Any(), oppID, userID, "bring gloves").
		Return(&models.VolunteerSignup{ID: uuid.New(), OpportunityID: oppID, UserID: userID, Status: models.SignupStatusSignedUp}, nil)

	su, err := f.svc.SignUp(context.Background(), oppID, userID, signups.SignUpInput{Notes: "bring gloves"})
	require.NoError(t, err)
	assert.Equal(t, models.SignupStatusSignedUp, su.Status)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SignupsCreated))
}

func TestSignUpPropagatesStoreErrors(t *testing.T) {
	f := newFixture(t)
	oppID := uuid.New()

	f.store.EXPECT().Create(gomock.Any(), oppID, gomock.Any(), "").Return(nil, domain.NotFound("opportunity", oppID))
	_, err := f.svc.SignUp(context.Background(), oppID, uuid.New(), signups.SignUpInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.store.EXPECT().Create(gomock.Any(), oppID, gomock.Any(), "").Return(nil, domain.ErrConflict)
	_, err = f.svc.SignUp(context.Background(), oppID, uuid.New(), signups.SignUpInput{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSignUpRequiresIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SignUp(context.Background(), uuid.Nil, uuid.New(), signups.SignUpInput{})
	assert.True(t, domain.IsValidation(err))

	_, err = f.svc.SignUp(context.Background(), uuid.New(), uuid.Nil, signups.SignUpInput{})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateStatusValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New(), signups.UpdateStatusInput{Status: "maybe"})
	assert.True(t, domain.IsValidation(err))

	hours := -1.0
	_, err = f.svc.UpdateStatus(context.Background(), uuid.New(), signups.UpdateStatusInput{Status: models.SignupStatusCompleted, HoursWorked: &hours})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "hours_worked")
}

func TestUpdateStatusMissing(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.store.EXPECT().UpdateStatus(gomock.Any(), id, models.SignupStatusCompleted, nil).Return(signups.StatusChange{}, nil)

	_, err := f.svc.UpdateStatus(context.Background(), id, signups.UpdateStatusInput{Status: models.SignupStatusCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusDriftEnqueuesReconcile(t *testing.T) {
	f := newFixture(t)
	id, oppID := uuid.New(), uuid.New()
	before := testutil.ToFloat64(metrics.CounterDrift)

	f.store.EXPECT().UpdateStatus(gomock.Any(), id, models.SignupStatusCancelled, nil).Return(signups.StatusChange{
		Signup: &models.VolunteerSignup{ID: id, OpportunityID: oppID, Status: models.SignupStatusCancelled},
		From:   models.SignupStatusSignedUp,
		Drift:  true,
	}, nil)
	f.queue.EXPECT().EnqueueReconcile(gomock.Any(), oppID, gomock.Any()).Return(nil)

	su, err := f.svc.UpdateStatus(context.Background(), id, signups.UpdateStatusInput{Status: models.SignupStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.SignupStatusCancelled, su.Status)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CounterDrift))
}

func TestCancelMissingIsNoop(t *testing.T) {
	f := newFixture(t)
	before := testutil.ToFloat64(metrics.SignupsCancelled)

	f.store.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(signups.CancelResult{}, nil)

	assert.NoError(t, f.svc.Cancel(context.Background(), uuid.New()))
	assert.Equal(t, before, testutil.ToFloat64(metrics.SignupsCancelled))
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	id, oppID := uuid.New(), uuid.New()

	f.store.EXPECT().Cancel(gomock.Any(), id).Return(signups.CancelResult{Found: true, OpportunityID: oppID, Decremented: true}, nil)
	assert.NoError(t, f.svc.Cancel(context.Background(), id))

	f.store.EXPECT().Cancel(gomock.Any(), id).Return(signups.CancelResult{Found: true, OpportunityID: oppID, Drift: true}, nil)
	f.queue.EXPECT().EnqueueReconcile(gomock.Any(), oppID, "cancel").Return(errors.New("redis down"))
	assert.NoError(t, f.svc.Cancel(context.Background(), id), "enqueue failures are logged, not returned")
}

func TestCancelDriftWithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSignupStore(ctrl)
	svc := signups.NewService(store, mocks.NewMockOpportunityLoader(ctrl), nil, nil)

	store.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(signups.CancelResult{Found: true, OpportunityID: uuid.New(), Drift: true}, nil)
	assert.NoError(t, svc.Cancel(context.Background(), uuid.New()))
}

func TestListForUserHydratesOnce(t *testing.T) {
	f := newFixture(t)
	userID, oppA, oppB := uuid.New(), uuid.New(), uuid.New()
	list := []models.VolunteerSignup{
		{ID: uuid.New(), OpportunityID: oppA, UserID: userID},
		{ID: uuid.New(), OpportunityID: oppB, UserID: userID},
		{ID: uuid.New(), OpportunityID: oppA, UserID: userID},
	}

	f.store.EXPECT().ListByUser(gomock.Any(), userID).Return(list, nil)
	f.opps.EXPECT().GetManyWithDetails(gomock.Any(), []uuid.UUID{oppA, oppB}).Return(map[uuid.UUID]models.OpportunityWithDetails{
		oppA: {Opportunity: models.Opportunity{ID: oppA, Title: "A"}},
		oppB: {Opportunity: models.Opportunity{ID: oppB, Title: "B"}},
	}, nil)

	out, err := f.svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "A", out[0].Opportunity.Title)
	assert.Equal(t, "B", out[1].Opportunity.Title)
	assert.Equal(t, list[2].ID, out[2].ID)
}

func TestListForUserEmpty(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ListByUser(gomock.Any(), gomock.Any()).Return(nil, nil)

	out, err := f.svc.ListForUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
