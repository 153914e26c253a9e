package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/metrics"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/pkg/queue"
)

func reconcileJob(t *testing.T, id uuid.UUID) *queue.Job {
	job, err := queue.NewJob(queue.JobTypeReconcileCounter, queue.ReconcilePayload{OpportunityID: id, Reason: "cancel"})
	require.NoError(t, err)
	return job
}

func TestProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	r := NewReconciler(store, nil, nil)
	id := uuid.New()
	before := testutil.ToFloat64(metrics.CountersRepaired)

	store.EXPECT().Reconcile(gomock.Any(), id).Return(true, nil)

	require.NoError(t, r.Process(context.Background(), reconcileJob(t, id)))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CountersRepaired))
}

func TestProcessRejectsBadJobs(t *testing.T) {
	r := NewReconciler(mocks.NewMockCounterStore(gomock.NewController(t)), nil, nil)

	err := r.Process(context.Background(), &queue.Job{Type: "send_email"})
	assert.ErrorContains(t, err, "unknown job type")

	err = r.Process(context.Background(), &queue.Job{Type: queue.JobTypeReconcileCounter, Payload: json.RawMessage(`{"opportunity_id":`)})
	assert.ErrorContains(t, err, "unmarshal payload")
}

func TestReconcileOneInSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	r := NewReconciler(store, nil, nil)
	before := testutil.ToFloat64(metrics.CountersRepaired)

	store.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(false, nil)

	repaired, err := r.ReconcileOne(context.Background(), uuid.New(), "manual")
	require.NoError(t, err)
	assert.False(t, repaired)
	assert.Equal(t, before, testutil.ToFloat64(metrics.CountersRepaired))
}

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	r := NewReconciler(store, nil, nil)

	store.EXPECT().ReconcileAll(gomock.Any()).Return(int64(3), nil)
	n, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	store.EXPECT().ReconcileAll(gomock.Any()).Return(int64(0), errors.New("db down"))
	_, err = r.Sweep(context.Background())
	assert.Error(t, err)
}

func TestRunRetriesFailedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	jobs := mocks.NewMockJobSource(ctrl)
	r := NewReconciler(store, jobs, nil)
	r.backoff = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	job := reconcileJob(t, uuid.New())

	gomock.InOrder(
		jobs.EXPECT().Dequeue(gomock.Any()).Return(job, queue.QueueReconcile, nil),
		store.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(false, errors.New("db down")),
		jobs.EXPECT().Retry(gomock.Any(), job).Return(nil),
		jobs.EXPECT().Dequeue(gomock.Any()).DoAndReturn(func(context.Context) (*queue.Job, string, error) {
			cancel()
			return nil, "", nil
		}),
	)

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestScheduleSweeps(t *testing.T) {
	r := NewReconciler(mocks.NewMockCounterStore(gomock.NewController(t)), nil, nil)

	c, err := r.ScheduleSweeps(context.Background(), "@every 15m")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = r.ScheduleSweeps(context.Background(), "every now and then")
	assert.Error(t, err)
}

func TestScheduledSweepRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	r := NewReconciler(store, nil, nil)
	ran := make(chan struct{}, 1)

	store.EXPECT().ReconcileAll(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0, nil
	}).MinTimes(1)

	c, err := r.ScheduleSweeps(context.Background(), "@every 1s")
	require.NoError(t, err)
	c.Start()
	defer func() { <-c.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
}
