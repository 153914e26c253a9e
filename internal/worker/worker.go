package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/metrics"
	"github.com/churchserve/backend/pkg/queue"
)

//go:generate mockgen -source=worker.go -destination=../mocks/mock_worker.go -package=mocks

// CounterStore recomputes current_volunteers from live signups.
type CounterStore interface {
	Reconcile(ctx context.Context, opportunityID uuid.UUID) (bool, error)
	ReconcileAll(ctx context.Context) (int64, error)
}

// JobSource is the reconcile job queue.
type JobSource interface {
	Dequeue(ctx context.Context) (*queue.Job, string, error)
	Retry(ctx context.Context, job *queue.Job) error
}

// Reconciler repairs volunteer counters on demand (queued jobs) and on a schedule (sweep).
type Reconciler struct {
	store   CounterStore
	jobs    JobSource
	backoff time.Duration
	logger  *zap.Logger
}

// NewReconciler creates a counter reconciler. jobs may be nil when only sweeps are used.
func NewReconciler(store CounterStore, jobs JobSource, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{store: store, jobs: jobs, backoff: queue.RetryBackoff, logger: logger}
}

// Process executes one reconcile job.
func (r *Reconciler) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeReconcileCounter {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.ReconcilePayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	_, err := r.ReconcileOne(ctx, payload.OpportunityID, payload.Reason)
	return err
}

// ReconcileOne repairs one opportunity's counter and reports whether it had drifted.
func (r *Reconciler) ReconcileOne(ctx context.Context, opportunityID uuid.UUID, reason string) (bool, error) {
	repaired, err := r.store.Reconcile(ctx, opportunityID)
	if err != nil {
		return false, err
	}
	if repaired {
		metrics.CountersRepaired.Inc()
		r.logger.Info("volunteer counter repaired",
			zap.String("opportunity_id", opportunityID.String()),
			zap.String("reason", reason))
	}
	return repaired, nil
}

// Sweep repairs every drifted counter once.
func (r *Reconciler) Sweep(ctx context.Context) (int64, error) {
	n, err := r.store.ReconcileAll(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.CountersRepaired.Add(float64(n))
		r.logger.Info("counter sweep repaired opportunities", zap.Int64("count", n))
	}
	return n, nil
}

// ScheduleSweeps returns a stopped cron scheduler that runs Sweep on spec.
// The caller starts it and waits on Stop().Done() at shutdown.
func (r *Reconciler) ScheduleSweeps(ctx context.Context, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cronLogger{r.logger.Sugar()}))
	_, err := c.AddFunc(spec, func() {
		if _, err := r.Sweep(ctx); err != nil {
			r.logger.Error("counter sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule sweep %q: %w", spec, err)
	}
	return c, nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Run starts the job loop: dequeue, process, retry on error.
func (r *Reconciler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconcile worker stopping")
			return
		default:
		}

		job, _, err := r.jobs.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			r.logger.Warn("dequeue error", zap.Error(err))
			r.sleep(ctx)
			continue
		}
		if job == nil {
			continue
		}

		r.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := r.Process(ctx, job); err != nil {
			r.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := r.jobs.Retry(ctx, job); reErr != nil {
				r.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			r.sleep(ctx)
		}
	}
}

func (r *Reconciler) sleep(ctx context.Context) {
	t := time.NewTimer(r.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
