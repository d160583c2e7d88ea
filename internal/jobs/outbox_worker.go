package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nidhisakhi/backend/internal/observability"
)

const (
	TopicLoanSubmitted     = "loan_submitted"
	TopicLoanStatusChanged = "loan_status_changed"
	TopicContactSubmitted  = "contact_submitted"
)

const (
	outcomeDone   = "done"
	outcomeRetry  = "retry"
	outcomeFailed = "failed"
)

type OutboxJob struct {
	ID          int64
	Topic       string
	Payload     []byte
	Status      string
	Attempts    int32
	LastError   string
	AvailableAt time.Time
}

type OutboxRepository interface {
	ClaimPending(ctx context.Context, limit int32) ([]OutboxJob, error)
	MarkDone(ctx context.Context, jobID int64) error
	MarkRetry(ctx context.Context, jobID int64, nextAvailableAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, jobID int64, lastError string) error
}

type Worker struct {
	outboxRepo   OutboxRepository
	notifier     Notifier
	metrics      *observability.Metrics
	maxAttempts  int32
	now          func() time.Time
	retryBackoff func(attempt int32) time.Duration
}

func NewWorker(outboxRepo OutboxRepository, notifier Notifier, metrics *observability.Metrics) *Worker {
	return &Worker{
		outboxRepo:  outboxRepo,
		notifier:    notifier,
		metrics:     metrics,
		maxAttempts: 5,
		now:         func() time.Time { return time.Now().UTC() },
		retryBackoff: func(attempt int32) time.Duration {
			if attempt < 1 {
				attempt = 1
			}
			return time.Duration(attempt*15) * time.Second
		},
	}
}

func (w *Worker) RunOnce(ctx context.Context, batchSize int32) error {
	jobs, err := w.outboxRepo.ClaimPending(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if err := w.processJob(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

func (w *Worker) processJob(ctx context.Context, job OutboxJob) error {
	switch job.Topic {
	case TopicLoanSubmitted, TopicLoanStatusChanged, TopicContactSubmitted:
	default:
		return w.handleJobError(ctx, job, errors.New("unsupported_topic"))
	}

	fields := map[string]any{}
	if err := json.Unmarshal(job.Payload, &fields); err != nil {
		return w.handleJobError(ctx, job, fmt.Errorf("invalid_payload"))
	}

	if err := w.notifier.Notify(ctx, Event{JobID: job.ID, Topic: job.Topic, Fields: fields}); err != nil {
		return w.handleJobError(ctx, job, err)
	}

	w.metrics.ObserveOutboxJob(job.Topic, outcomeDone)
	return w.outboxRepo.MarkDone(ctx, job.ID)
}

func (w *Worker) handleJobError(ctx context.Context, job OutboxJob, err error) error {
	msg := err.Error()
	if job.Attempts >= w.maxAttempts {
		w.metrics.ObserveOutboxJob(job.Topic, outcomeFailed)
		return w.outboxRepo.MarkFailed(ctx, job.ID, msg)
	}
	w.metrics.ObserveOutboxJob(job.Topic, outcomeRetry)
	next := w.now().Add(w.retryBackoff(job.Attempts))
	return w.outboxRepo.MarkRetry(ctx, job.ID, next, msg)
}
