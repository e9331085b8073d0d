package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	store *Store
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(store *Store) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		store: store,
	}
}

// Create adds a new email job to the queue.
func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *job
	r.store.emailJobs = append(r.store.emailJobs, &copied)
	r.store.persistEmailJobs(ctx)
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled time.
func (r *emailQueueRepository) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	var jobs []*entity.EmailJob
	for _, j := range r.store.emailJobs {
		if j.Status == entity.EmailStatusPending && !j.ScheduledAt.After(now) {
			copied := *j
			jobs = append(jobs, &copied)
		}
	}

	sort.Slice(jobs, func(i, k int) bool {
		return jobs[i].ScheduledAt.Before(jobs[k].ScheduledAt)
	})

	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// Update saves changes to an email job.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, j := range r.store.emailJobs {
		if j.ID == job.ID {
			copied := *job
			r.store.emailJobs[i] = &copied
			r.store.persistEmailJobs(ctx)
			return nil
		}
	}
	return domainerror.ErrEmailJobNotFound
}

// ExistsForReminder reports whether a job for the given reminder occurrence
// is already queued or sent.
func (r *emailQueueRepository) ExistsForReminder(_ context.Context, reminderKey string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, j := range r.store.emailJobs {
		if j.ReminderKey == reminderKey && j.Status != entity.EmailStatusFailed {
			return true, nil
		}
	}
	return false, nil
}
