package adapter

import (
	"context"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the reminder email queue.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by
	// scheduled time.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// ExistsForReminder reports whether a job for the given reminder
	// occurrence is already queued or sent.
	ExistsForReminder(ctx context.Context, reminderKey string) (bool, error)
}
