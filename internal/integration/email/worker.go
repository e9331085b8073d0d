package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/email/templates"
)

// Worker drives the reminder pipeline: it periodically asks the Service to
// queue upcoming reminders, then drains the queue and sends the digests.
type Worker struct {
	service      *Service
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	scanInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	ScanInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		ScanInterval: 1 * time.Hour,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(
	service *Service,
	queue adapter.EmailQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	config WorkerConfig,
) *Worker {
	return &Worker{
		service:      service,
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		scanInterval: config.ScanInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"scan_interval", w.scanInterval,
		"batch_size", w.batchSize,
	)

	poll := time.NewTicker(w.pollInterval)
	defer poll.Stop()
	scan := time.NewTicker(w.scanInterval)
	defer scan.Stop()

	// Scan and process immediately on start, then on the tickers.
	w.scanReminders(ctx)
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-scan.C:
			w.scanReminders(ctx)
		case <-poll.C:
			w.processBatch(ctx)
		}
	}
}

// scanReminders queues reminders for upcoming payments.
func (w *Worker) scanReminders(ctx context.Context) {
	if err := w.service.QueueUpcomingReminders(ctx); err != nil {
		slog.Error("Failed to queue upcoming reminders", "error", err)
	}
}

// processBatch fetches and processes a batch of pending reminder jobs.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob renders and sends a single reminder job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"reminder_key", job.ReminderKey,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderJob(job)
	if err != nil {
		logger.Error("Failed to render reminder template", "error", err)
		// Template errors never get better on retry.
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		isPermanent := errors.As(err, &emailErr) && emailErr.IsPermanent()

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Reminder email sent", "resend_id", result.ResendID)
}

// renderJob renders the payment reminder digest for the job.
func (w *Worker) renderJob(job *entity.EmailJob) (html string, text string, err error) {
	data := templates.PaymentReminderData{
		UserName: job.RecipientName,
		Items: []templates.PaymentReminderItem{
			{
				Name:    getString(job.TemplateData, "name"),
				Kind:    getString(job.TemplateData, "kind"),
				Amount:  getString(job.TemplateData, "amount"),
				DueDate: getString(job.TemplateData, "dueDate"),
			},
		},
	}
	return w.renderer.Render("payment_reminder", data)
}

// handleFailure records a failed attempt and schedules a retry when allowed.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Reminder job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Reminder job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow runs one scan and one batch immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.scanReminders(ctx)
	w.processBatch(ctx)
}
