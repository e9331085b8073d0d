package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/email/templates"
)

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (f *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_123"}, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *fakeSender, settingsRepo *fakeSettingsRepo, subscriptionRepo *fakeSubscriptionRepo) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	service := NewService(queue, subscriptionRepo, &fakeDebtRepo{}, settingsRepo, 3)
	return NewWorker(service, queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerSendsQueuedReminder(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, time.Now().AddDate(0, 0, 1), ""),
	}}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	worker := newTestWorker(t, queue, sender, settingsRepo, subscriptionRepo)
	worker.ProcessNow(context.Background())

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "user@example.com" {
		t.Errorf("recipient = %q, want user@example.com", sender.sent[0].To)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Status != entity.EmailStatusSent {
		t.Errorf("job status = %q, want %q", job.Status, entity.EmailStatusSent)
	}
	if job.ResendID != "re_123" {
		t.Errorf("resend ID = %q, want re_123", job.ResendID)
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{err: domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"rate limited",
		errors.New("429"),
	)}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, time.Now().AddDate(0, 0, 1), ""),
	}}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	worker := newTestWorker(t, queue, sender, settingsRepo, subscriptionRepo)
	worker.ProcessNow(context.Background())

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Status != entity.EmailStatusPending {
		t.Errorf("job status = %q, want %q for retry", job.Status, entity.EmailStatusPending)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
}

func TestWorkerDropsPermanentFailure(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{err: domainerror.NewEmailError(
		domainerror.ErrCodePermanentEmailFailure,
		"invalid recipient",
		errors.New("422"),
	)}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, time.Now().AddDate(0, 0, 1), ""),
	}}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	worker := newTestWorker(t, queue, sender, settingsRepo, subscriptionRepo)
	worker.ProcessNow(context.Background())

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Status != entity.EmailStatusFailed {
		t.Errorf("job status = %q, want %q", job.Status, entity.EmailStatusFailed)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
}
