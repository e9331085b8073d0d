package email

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

type fakeQueue struct {
	jobs []*entity.EmailJob
}

func (f *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range f.jobs {
		if job.IsReadyToProcess() {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (f *fakeQueue) Update(_ context.Context, job *entity.EmailJob) error {
	for i, existing := range f.jobs {
		if existing.ID == job.ID {
			f.jobs[i] = job
			return nil
		}
	}
	return nil
}

func (f *fakeQueue) ExistsForReminder(_ context.Context, reminderKey string) (bool, error) {
	for _, job := range f.jobs {
		if job.ReminderKey == reminderKey {
			return true, nil
		}
	}
	return false, nil
}

type fakeSubscriptionRepo struct {
	subscriptions []*entity.Subscription
}

func (f *fakeSubscriptionRepo) List(_ context.Context) ([]*entity.Subscription, error) {
	return f.subscriptions, nil
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, s *entity.Subscription) error {
	f.subscriptions = append(f.subscriptions, s)
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeDebtRepo struct {
	debts []*entity.Debt
}

func (f *fakeDebtRepo) List(_ context.Context) ([]*entity.Debt, error) {
	return f.debts, nil
}

func (f *fakeDebtRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Debt, error) {
	return nil, nil
}

func (f *fakeDebtRepo) Create(_ context.Context, d *entity.Debt) error {
	f.debts = append(f.debts, d)
	return nil
}

func (f *fakeDebtRepo) Update(_ context.Context, _ *entity.Debt) error {
	return nil
}

func (f *fakeDebtRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeSettingsRepo) ClearAll(_ context.Context) error {
	f.settings = nil
	return nil
}

func settingsWithReminderEmail() *entity.Settings {
	settings := entity.DefaultSettings()
	settings.ReminderEmail = "user@example.com"
	return settings
}

func TestQueueUpcomingReminders(t *testing.T) {
	inWindow := time.Now().AddDate(0, 0, 2)
	outOfWindow := time.Now().AddDate(0, 0, 30)

	queue := &fakeQueue{}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, inWindow, ""),
		entity.NewSubscription("Dominio", decimal.NewFromInt(120), "USD", entity.FrequencyYearly, entity.CategorySoftware, outOfWindow, ""),
	}}
	debtRepo := &fakeDebtRepo{}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	service := NewService(queue, subscriptionRepo, debtRepo, settingsRepo, 3)
	if err := service.QueueUpcomingReminders(context.Background()); err != nil {
		t.Fatalf("QueueUpcomingReminders() error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.RecipientEmail != "user@example.com" {
		t.Errorf("recipient = %q, want user@example.com", job.RecipientEmail)
	}
	if job.TemplateData["name"] != "Netflix" {
		t.Errorf("template name = %v, want Netflix", job.TemplateData["name"])
	}
	if job.TemplateData["kind"] != "Suscripción" {
		t.Errorf("template kind = %v, want Suscripción", job.TemplateData["kind"])
	}
}

func TestQueueUpcomingRemindersDedup(t *testing.T) {
	queue := &fakeQueue{}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, time.Now().AddDate(0, 0, 1), ""),
	}}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	service := NewService(queue, subscriptionRepo, &fakeDebtRepo{}, settingsRepo, 3)

	// Two scans over the same occurrence queue a single job.
	if err := service.QueueUpcomingReminders(context.Background()); err != nil {
		t.Fatalf("first scan error = %v", err)
	}
	if err := service.QueueUpcomingReminders(context.Background()); err != nil {
		t.Fatalf("second scan error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Errorf("expected 1 queued job after rescan, got %d", len(queue.jobs))
	}
}

func TestQueueUpcomingRemindersSkipsWithoutRecipient(t *testing.T) {
	queue := &fakeQueue{}
	subscriptionRepo := &fakeSubscriptionRepo{subscriptions: []*entity.Subscription{
		entity.NewSubscription("Netflix", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, time.Now().AddDate(0, 0, 1), ""),
	}}

	service := NewService(queue, subscriptionRepo, &fakeDebtRepo{}, &fakeSettingsRepo{}, 3)
	if err := service.QueueUpcomingReminders(context.Background()); err != nil {
		t.Fatalf("QueueUpcomingReminders() error = %v", err)
	}

	if len(queue.jobs) != 0 {
		t.Errorf("expected no queued jobs without a reminder email, got %d", len(queue.jobs))
	}
}

func TestQueueUpcomingRemindersIncludesUnpaidDebts(t *testing.T) {
	due := time.Now().AddDate(0, 0, 2)
	unpaid := entity.NewDebt("Tarjeta", decimal.NewFromInt(500), decimal.NewFromInt(300), &due, nil, "")
	paid := entity.NewDebt("Préstamo", decimal.NewFromInt(200), decimal.Zero, &due, nil, "")
	noDueDate := entity.NewDebt("Hipoteca", decimal.NewFromInt(90000), decimal.NewFromInt(90000), nil, nil, "")

	queue := &fakeQueue{}
	debtRepo := &fakeDebtRepo{debts: []*entity.Debt{unpaid, paid, noDueDate}}
	settingsRepo := &fakeSettingsRepo{settings: settingsWithReminderEmail()}

	service := NewService(queue, &fakeSubscriptionRepo{}, debtRepo, settingsRepo, 3)
	if err := service.QueueUpcomingReminders(context.Background()); err != nil {
		t.Fatalf("QueueUpcomingReminders() error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}
	if queue.jobs[0].TemplateData["name"] != "Tarjeta" {
		t.Errorf("template name = %v, want Tarjeta", queue.jobs[0].TemplateData["name"])
	}
	if queue.jobs[0].TemplateData["kind"] != "Deuda" {
		t.Errorf("template kind = %v, want Deuda", queue.jobs[0].TemplateData["kind"])
	}
}
