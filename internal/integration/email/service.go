package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// Service scans for upcoming payments and queues one reminder job per
// occurrence. A reminder key (source, entity ID, due date) keeps repeated
// scans from queueing the same payment twice.
type Service struct {
	queue            adapter.EmailQueueRepository
	subscriptionRepo adapter.SubscriptionRepository
	debtRepo         adapter.DebtRepository
	settingsRepo     adapter.SettingsRepository
	leadDays         int
}

// NewService creates a new reminder email service.
func NewService(
	queue adapter.EmailQueueRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	debtRepo adapter.DebtRepository,
	settingsRepo adapter.SettingsRepository,
	leadDays int,
) *Service {
	return &Service{
		queue:            queue,
		subscriptionRepo: subscriptionRepo,
		debtRepo:         debtRepo,
		settingsRepo:     settingsRepo,
		leadDays:         leadDays,
	}
}

// upcomingPayment is one payment falling inside the lead window.
type upcomingPayment struct {
	key    string
	name   string
	kind   string
	amount string
	due    time.Time
}

// QueueUpcomingReminders queues a reminder for each payment due within the
// lead window that has not been queued before. Nothing happens when no
// reminder email is configured.
func (s *Service) QueueUpcomingReminders(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.ReminderEmail == "" {
		return nil
	}

	payments, err := s.collectUpcoming(ctx, settings.CurrencySymbol)
	if err != nil {
		return err
	}

	queued := 0
	for _, p := range payments {
		exists, err := s.queue.ExistsForReminder(ctx, p.key)
		if err != nil {
			return fmt.Errorf("failed to check reminder queue: %w", err)
		}
		if exists {
			continue
		}

		job := entity.NewEmailJob(
			p.key,
			settings.ReminderEmail,
			settings.UserName,
			fmt.Sprintf("Pago próximo: %s - FinanzasGenius", p.name),
			map[string]interface{}{
				"name":    p.name,
				"kind":    p.kind,
				"amount":  p.amount,
				"dueDate": p.due.Format("2006-01-02"),
			},
		)
		if err := s.queue.Create(ctx, job); err != nil {
			return domainerror.NewEmailError(
				domainerror.ErrCodeEmailSendFailed,
				"failed to queue payment reminder",
				err,
			)
		}
		queued++
	}

	if queued > 0 {
		slog.Info("Payment reminders queued",
			"recipient", settings.ReminderEmail,
			"count", queued,
		)
	}
	return nil
}

// collectUpcoming gathers subscription charges and unpaid debts due within
// the lead window.
func (s *Service) collectUpcoming(ctx context.Context, currencySymbol string) ([]upcomingPayment, error) {
	now := time.Now()
	horizon := now.AddDate(0, 0, s.leadDays)

	subscriptions, err := s.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	debts, err := s.debtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	var payments []upcomingPayment
	for _, sub := range subscriptions {
		if !inWindow(sub.NextPaymentDate, now, horizon) {
			continue
		}
		payments = append(payments, upcomingPayment{
			key:    fmt.Sprintf("subscription:%s:%s", sub.ID, sub.NextPaymentDate.Format("2006-01-02")),
			name:   sub.Name,
			kind:   "Suscripción",
			amount: currencySymbol + sub.Amount.StringFixed(2),
			due:    sub.NextPaymentDate,
		})
	}
	for _, debt := range debts {
		if debt.DueDate == nil || debt.IsPaid() {
			continue
		}
		if !inWindow(*debt.DueDate, now, horizon) {
			continue
		}
		payments = append(payments, upcomingPayment{
			key:    fmt.Sprintf("debt:%s:%s", debt.ID, debt.DueDate.Format("2006-01-02")),
			name:   debt.Name,
			kind:   "Deuda",
			amount: currencySymbol + debt.RemainingAmount.StringFixed(2),
			due:    *debt.DueDate,
		})
	}

	return payments, nil
}

// inWindow reports whether due falls between the start of today and the
// horizon, inclusive.
func inWindow(due, now, horizon time.Time) bool {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !due.Before(startOfToday) && !due.After(horizon)
}
