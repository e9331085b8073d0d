// Package persistence implements the repository interfaces over an in-memory
// entity store mirrored to a key-value document backend. Memory is the
// authority: every mutation applies in memory first and the matching JSON
// document is rewritten afterwards. Write failures are logged and swallowed.
package persistence

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	"github.com/finanzas-genius/backend/internal/integration/persistence/model"
)

// Store holds every collection behind one mutex, so composite mutations (a
// debt payment and its audit transaction, for example) are applied and
// observed atomically.
type Store struct {
	mu sync.Mutex
	kv adapter.KVStore

	accounts      []*entity.Account
	transactions  []*entity.Transaction
	subscriptions []*entity.Subscription
	goals         []*entity.SavingsGoal
	debts         []*entity.Debt
	settings      *entity.Settings
	emailJobs     []*entity.EmailJob
}

// NewStore creates a Store hydrated from the given backend. Absent or
// unreadable documents hydrate as empty collections; startup never fails on
// bad data.
func NewStore(ctx context.Context, kv adapter.KVStore) *Store {
	s := &Store{kv: kv}

	var accountModels []model.AccountModel
	if s.loadDocument(ctx, adapter.KeyAccounts, &accountModels) {
		for i := range accountModels {
			s.accounts = append(s.accounts, accountModels[i].ToEntity())
		}
	}

	var transactionModels []model.TransactionModel
	if s.loadDocument(ctx, adapter.KeyTransactions, &transactionModels) {
		for i := range transactionModels {
			s.transactions = append(s.transactions, transactionModels[i].ToEntity())
		}
	}

	var subscriptionModels []model.SubscriptionModel
	if s.loadDocument(ctx, adapter.KeySubscriptions, &subscriptionModels) {
		for i := range subscriptionModels {
			s.subscriptions = append(s.subscriptions, subscriptionModels[i].ToEntity())
		}
	}

	var goalModels []model.GoalModel
	if s.loadDocument(ctx, adapter.KeyGoals, &goalModels) {
		for i := range goalModels {
			s.goals = append(s.goals, goalModels[i].ToEntity())
		}
	}

	var debtModels []model.DebtModel
	if s.loadDocument(ctx, adapter.KeyDebts, &debtModels) {
		for i := range debtModels {
			s.debts = append(s.debts, debtModels[i].ToEntity())
		}
	}

	var settingsModel model.SettingsModel
	if s.loadDocument(ctx, adapter.KeySettings, &settingsModel) {
		s.settings = settingsModel.ToEntity()
	}

	var jobModels []model.EmailJobModel
	if s.loadDocument(ctx, adapter.KeyEmailQueue, &jobModels) {
		for i := range jobModels {
			s.emailJobs = append(s.emailJobs, jobModels[i].ToEntity())
		}
	}

	return s
}

// loadDocument reads and unmarshals one document. Returns false when the key
// is absent or the content cannot be used.
func (s *Store) loadDocument(ctx context.Context, key string, out interface{}) bool {
	data, err := s.kv.Load(ctx, key)
	if err != nil {
		slog.Warn("Failed to load stored document, starting empty", "key", key, "error", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("Stored document is corrupt, starting empty", "key", key, "error", err)
		return false
	}
	return true
}

// persist rewrites one document. Failures are logged only; the in-memory
// state stays authoritative.
func (s *Store) persist(ctx context.Context, key string, document interface{}) {
	data, err := json.Marshal(document)
	if err != nil {
		slog.Error("Failed to marshal document", "key", key, "error", err)
		return
	}
	if err := s.kv.Save(ctx, key, data); err != nil {
		slog.Error("Failed to persist document", "key", key, "error", err)
	}
}

// Callers hold s.mu for all persist*/current* helpers below.

func (s *Store) persistAccounts(ctx context.Context) {
	models := make([]*model.AccountModel, len(s.accounts))
	for i, a := range s.accounts {
		models[i] = model.AccountFromEntity(a)
	}
	s.persist(ctx, adapter.KeyAccounts, models)
}

func (s *Store) persistTransactions(ctx context.Context) {
	models := make([]*model.TransactionModel, len(s.transactions))
	for i, t := range s.transactions {
		models[i] = model.TransactionFromEntity(t)
	}
	s.persist(ctx, adapter.KeyTransactions, models)
}

func (s *Store) persistSubscriptions(ctx context.Context) {
	models := make([]*model.SubscriptionModel, len(s.subscriptions))
	for i, sub := range s.subscriptions {
		models[i] = model.SubscriptionFromEntity(sub)
	}
	s.persist(ctx, adapter.KeySubscriptions, models)
}

func (s *Store) persistGoals(ctx context.Context) {
	models := make([]*model.GoalModel, len(s.goals))
	for i, g := range s.goals {
		models[i] = model.GoalFromEntity(g)
	}
	s.persist(ctx, adapter.KeyGoals, models)
}

func (s *Store) persistDebts(ctx context.Context) {
	models := make([]*model.DebtModel, len(s.debts))
	for i, d := range s.debts {
		models[i] = model.DebtFromEntity(d)
	}
	s.persist(ctx, adapter.KeyDebts, models)
}

func (s *Store) persistSettings(ctx context.Context) {
	s.persist(ctx, adapter.KeySettings, model.SettingsFromEntity(s.currentSettings()))
}

func (s *Store) persistEmailJobs(ctx context.Context) {
	models := make([]*model.EmailJobModel, len(s.emailJobs))
	for i, j := range s.emailJobs {
		models[i] = model.EmailJobFromEntity(j)
	}
	s.persist(ctx, adapter.KeyEmailQueue, models)
}

// currentSettings returns the stored settings or the defaults.
func (s *Store) currentSettings() *entity.Settings {
	if s.settings == nil {
		return entity.DefaultSettings()
	}
	return s.settings
}

// clearAll wipes every collection in memory and on the backend.
func (s *Store) clearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	s.transactions = nil
	s.subscriptions = nil
	s.goals = nil
	s.debts = nil
	s.settings = nil
	s.emailJobs = nil

	if err := s.kv.DeleteAll(ctx); err != nil {
		slog.Error("Failed to clear stored documents", "error", err)
	}
}
