package adapter

import (
	"context"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// LedgerRepository couples a balance-bearing entity update with its audit
// transaction. Both mutations apply together under one store lock, so a goal
// contribution or debt payment is never visible without its paired expense
// record.
type LedgerRepository interface {
	// ApplyGoalContribution replaces the goal and appends the audit
	// transaction as a single in-memory mutation.
	ApplyGoalContribution(ctx context.Context, goal *entity.SavingsGoal, transaction *entity.Transaction) error

	// ApplyDebtPayment replaces the debt and appends the audit transaction as
	// a single in-memory mutation.
	ApplyDebtPayment(ctx context.Context, debt *entity.Debt, transaction *entity.Transaction) error
}
