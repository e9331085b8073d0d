// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	Name            string
	TotalAmount     decimal.Decimal
	RemainingAmount *decimal.Decimal // Defaults to the total when unset
	DueDate         *time.Time
	InterestRate    *decimal.Decimal
	Color           string
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtName,
			"debt name is required",
			domainerror.ErrMissingDebtName,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtTotal,
			"total amount must be greater than zero",
			domainerror.ErrInvalidDebtTotal,
		)
	}

	remaining := input.TotalAmount
	if input.RemainingAmount != nil {
		remaining = *input.RemainingAmount
	}
	if remaining.GreaterThan(input.TotalAmount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeRemainingExceedsTotal,
			"remaining amount cannot exceed the total amount",
			domainerror.ErrRemainingExceedsTotal,
		)
	}

	debt := entity.NewDebt(input.Name, input.TotalAmount, remaining, input.DueDate, input.InterestRate, input.Color)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}
