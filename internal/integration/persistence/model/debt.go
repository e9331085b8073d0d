package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// DebtModel is one element of the debts document.
type DebtModel struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TotalAmount     float64   `json:"totalAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	DueDate         *string   `json:"dueDate,omitempty"`
	InterestRate    *float64  `json:"interestRate,omitempty"`
	Color           string    `json:"color,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	var interestRate *decimal.Decimal
	if m.InterestRate != nil {
		rate := decimal.NewFromFloat(*m.InterestRate)
		interestRate = &rate
	}

	return &entity.Debt{
		ID:              m.ID,
		Name:            m.Name,
		TotalAmount:     decimal.NewFromFloat(m.TotalAmount),
		RemainingAmount: decimal.NewFromFloat(m.RemainingAmount),
		DueDate:         parseDatePtr(m.DueDate),
		InterestRate:    interestRate,
		Color:           m.Color,
		CreatedAt:       m.CreatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	var interestRate *float64
	if debt.InterestRate != nil {
		rate := debt.InterestRate.InexactFloat64()
		interestRate = &rate
	}

	return &DebtModel{
		ID:              debt.ID,
		Name:            debt.Name,
		TotalAmount:     debt.TotalAmount.InexactFloat64(),
		RemainingAmount: debt.RemainingAmount.InexactFloat64(),
		DueDate:         formatDatePtr(debt.DueDate),
		InterestRate:    interestRate,
		Color:           debt.Color,
		CreatedAt:       debt.CreatedAt,
	}
}
