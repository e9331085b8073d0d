package dto

import (
	"time"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=100"`
	TotalAmount     float64  `json:"totalAmount" binding:"required,gt=0"`
	RemainingAmount *float64 `json:"remainingAmount,omitempty" binding:"omitempty,gte=0"`
	DueDate         *string  `json:"dueDate,omitempty"`
	InterestRate    *float64 `json:"interestRate,omitempty" binding:"omitempty,gte=0"`
	Color           string   `json:"color,omitempty"`
}

// UpdateDebtRequest represents the request body for a full debt replace.
type UpdateDebtRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=100"`
	TotalAmount     float64  `json:"totalAmount" binding:"required,gt=0"`
	RemainingAmount float64  `json:"remainingAmount" binding:"gte=0"`
	DueDate         *string  `json:"dueDate,omitempty"`
	InterestRate    *float64 `json:"interestRate,omitempty" binding:"omitempty,gte=0"`
	Color           string   `json:"color,omitempty"`
}

// PayDebtRequest represents the request body for a debt payment.
type PayDebtRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TotalAmount     float64   `json:"totalAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	DueDate         *string   `json:"dueDate,omitempty"`
	InterestRate    *float64  `json:"interestRate,omitempty"`
	Color           string    `json:"color"`
	IsPaid          bool      `json:"isPaid"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// PaymentResponse carries the updated debt together with the expense
// transaction the payment produced.
type PaymentResponse struct {
	Debt        DebtResponse        `json:"debt"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	response := DebtResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		TotalAmount:     d.TotalAmount.InexactFloat64(),
		RemainingAmount: d.RemainingAmount.InexactFloat64(),
		DueDate:         FormatDatePtr(d.DueDate),
		Color:           d.Color,
		IsPaid:          d.IsPaid(),
		CreatedAt:       d.CreatedAt,
	}

	if d.InterestRate != nil {
		rate := d.InterestRate.InexactFloat64()
		response.InterestRate = &rate
	}

	return response
}

// ToDebtListResponse converts a list of debts to DebtListResponse.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = ToDebtResponse(d)
	}
	return DebtListResponse{
		Debts: responses,
	}
}
