package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/usecase/debt"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	updateUseCase *debt.UpdateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	payUseCase    *debt.PayDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	payUseCase *debt.PayDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		payUseCase:    payUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtName),
		})
		return
	}

	dueDate, ok := c.parseDueDate(ctx, req.DueDate)
	if !ok {
		return
	}

	input := debt.CreateDebtInput{
		Name:        req.Name,
		TotalAmount: decimal.NewFromFloat(req.TotalAmount),
		DueDate:     dueDate,
		Color:       req.Color,
	}

	if req.RemainingAmount != nil {
		remaining := decimal.NewFromFloat(*req.RemainingAmount)
		input.RemainingAmount = &remaining
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		input.InterestRate = &rate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtName),
		})
		return
	}

	dueDate, ok := c.parseDueDate(ctx, req.DueDate)
	if !ok {
		return
	}

	updated := &entity.Debt{
		ID:              debtID,
		Name:            req.Name,
		TotalAmount:     decimal.NewFromFloat(req.TotalAmount),
		RemainingAmount: decimal.NewFromFloat(req.RemainingAmount),
		DueDate:         dueDate,
		Color:           req.Color,
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		updated.InterestRate = &rate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{Debt: updated})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	input := debt.DeleteDebtInput{
		ID: debtID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Pay handles POST /debts/:id/payments requests.
func (c *DebtController) Pay(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.PayDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPayment),
		})
		return
	}

	input := debt.PayDebtInput{
		DebtID: debtID,
		Amount: decimal.NewFromFloat(req.Amount),
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PaymentResponse{
		Debt:        dto.ToDebtResponse(output.Debt),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

// parseDueDate parses an optional due date, writing the error response on
// failure.
func (c *DebtController) parseDueDate(ctx *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	dueDate, err := dto.ParseDate(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid dueDate format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDebtName),
		})
		return nil, false
	}
	return &dueDate, true
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		statusCode := c.getStatusCodeForDebtError(debtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePaymentExceedsRemaining:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDebtTotal,
		domainerror.ErrCodeInvalidPayment,
		domainerror.ErrCodeRemainingExceedsTotal,
		domainerror.ErrCodeMissingDebtName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
