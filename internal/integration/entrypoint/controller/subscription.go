package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/usecase/subscription"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listUseCase   *subscription.ListSubscriptionsUseCase
	createUseCase *subscription.CreateSubscriptionUseCase
	deleteUseCase *subscription.DeleteSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listUseCase *subscription.ListSubscriptionsUseCase,
	createUseCase *subscription.CreateSubscriptionUseCase,
	deleteUseCase *subscription.DeleteSubscriptionUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve subscriptions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions))
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSubscriptionName),
		})
		return
	}

	nextPaymentDate, err := dto.ParseDate(req.NextPaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid nextPaymentDate format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingSubscriptionName),
		})
		return
	}

	input := subscription.CreateSubscriptionInput{
		Name:            req.Name,
		Amount:          decimal.NewFromFloat(req.Amount),
		Currency:        req.Currency,
		Frequency:       entity.Frequency(req.Frequency),
		Category:        entity.Category(req.Category),
		NextPaymentDate: nextPaymentDate,
		Description:     req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /subscriptions/:id requests.
func (c *SubscriptionController) Delete(ctx *gin.Context) {
	subscriptionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription ID format",
		})
		return
	}

	input := subscription.DeleteSubscriptionInput{
		ID: subscriptionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSubscriptionError handles subscription errors and returns appropriate HTTP responses.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	var subscriptionErr *domainerror.SubscriptionError
	if errors.As(err, &subscriptionErr) {
		statusCode := c.getStatusCodeForSubscriptionError(subscriptionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: subscriptionErr.Message,
			Code:  string(subscriptionErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSubscriptionError maps subscription error codes to HTTP status codes.
func (c *SubscriptionController) getStatusCodeForSubscriptionError(code domainerror.SubscriptionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSubscriptionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidSubscriptionAmount,
		domainerror.ErrCodeMissingSubscriptionName,
		domainerror.ErrCodeInvalidSubscriptionCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
