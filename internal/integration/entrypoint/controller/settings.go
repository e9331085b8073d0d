package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/usecase/settings"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles settings, data-clear and export endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
	clearUseCase  *settings.ClearDataUseCase
	exportUseCase *settings.ExportDataUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	clearUseCase *settings.ClearDataUseCase,
	exportUseCase *settings.ExportDataUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		clearUseCase:  clearUseCase,
		exportUseCase: exportUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidTheme),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		Settings: &entity.Settings{
			MonthlyBudget:  decimal.NewFromFloat(req.MonthlyBudget),
			UserName:       req.UserName,
			CurrencySymbol: req.CurrencySymbol,
			CurrencyCode:   req.CurrencyCode,
			Theme:          entity.Theme(req.Theme),
			ReminderEmail:  req.ReminderEmail,
		},
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// ClearData handles DELETE /data requests. Every collection is wiped and the
// settings return to their defaults.
func (c *SettingsController) ClearData(ctx *gin.Context) {
	if err := c.clearUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear data",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /export requests.
func (c *SettingsController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export data",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExportResponse(output))
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		statusCode := c.getStatusCodeForSettingsError(settingsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudget, domainerror.ErrCodeInvalidTheme:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
