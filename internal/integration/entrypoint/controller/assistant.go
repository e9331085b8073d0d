package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-genius/backend/internal/application/usecase/assistant"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/dto"
)

// AssistantController handles AI assistant endpoints.
type AssistantController struct {
	processCommandUseCase  *assistant.ProcessCommandUseCase
	analyzeFinancesUseCase *assistant.AnalyzeFinancesUseCase
	suggestCategoryUseCase *assistant.SuggestCategoryUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(
	processCommandUseCase *assistant.ProcessCommandUseCase,
	analyzeFinancesUseCase *assistant.AnalyzeFinancesUseCase,
	suggestCategoryUseCase *assistant.SuggestCategoryUseCase,
) *AssistantController {
	return &AssistantController{
		processCommandUseCase:  processCommandUseCase,
		analyzeFinancesUseCase: analyzeFinancesUseCase,
		suggestCategoryUseCase: suggestCategoryUseCase,
	}
}

// ProcessCommand handles POST /assistant/commands requests.
func (c *AssistantController) ProcessCommand(ctx *gin.Context) {
	var req dto.ProcessCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyCommand),
		})
		return
	}

	input := assistant.ProcessCommandInput{
		Text:        req.Text,
		AudioBase64: req.AudioBase64,
	}

	output, err := c.processCommandUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProcessCommandResponse(output))
}

// AnalyzeFinances handles POST /assistant/analysis requests.
func (c *AssistantController) AnalyzeFinances(ctx *gin.Context) {
	output, err := c.analyzeFinancesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalysisResponse{
		Analysis: output.Analysis,
	})
}

// SuggestCategory handles POST /assistant/category-suggestions requests.
func (c *AssistantController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := assistant.SuggestCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}

	output, err := c.suggestCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category: string(output.Category),
	})
}

// handleAssistantError handles assistant errors and returns appropriate HTTP responses.
func (c *AssistantController) handleAssistantError(ctx *gin.Context, err error) {
	var assistantErr *domainerror.AssistantError
	if errors.As(err, &assistantErr) {
		statusCode := c.getStatusCodeForAssistantError(assistantErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: assistantErr.Message,
			Code:  string(assistantErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAssistantError maps assistant error codes to HTTP status codes.
func (c *AssistantController) getStatusCodeForAssistantError(code domainerror.AssistantErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyCommand, domainerror.ErrCodeCommandNotUnderstood:
		return http.StatusBadRequest
	case domainerror.ErrCodeAssistantUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeAssistantFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
