package assistant

import (
	"context"
	"log/slog"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// SuggestCategoryInput names the item to classify.
type SuggestCategoryInput struct {
	Name        string
	Description string
}

// SuggestCategoryOutput carries the proposed category.
type SuggestCategoryOutput struct {
	Category entity.Category
}

// SuggestCategoryUseCase asks the assistant for a category from the fixed
// set. Any failure or out-of-set answer falls back to CategoryOther.
type SuggestCategoryUseCase struct {
	assistant adapter.AssistantService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(assistant adapter.AssistantService) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		assistant: assistant,
	}
}

// Execute proposes a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !uc.assistant.IsAvailable() {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant service is not configured",
			domainerror.ErrAssistantUnavailable,
		)
	}

	category, err := uc.assistant.SuggestCategory(ctx, input.Name, input.Description)
	if err != nil {
		slog.Warn("Assistant category suggestion failed, falling back", "error", err)
		return &SuggestCategoryOutput{Category: entity.CategoryOther}, nil
	}
	if !entity.IsValidCategory(category) {
		return &SuggestCategoryOutput{Category: entity.CategoryOther}, nil
	}

	return &SuggestCategoryOutput{Category: category}, nil
}
