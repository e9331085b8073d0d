package mock

import (
	"context"
	"errors"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// Assistant is a scripted stand-in for the Gemini service. Scenarios program
// the next parse result, analysis and category suggestion up front.
type Assistant struct {
	Available bool

	Parsed   *adapter.ParsedCommand
	ParseErr error

	Analysis   string
	AnalyzeErr error

	Category   entity.Category
	SuggestErr error
}

// NewAssistant creates an available assistant with empty scripts.
func NewAssistant() *Assistant {
	return &Assistant{
		Available: true,
		Category:  entity.CategoryOther,
	}
}

// IsAvailable reports the scripted availability.
func (a *Assistant) IsAvailable() bool {
	return a.Available
}

// ParseCommand returns the scripted parse result.
func (a *Assistant) ParseCommand(_ context.Context, _ adapter.CommandInput) (*adapter.ParsedCommand, error) {
	if a.ParseErr != nil {
		return nil, a.ParseErr
	}
	if a.Parsed == nil {
		return nil, errors.New("no parse result scripted")
	}
	return a.Parsed, nil
}

// Analyze returns the scripted analysis.
func (a *Assistant) Analyze(_ context.Context, _ []*entity.Subscription, _ []*entity.Transaction) (string, error) {
	if a.AnalyzeErr != nil {
		return "", a.AnalyzeErr
	}
	return a.Analysis, nil
}

// SuggestCategory returns the scripted category.
func (a *Assistant) SuggestCategory(_ context.Context, _, _ string) (entity.Category, error) {
	if a.SuggestErr != nil {
		return "", a.SuggestErr
	}
	return a.Category, nil
}

var _ adapter.AssistantService = (*Assistant)(nil)
