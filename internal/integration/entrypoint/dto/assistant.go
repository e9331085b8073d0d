package dto

import (
	"github.com/finanzas-genius/backend/internal/application/usecase/assistant"
)

// ProcessCommandRequest represents a natural-language command. Exactly one
// of text or audioBase64 should be set; audio is base64-encoded WAV data.
type ProcessCommandRequest struct {
	Text        string `json:"text,omitempty" binding:"omitempty,max=2000"`
	AudioBase64 string `json:"audioBase64,omitempty"`
}

// ProcessCommandResponse reports what a command produced. Transaction or
// Subscription is set when the intent was understood; message explains an
// UNKNOWN outcome.
type ProcessCommandResponse struct {
	Intent       string                `json:"intent"`
	Transaction  *TransactionResponse  `json:"transaction,omitempty"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	Message      string                `json:"message,omitempty"`
}

// AnalysisResponse carries the assistant's prose commentary.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// SuggestCategoryRequest names the item to classify.
type SuggestCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// SuggestCategoryResponse carries the proposed category.
type SuggestCategoryResponse struct {
	Category string `json:"category"`
}

// ToProcessCommandResponse converts a command outcome to its DTO.
func ToProcessCommandResponse(output *assistant.ProcessCommandOutput) ProcessCommandResponse {
	response := ProcessCommandResponse{
		Intent:  string(output.Intent),
		Message: output.Message,
	}

	if output.Transaction != nil {
		transaction := ToTransactionResponse(output.Transaction)
		response.Transaction = &transaction
	}
	if output.Subscription != nil {
		subscription := ToSubscriptionResponse(output.Subscription)
		response.Subscription = &subscription
	}

	return response
}
