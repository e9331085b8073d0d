package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// registerAppSteps registers clock and assistant scripting steps.
func registerAppSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^the assistant is unavailable$`, theAssistantIsUnavailable)
	ctx.Step(`^the assistant will fail to parse the command$`, theAssistantWillFailToParse)
	ctx.Step(`^the assistant will parse the command as:$`, theAssistantWillParseTheCommandAs)
	ctx.Step(`^the assistant analysis will be "([^"]*)"$`, theAssistantAnalysisWillBe)
	ctx.Step(`^the assistant will suggest category "([^"]*)"$`, theAssistantWillSuggestCategory)
}

func todayIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	now, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	tc.clock.SetNow(now.Add(12 * time.Hour))
	return nil
}

func theAssistantIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.Available = false
	return nil
}

func theAssistantWillFailToParse(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.ParseErr = errors.New("upstream model failure")
	return nil
}

// scriptedCommand mirrors the docstring shape scenarios use to program the
// assistant's parse result.
type scriptedCommand struct {
	Intent      string `json:"intent"`
	Error       string `json:"error"`
	Transaction *struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
	} `json:"transaction"`
	Subscription *struct {
		Name            string  `json:"name"`
		Amount          float64 `json:"amount"`
		Frequency       string  `json:"frequency"`
		Category        string  `json:"category"`
		NextPaymentDate string  `json:"nextPaymentDate"`
	} `json:"subscription"`
}

func theAssistantWillParseTheCommandAs(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var scripted scriptedCommand
	if err := json.Unmarshal([]byte(body.Content), &scripted); err != nil {
		return fmt.Errorf("invalid scripted command: %w", err)
	}

	parsed := &adapter.ParsedCommand{
		Intent: adapter.CommandIntent(scripted.Intent),
		Error:  scripted.Error,
	}

	if scripted.Transaction != nil {
		date, err := time.Parse("2006-01-02", scripted.Transaction.Date)
		if err != nil {
			return fmt.Errorf("invalid transaction date: %w", err)
		}
		parsed.Transaction = &adapter.TransactionDraft{
			Type:        scripted.Transaction.Type,
			Amount:      decimal.NewFromFloat(scripted.Transaction.Amount),
			Category:    scripted.Transaction.Category,
			Date:        date,
			Description: scripted.Transaction.Description,
		}
	}

	if scripted.Subscription != nil {
		date, err := time.Parse("2006-01-02", scripted.Subscription.NextPaymentDate)
		if err != nil {
			return fmt.Errorf("invalid subscription date: %w", err)
		}
		parsed.Subscription = &adapter.SubscriptionDraft{
			Name:            scripted.Subscription.Name,
			Amount:          decimal.NewFromFloat(scripted.Subscription.Amount),
			Frequency:       scripted.Subscription.Frequency,
			Category:        scripted.Subscription.Category,
			NextPaymentDate: date,
		}
	}

	tc.assistant.Parsed = parsed
	return nil
}

func theAssistantAnalysisWillBe(ctx context.Context, analysis string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.Analysis = analysis
	return nil
}

func theAssistantWillSuggestCategory(ctx context.Context, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.Category = entity.Category(category)
	return nil
}
