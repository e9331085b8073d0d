// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// GeminiService implements the AssistantService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// ParseCommand extracts a structured transaction or subscription draft from a
// text or audio command.
func (s *GeminiService) ParseCommand(ctx context.Context, input adapter.CommandInput) (*adapter.ParsedCommand, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(s.commandSystemPrompt())},
	}

	var parts []genai.Part
	if input.AudioBase64 != "" {
		audio, err := base64.StdEncoding.DecodeString(input.AudioBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode audio: %w", err)
		}
		parts = append(parts,
			genai.Blob{MIMEType: "audio/wav", Data: audio},
			genai.Text("Analiza este audio y extrae la información financiera."),
		)
	} else {
		parts = append(parts, genai.Text(input.Text))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseCommandResponse(resp)
}

// commandSystemPrompt builds the extraction instructions, anchored to today's
// date so relative expressions like "ayer" resolve correctly.
func (s *GeminiService) commandSystemPrompt() string {
	today := time.Now().Format("2006-01-02")

	categories := make([]string, 0, len(entity.AllCategories()))
	for _, c := range entity.AllCategories() {
		categories = append(categories, string(c))
	}

	return fmt.Sprintf(`Eres un asistente de finanzas inteligente. Tu trabajo es extraer datos estructurados de una entrada de usuario (texto o audio) para crear una transacción o una suscripción.

FECHA DE HOY: %s

ENUMS PERMITIDOS:
Categorias: [%s]
Frecuencias: [weekly, monthly, yearly]
Tipos Transacción: [income, expense]

REGLAS:
1. Detecta si el usuario quiere registrar un gasto/ingreso único (TRANSACTION) o una suscripción recurrente (SUBSCRIPTION).
2. Si es suscripción, busca nombre, monto, frecuencia y próximo pago.
3. Si es transacción, busca descripción, monto, tipo (expense por defecto), categoría y fecha.
4. Interpreta fechas relativas como "ayer", "hoy", "el viernes pasado" basándote en la fecha de hoy.
5. Si falta la categoría, infiérela basada en la descripción.
6. Devuelve SOLO un objeto JSON válido.

SCHEMA JSON ESPERADO:
{
  "intent": "TRANSACTION" | "SUBSCRIPTION" | "UNKNOWN",
  "data": {
    "type": "income" | "expense",
    "amount": number,
    "category": string (debe coincidir exactamente con los enums),
    "date": "YYYY-MM-DD",
    "description": "string",

    "name": "string",
    "frequency": "weekly" | "monthly" | "yearly",
    "nextPaymentDate": "YYYY-MM-DD"
  },
  "error": "Mensaje de error si no se entiende" (opcional)
}`, today, strings.Join(categories, ", "))
}

// geminiCommand represents the raw command response from Gemini.
type geminiCommand struct {
	Intent string `json:"intent"`
	Data   struct {
		Type            string  `json:"type"`
		Amount          float64 `json:"amount"`
		Category        string  `json:"category"`
		Date            string  `json:"date"`
		Description     string  `json:"description"`
		Name            string  `json:"name"`
		Frequency       string  `json:"frequency"`
		NextPaymentDate string  `json:"nextPaymentDate"`
	} `json:"data"`
	Error string `json:"error"`
}

// parseCommandResponse converts the Gemini response into a ParsedCommand.
func (s *GeminiService) parseCommandResponse(resp *genai.GenerateContentResponse) (*adapter.ParsedCommand, error) {
	textContent, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var raw geminiCommand
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	switch raw.Intent {
	case string(adapter.IntentTransaction):
		return &adapter.ParsedCommand{
			Intent: adapter.IntentTransaction,
			Transaction: &adapter.TransactionDraft{
				Type:        raw.Data.Type,
				Amount:      decimal.NewFromFloat(raw.Data.Amount),
				Category:    raw.Data.Category,
				Date:        parseCommandDate(raw.Data.Date),
				Description: raw.Data.Description,
			},
		}, nil

	case string(adapter.IntentSubscription):
		return &adapter.ParsedCommand{
			Intent: adapter.IntentSubscription,
			Subscription: &adapter.SubscriptionDraft{
				Name:            raw.Data.Name,
				Amount:          decimal.NewFromFloat(raw.Data.Amount),
				Frequency:       raw.Data.Frequency,
				Category:        raw.Data.Category,
				NextPaymentDate: parseCommandDate(raw.Data.NextPaymentDate),
			},
		}, nil

	default:
		message := raw.Error
		if message == "" {
			message = "No pude entender la solicitud."
		}
		return &adapter.ParsedCommand{
			Intent: adapter.IntentUnknown,
			Error:  message,
		}, nil
	}
}

// Analyze produces financial commentary over the given subscriptions and
// recent transactions.
func (s *GeminiService) Analyze(ctx context.Context, subscriptions []*entity.Subscription, transactions []*entity.Transaction) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(s.analysisPrompt(subscriptions, transactions)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// analysisPrompt renders the portfolio for the advisor persona.
func (s *GeminiService) analysisPrompt(subscriptions []*entity.Subscription, transactions []*entity.Transaction) string {
	var sb strings.Builder

	sb.WriteString("Actúa como un asesor financiero personal experto.\n")
	sb.WriteString("Analiza la siguiente información financiera.\n\n")

	sb.WriteString("SUSCRIPCIONES RECURRENTES (Gastos Fijos):\n")
	if len(subscriptions) == 0 {
		sb.WriteString("(ninguna)\n")
	}
	for _, sub := range subscriptions {
		sb.WriteString(fmt.Sprintf("- [Suscripción] %s: %s %s (%s), Categoría: %s\n",
			sub.Name, sub.Amount, sub.Currency, sub.Frequency, sub.Category))
	}

	sb.WriteString("\nMOVIMIENTOS RECIENTES (Ingresos y Gastos Variables):\n")
	if len(transactions) == 0 {
		sb.WriteString("(ninguno)\n")
	}
	for _, t := range transactions {
		label := "Gasto"
		if t.Type == entity.TransactionTypeIncome {
			label = "Ingreso"
		}
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s - $%s (%s)\n",
			label, t.Date.Format("2006-01-02"), t.Description, t.Amount, t.Category))
	}

	sb.WriteString(`
Por favor, proporciona un análisis breve pero perspicaz en formato Markdown.
1. Evalúa el flujo de caja (Ingresos vs Gastos).
2. Identifica gastos innecesarios (tanto en suscripciones como gastos variables).
3. Sugiere formas concretas de ahorrar.
4. Comenta sobre la distribución del gasto.

Mantén un tono profesional, alentador y directo. Escribe en Español. Usa negritas para resaltar puntos clave.
`)

	return sb.String()
}

// SuggestCategory proposes a category from the fixed set for the given name
// and description.
func (s *GeminiService) SuggestCategory(ctx context.Context, name, description string) (entity.Category, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	categories := make([]string, 0, len(entity.AllCategories()))
	for _, c := range entity.AllCategories() {
		categories = append(categories, string(c))
	}

	prompt := fmt.Sprintf(
		`Dada la transacción/suscripción "%s" con descripción "%s", sugiere la categoría más apropiada de esta lista: %s. Devuelve SOLO el nombre de la categoría.`,
		name, description, strings.Join(categories, ", "),
	)

	model := client.GenerativeModel(s.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return entity.Category(strings.ToLower(strings.TrimSpace(text))), nil
}

// responseText extracts the text body of a Gemini response, stripping
// markdown code fences when present.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}

// parseCommandDate accepts yyyy-mm-dd; anything else comes back as the zero
// time and downstream defaults apply.
func parseCommandDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
