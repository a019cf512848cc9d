package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/W-Anubhav/resumeinsight/internal/models"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, systemPrompt string, history []models.ChatTurn, question string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService creates the single process-wide Gemini client. It is built
// once at startup and shared by every request.
func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements GeminiService. One synchronous call, no retry; a
// failed call comes back as a *ProviderError for the caller to surface.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", classifyProviderError(err)
	}

	if resp == nil {
		return "", &ProviderError{Kind: ProviderOther, Err: fmt.Errorf("no response generated")}
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Kind: ProviderOther, Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}

// Chat implements GeminiService. The system instruction, the prior turns and
// the live question are sent as one content sequence in a single call.
func (g *geminiService) Chat(ctx context.Context, systemPrompt string, history []models.ChatTurn, question string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+2)
	contents = append(contents, genai.NewContentFromText(systemPrompt, genai.RoleUser))

	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Content, turnRole(turn.Role)))
	}

	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", classifyProviderError(err)
	}

	if resp == nil || resp.Text() == "" {
		return "", &ProviderError{Kind: ProviderOther, Err: fmt.Errorf("no text content in response")}
	}

	return resp.Text(), nil
}

// turnRole maps a stored chat role onto the wire role the model expects.
func turnRole(role models.ChatRole) genai.Role {
	if role == models.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

type ProviderErrorKind string

const (
	ProviderInvalidCredential ProviderErrorKind = "invalid_credential"
	ProviderQuotaExceeded     ProviderErrorKind = "quota_exceeded"
	ProviderRateLimited       ProviderErrorKind = "rate_limited"
	ProviderOther             ProviderErrorKind = "other"
)

// ProviderError is a failed outbound model call. It is caught at the call
// boundary and shown as a display string in place of the report, never
// propagated as a hard fault.
type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the user in place of a report.
func (e *ProviderError) UserMessage() string {
	switch e.Kind {
	case ProviderInvalidCredential:
		return "Error: Invalid API key. Please check your GEMINI_API_KEY configuration"
	case ProviderQuotaExceeded:
		return "Error: API quota exceeded. Please try again later"
	case ProviderRateLimited:
		return "Error: Rate limit exceeded. Please wait a moment and try again"
	default:
		return fmt.Sprintf("Error generating response: %v", e.Err)
	}
}

func classifyProviderError(err error) *ProviderError {
	msg := strings.ToUpper(err.Error())

	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 401, 403:
			return &ProviderError{Kind: ProviderInvalidCredential, Err: err}
		case 429:
			if strings.Contains(msg, "QUOTA") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
				return &ProviderError{Kind: ProviderQuotaExceeded, Err: err}
			}
			return &ProviderError{Kind: ProviderRateLimited, Err: err}
		}
	}

	switch {
	case strings.Contains(msg, "API_KEY") || strings.Contains(msg, "API KEY"):
		return &ProviderError{Kind: ProviderInvalidCredential, Err: err}
	case strings.Contains(msg, "QUOTA"):
		return &ProviderError{Kind: ProviderQuotaExceeded, Err: err}
	case strings.Contains(msg, "RATE_LIMIT") || strings.Contains(msg, "RATE LIMIT"):
		return &ProviderError{Kind: ProviderRateLimited, Err: err}
	}

	return &ProviderError{Kind: ProviderOther, Err: err}
}
