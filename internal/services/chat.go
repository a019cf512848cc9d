package services

import (
	"context"
	"errors"
	"strings"

	"github.com/W-Anubhav/resumeinsight/internal/models"
)

type ChatService interface {
	Respond(ctx context.Context, resumeText, jobDescription string, history []models.ChatTurn, question string) (string, []models.ChatTurn, error)
}

type chatService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewChatService(geminiService GeminiService) ChatService {
	return &chatService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Respond answers one chat turn. History is owned by the caller and returned
// with the user question and the assistant answer appended, in that order;
// clearing the conversation is the caller sending an empty history.
func (c *chatService) Respond(ctx context.Context, resumeText, jobDescription string, history []models.ChatTurn, question string) (string, []models.ChatTurn, error) {
	if strings.TrimSpace(question) == "" {
		return "", history, &PreconditionError{Field: "question"}
	}

	var systemPrompt string
	if strings.TrimSpace(resumeText) != "" && strings.TrimSpace(jobDescription) != "" {
		systemPrompt = c.promptBuilder.BuildChatSystemPrompt(resumeText, jobDescription)
	} else {
		systemPrompt = c.promptBuilder.BuildGenericChatPrompt()
	}

	answer, err := c.geminiService.Chat(ctx, systemPrompt, history, question)
	if err != nil {
		var pe *ProviderError
		if !errors.As(err, &pe) {
			return "", history, err
		}
		// Keep the session alive: the failure text is the answer.
		answer = pe.UserMessage()
	}

	updated := make([]models.ChatTurn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		models.ChatTurn{Role: models.RoleUser, Content: question},
		models.ChatTurn{Role: models.RoleAssistant, Content: answer},
	)

	return answer, updated, nil
}
