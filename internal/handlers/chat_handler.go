package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/models"
	"github.com/W-Anubhav/resumeinsight/internal/repositories"
	"github.com/W-Anubhav/resumeinsight/internal/services"
)

type ChatHandler struct {
	docRepo     repositories.DocumentRepository
	extractor   services.TextExtractor
	chatService services.ChatService
}

func NewChatHandler(
	docRepo repositories.DocumentRepository,
	extractor services.TextExtractor,
	chatService services.ChatService,
) *ChatHandler {
	return &ChatHandler{
		docRepo:     docRepo,
		extractor:   extractor,
		chatService: chatService,
	}
}

// HandleChat handles POST /chat. The conversation history travels with the
// request and comes back extended; the server keeps no chat state.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	// Resume context is optional; without it the assistant answers with
	// general career advice.
	resumeText := ""
	if req.DocumentID != "" {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		if doc, err := h.docRepo.FindByID(docID); err == nil {
			if data, err := os.ReadFile(doc.FilePath); err == nil {
				if text, err := h.extractor.Extract(data); err == nil {
					resumeText = text
				}
			}
		}
	}

	answer, history, err := h.chatService.Respond(c.Context(), resumeText, req.JobDescription, req.History, req.Question)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.JSON(models.ChatResponse{
		Answer:  answer,
		History: history,
	})
}
