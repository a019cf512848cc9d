package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/models"
	"github.com/W-Anubhav/resumeinsight/internal/repositories"
	"github.com/W-Anubhav/resumeinsight/internal/services"
)

type AnalyzeHandler struct {
	docRepo  repositories.DocumentRepository
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(
	docRepo repositories.DocumentRepository,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		docRepo:  docRepo,
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze for the single-resume modes.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if !req.Mode.Valid() || req.Mode == models.ModeComparison {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "mode must be one of: hr_evaluation, skill_enhancement, ats_match",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), docID, req.JobDescription, req.Mode)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		ID:       result.Analysis.ID.String(),
		Mode:     result.Analysis.Mode,
		Report:   result.Analysis.Report,
		Filename: result.Filename,
		Insights: result.Insights,
	})
}

func analysisErrorResponse(c *fiber.Ctx, err error) error {
	var pe *services.PreconditionError
	if errors.As(err, &pe) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": pe.Error(),
		})
	}

	if errors.Is(err, services.ErrCorruptDocument) || errors.Is(err, services.ErrNoExtractableText) {
		return extractionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to run analysis",
	})
}
