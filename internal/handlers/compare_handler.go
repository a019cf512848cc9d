package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/models"
	"github.com/W-Anubhav/resumeinsight/internal/repositories"
	"github.com/W-Anubhav/resumeinsight/internal/services"
)

type CompareHandler struct {
	docRepo  repositories.DocumentRepository
	analyzer services.AnalyzerService
}

func NewCompareHandler(
	docRepo repositories.DocumentRepository,
	analyzer services.AnalyzerService,
) *CompareHandler {
	return &CompareHandler{
		docRepo:  docRepo,
		analyzer: analyzer,
	}
}

// HandleCompare handles POST /compare: two resumes against one job description.
func (h *CompareHandler) HandleCompare(c *fiber.Ctx) error {
	var req models.CompareRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Resume1DocumentID == "" || req.Resume2DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both resume document ids are required to compare",
		})
	}

	doc1ID, err := uuid.Parse(req.Resume1DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume1_document_id format",
		})
	}

	doc2ID, err := uuid.Parse(req.Resume2DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume2_document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(doc1ID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "First resume document not found",
		})
	}

	if _, err := h.docRepo.FindByID(doc2ID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Second resume document not found",
		})
	}

	result, err := h.analyzer.Compare(c.Context(), doc1ID, doc2ID, req.JobDescription)
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
