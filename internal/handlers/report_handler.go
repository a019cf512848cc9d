package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/repositories"
	"github.com/W-Anubhav/resumeinsight/internal/services"
)

type ReportHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewReportHandler(analysisRepo repositories.AnalysisRepository) *ReportHandler {
	return &ReportHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetReport handles GET /report/:id
func (h *ReportHandler) HandleGetReport(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.JSON(fiber.Map{
		"analysis": analysis,
		"filename": services.ReportFilename(analysis.Mode, analysis.CreatedAt),
	})
}

// HandleListAnalyses handles GET /document/:id/analyses, returning every
// analysis run against a document, newest first per insertion order.
func (h *ReportHandler) HandleListAnalyses(c *fiber.Ctx) error {
	idParam := c.Params("id")
	docID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	analyses, err := h.analysisRepo.FindByDocumentID(docID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	return c.JSON(fiber.Map{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// HandleDownloadReport handles GET /report/:id/download, serving the raw
// report text as a plain-text attachment named <Label>_<YYYYMMDD_HHMMSS>.txt.
func (h *ReportHandler) HandleDownloadReport(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	filename := services.ReportFilename(analysis.Mode, analysis.CreatedAt)
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.SendString(analysis.Report)
}
