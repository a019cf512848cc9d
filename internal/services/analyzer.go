package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/models"
	"github.com/W-Anubhav/resumeinsight/internal/repositories"
)

// PreconditionError means a required input (job description, resume, question)
// was absent for the requested mode. It is raised before any model call so no
// outbound request is wasted.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type AnalyzerService interface {
	Analyze(ctx context.Context, docID uuid.UUID, jobDescription string, mode models.AnalysisMode) (*AnalysisResult, error)
	Compare(ctx context.Context, doc1ID, doc2ID uuid.UUID, jobDescription string) (*AnalysisResult, error)
}

type AnalysisResult struct {
	Analysis *models.Analysis
	Insights *models.InsightsData
	Filename string
}

type analyzerService struct {
	analysisRepo  repositories.AnalysisRepository
	docRepo       repositories.DocumentRepository
	geminiService GeminiService
	extractor     TextExtractor
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	geminiService GeminiService,
	extractor TextExtractor,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:  analysisRepo,
		docRepo:       docRepo,
		geminiService: geminiService,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// ReportFilename composes the downloadable artifact name for a report.
func ReportFilename(mode models.AnalysisMode, t time.Time) string {
	return fmt.Sprintf("%s_%s.txt", mode.ReportLabel(), t.Format("20060102_150405"))
}

// Analyze implements AnalyzerService for the single-resume modes.
func (a *analyzerService) Analyze(ctx context.Context, docID uuid.UUID, jobDescription string, mode models.AnalysisMode) (*AnalysisResult, error) {
	if !mode.Valid() || mode == models.ModeComparison {
		return nil, fmt.Errorf("unsupported analysis mode: %s", mode)
	}

	if strings.TrimSpace(jobDescription) == "" {
		return nil, &PreconditionError{Field: "job description"}
	}

	resumeText, err := a.documentText(docID)
	if err != nil {
		return nil, err
	}

	var prompt string
	switch mode {
	case models.ModeHREvaluation:
		prompt = a.promptBuilder.BuildHREvaluationPrompt(resumeText, jobDescription)
	case models.ModeSkillEnhancement:
		prompt = a.promptBuilder.BuildSkillEnhancementPrompt(resumeText, jobDescription)
	case models.ModeATSMatch:
		prompt = a.promptBuilder.BuildATSMatchPrompt(resumeText, jobDescription)
	}

	report := a.generate(ctx, prompt)
	insights := BuildInsights(mode, report, resumeText)

	analysis := &models.Analysis{
		ID:             uuid.New(),
		Mode:           mode,
		DocumentID:     docID,
		JobDescription: jobDescription,
		Report:         report,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if insights != nil {
		analysis.MatchScore = insights.MatchScore
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return &AnalysisResult{
		Analysis: analysis,
		Insights: insights,
		Filename: ReportFilename(mode, analysis.CreatedAt),
	}, nil
}

// Compare implements AnalyzerService.
func (a *analyzerService) Compare(ctx context.Context, doc1ID, doc2ID uuid.UUID, jobDescription string) (*AnalysisResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &PreconditionError{Field: "job description"}
	}

	resume1Text, err := a.documentText(doc1ID)
	if err != nil {
		return nil, err
	}

	resume2Text, err := a.documentText(doc2ID)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildComparisonPrompt(resume1Text, resume2Text, jobDescription)
	report := a.generate(ctx, prompt)
	insights := BuildInsights(models.ModeComparison, report, "")

	analysis := &models.Analysis{
		ID:               uuid.New(),
		Mode:             models.ModeComparison,
		DocumentID:       doc1ID,
		SecondDocumentID: &doc2ID,
		JobDescription:   jobDescription,
		Report:           report,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return &AnalysisResult{
		Analysis: analysis,
		Insights: insights,
		Filename: ReportFilename(models.ModeComparison, analysis.CreatedAt),
	}, nil
}

// generate runs the single outbound model call. A provider failure becomes
// the report body so the rest of the interaction keeps functioning.
func (a *analyzerService) generate(ctx context.Context, prompt string) string {
	report, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) {
			return pe.UserMessage()
		}
		return fmt.Sprintf("Error generating response: %v", err)
	}
	return report
}

func (a *analyzerService) documentText(docID uuid.UUID) (string, error) {
	doc, err := a.docRepo.FindByID(docID)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read document file: %w", err)
	}

	return a.extractor.Extract(data)
}
