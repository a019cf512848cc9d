package services

import (
	"strings"
	"testing"
)

const (
	testResume = "Jordan Doe. Backend engineer, 6 years of Go and PostgreSQL."
	testJob    = "Looking for a senior backend engineer with Go and cloud experience."
)

func TestBuildHREvaluationPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildHREvaluationPrompt(testResume, testJob)

	if !strings.Contains(prompt, testResume) {
		t.Error("prompt missing resume text")
	}
	if !strings.Contains(prompt, testJob) {
		t.Error("prompt missing job description")
	}

	sections := []string{
		"Overall Impression",
		"Core Strengths",
		"Technical & Professional Alignment",
		"Gap Analysis",
		"Final Recommendation",
	}
	for _, section := range sections {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}

	recommendations := "Highly Recommended, Recommended, Consider with Reservations, or Not Recommended"
	if !strings.Contains(prompt, recommendations) {
		t.Error("prompt missing the recommendation categories")
	}
	if !strings.Contains(prompt, "Critical, Important, or Nice-to-have") {
		t.Error("prompt missing the gap tiers")
	}
}

func TestBuildSkillEnhancementPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSkillEnhancementPrompt(testResume, testJob)

	if !strings.Contains(prompt, testResume) || !strings.Contains(prompt, testJob) {
		t.Error("prompt missing supplied texts")
	}
	if !strings.Contains(prompt, "Short-term (1-3 months)") {
		t.Error("prompt missing short-term roadmap")
	}
	if !strings.Contains(prompt, "Long-term (3-12 months)") {
		t.Error("prompt missing long-term roadmap")
	}
	if !strings.Contains(prompt, "Recommended Certifications") {
		t.Error("prompt missing certifications section")
	}
}

func TestBuildATSMatchPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildATSMatchPrompt(testResume, testJob)

	if !strings.Contains(prompt, testResume) || !strings.Contains(prompt, testJob) {
		t.Error("prompt missing supplied texts")
	}
	if !strings.Contains(prompt, "Overall Match Score") {
		t.Error("prompt missing the overall score label the scanner depends on")
	}

	for _, component := range []string{"Keyword Match", "Skills Match", "Experience Match", "Education Match"} {
		if !strings.Contains(prompt, component) {
			t.Errorf("prompt missing sub-score component %q", component)
		}
	}
	if !strings.Contains(prompt, "(0-100%)") {
		t.Error("prompt missing the percentage range")
	}
}

func TestBuildComparisonPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	resume2 := "Sam Lee. Data engineer, 4 years of Python and Spark."
	prompt := pb.BuildComparisonPrompt(testResume, resume2, testJob)

	if !strings.Contains(prompt, testResume) || !strings.Contains(prompt, resume2) || !strings.Contains(prompt, testJob) {
		t.Error("prompt missing supplied texts")
	}
	if !strings.Contains(prompt, "Very Confident, Confident, or Moderately Confident") {
		t.Error("prompt missing the confidence labels")
	}
	if !strings.Contains(prompt, "| Category | Resume 1 | Resume 2 | Winner |") {
		t.Error("prompt missing the comparison table header")
	}
}

func TestBuildChatPrompts(t *testing.T) {
	pb := NewPromptBuilder()

	system := pb.BuildChatSystemPrompt(testResume, testJob)
	if !strings.Contains(system, testResume) || !strings.Contains(system, testJob) {
		t.Error("chat system prompt missing supplied texts")
	}

	generic := pb.BuildGenericChatPrompt()
	if strings.Contains(generic, testResume) {
		t.Error("generic chat prompt should not embed a resume")
	}
	if !strings.Contains(generic, "career advisor") {
		t.Error("generic chat prompt missing persona")
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	if pb.BuildHREvaluationPrompt(testResume, testJob) != pb.BuildHREvaluationPrompt(testResume, testJob) {
		t.Error("HR prompt not deterministic")
	}
	if pb.BuildATSMatchPrompt(testResume, testJob) != pb.BuildATSMatchPrompt(testResume, testJob) {
		t.Error("ATS prompt not deterministic")
	}
	if pb.BuildComparisonPrompt(testResume, "other", testJob) != pb.BuildComparisonPrompt(testResume, "other", testJob) {
		t.Error("comparison prompt not deterministic")
	}
}
