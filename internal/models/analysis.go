package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisMode string

const (
	ModeHREvaluation     AnalysisMode = "hr_evaluation"
	ModeSkillEnhancement AnalysisMode = "skill_enhancement"
	ModeATSMatch         AnalysisMode = "ats_match"
	ModeComparison       AnalysisMode = "comparison"
	ModeChat             AnalysisMode = "chat"
)

// ReportLabel is the fixed label used in downloadable report filenames.
func (m AnalysisMode) ReportLabel() string {
	switch m {
	case ModeHREvaluation:
		return "HR_Evaluation_Report"
	case ModeSkillEnhancement:
		return "Skill_Enhancement_Report"
	case ModeATSMatch:
		return "ATS_Match_Report"
	case ModeComparison:
		return "Resume_Comparison_Report"
	default:
		return "Analysis_Report"
	}
}

func (m AnalysisMode) Valid() bool {
	switch m {
	case ModeHREvaluation, ModeSkillEnhancement, ModeATSMatch, ModeComparison:
		return true
	}
	return false
}

type Analysis struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Mode             AnalysisMode `gorm:"type:text;not null" json:"mode"`
	DocumentID       uuid.UUID    `gorm:"type:uuid;not null" json:"document_id"`
	SecondDocumentID *uuid.UUID   `gorm:"type:uuid" json:"second_document_id,omitempty"`
	JobDescription   string       `gorm:"type:text" json:"job_description"`
	Report           string       `gorm:"type:text" json:"report"`
	MatchScore       *int         `gorm:"type:integer" json:"match_score,omitempty"`
	CreatedAt        time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document       Document  `gorm:"foreignKey:DocumentID" json:"-"`
	SecondDocument *Document `gorm:"foreignKey:SecondDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
