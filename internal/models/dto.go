package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	CharCount    int    `json:"char_count"`
}

type AnalyzeRequest struct {
	DocumentID     string       `json:"document_id"`
	JobDescription string       `json:"job_description"`
	Mode           AnalysisMode `json:"mode"`
}

type CompareRequest struct {
	Resume1DocumentID string `json:"resume1_document_id"`
	Resume2DocumentID string `json:"resume2_document_id"`
	JobDescription    string `json:"job_description"`
}

type ChatRequest struct {
	DocumentID     string     `json:"document_id,omitempty"`
	JobDescription string     `json:"job_description,omitempty"`
	History        []ChatTurn `json:"history"`
	Question       string     `json:"question"`
}

type ChatResponse struct {
	Answer  string     `json:"answer"`
	History []ChatTurn `json:"history"`
}

type AnalyzeResponse struct {
	ID       string        `json:"id"`
	Mode     AnalysisMode  `json:"mode"`
	Report   string        `json:"report"`
	Filename string        `json:"filename"`
	Insights *InsightsData `json:"insights,omitempty"`
}

// InsightsData carries the chart-ready values a frontend renders next to the
// report: gauge score, category bars, comparison table rows and word-cloud
// keywords. Every field is best-effort; absent values mean the pattern was not
// found in the model's reply.
type InsightsData struct {
	MatchScore *int            `json:"match_score,omitempty"`
	ScoreBand  string          `json:"score_band,omitempty"`
	GaugeColor string          `json:"gauge_color,omitempty"`
	SubScores  map[string]int  `json:"sub_scores,omitempty"`
	Comparison []ComparisonRow `json:"comparison,omitempty"`
	Keywords   []KeywordCount  `json:"keywords,omitempty"`
}

type ComparisonRow struct {
	Category string `json:"category"`
	Resume1  int    `json:"resume1"`
	Resume2  int    `json:"resume2"`
	Winner   string `json:"winner"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
