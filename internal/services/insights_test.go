package services

import (
	"strings"
	"testing"

	"github.com/W-Anubhav/resumeinsight/internal/models"
)

const sampleATSReport = `## Overall Match Score
Overall Match Score: 73%
Break down:
- Keyword Match: 70%
- Skills Match: 80%
- Experience Match: 75%
- Education Match: 65%

## Keyword Analysis
...`

func TestExtractMatchScore(t *testing.T) {
	score, ok := ExtractMatchScore(sampleATSReport)
	if !ok {
		t.Fatal("expected a match score")
	}
	if score != 73 {
		t.Errorf("expected 73, got %d", score)
	}
}

func TestExtractMatchScore_Absent(t *testing.T) {
	cases := []string{
		"",
		"No score in this report at all.",
		"Overall Match Score: excellent",
	}
	for _, report := range cases {
		if _, ok := ExtractMatchScore(report); ok {
			t.Errorf("unexpected score in %q", report)
		}
	}
}

func TestExtractSubScores(t *testing.T) {
	scores := ExtractSubScores(sampleATSReport)
	expected := map[string]int{
		"keyword":    70,
		"skills":     80,
		"experience": 75,
		"education":  65,
	}
	for name, want := range expected {
		if got, ok := scores[name]; !ok || got != want {
			t.Errorf("sub-score %s: want %d, got %d (present: %v)", name, want, got, ok)
		}
	}

	if ExtractSubScores("nothing here") != nil {
		t.Error("expected nil for a report without sub-scores")
	}
}

func TestScoreBand(t *testing.T) {
	cases := []struct {
		score int
		band  string
		color string
	}{
		{95, "excellent", "#00C853"},
		{80, "excellent", "#00C853"},
		{79, "good", "#FFB300"},
		{60, "good", "#FFB300"},
		{59, "needs_improvement", "#FF5252"},
		{0, "needs_improvement", "#FF5252"},
	}
	for _, tc := range cases {
		band, color := ScoreBand(tc.score)
		if band != tc.band || color != tc.color {
			t.Errorf("score %d: want %s/%s, got %s/%s", tc.score, tc.band, tc.color, band, color)
		}
	}
}

func TestParseComparisonTable(t *testing.T) {
	report := `## Category-wise Comparison

| Category | Resume 1 | Resume 2 | Winner |
|----------|----------|----------|--------|
| Technical Skills | 8/10 | 6/10 | Resume 1 |
| Experience Relevance | 5/10 | 9/10 | Resume 1 |
| Education | 7/10 | 7/10 | Resume 2 |
`

	rows := ParseComparisonTable(report)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Category != "Technical Skills" || rows[0].Winner != "Resume 1" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	// Winners are recomputed from the scores, not trusted from the reply.
	if rows[1].Winner != "Resume 2" {
		t.Errorf("winner should follow the scores: %+v", rows[1])
	}
	if rows[2].Winner != "Tie" {
		t.Errorf("equal scores should tie: %+v", rows[2])
	}
}

func TestParseComparisonTable_Absent(t *testing.T) {
	if rows := ParseComparisonTable("no table in this report"); rows != nil {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestKeywordFrequencies(t *testing.T) {
	text := "Go developer with Go and PostgreSQL. The developer ships Go services."

	keywords := KeywordFrequencies(text, 10)
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}

	counts := make(map[string]int)
	for _, kw := range keywords {
		counts[kw.Word] = kw.Count
	}
	if counts["developer"] != 2 {
		t.Errorf("expected developer twice, got %d", counts["developer"])
	}
	if _, ok := counts["the"]; ok {
		t.Error("stopword should be excluded")
	}
	if _, ok := counts["go"]; ok {
		// "Go" is two letters, below the token minimum.
		t.Error("short tokens should be excluded")
	}

	for i := 1; i < len(keywords); i++ {
		if keywords[i].Count > keywords[i-1].Count {
			t.Fatal("keywords not sorted by count")
		}
	}

	if got := KeywordFrequencies(strings.Repeat("alpha beta gamma ", 5), 2); len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}

func TestBuildInsights(t *testing.T) {
	insights := BuildInsights(models.ModeATSMatch, sampleATSReport, "Go engineer resume text")
	if insights == nil {
		t.Fatal("expected insights for ATS mode")
	}
	if insights.MatchScore == nil || *insights.MatchScore != 73 {
		t.Errorf("unexpected match score: %v", insights.MatchScore)
	}
	if insights.ScoreBand != "good" {
		t.Errorf("unexpected band: %s", insights.ScoreBand)
	}
	if len(insights.SubScores) != 4 {
		t.Errorf("expected 4 sub-scores, got %d", len(insights.SubScores))
	}
	if len(insights.Keywords) == 0 {
		t.Error("expected word-cloud keywords")
	}

	if BuildInsights(models.ModeHREvaluation, "report", "resume") != nil {
		t.Error("HR mode derives no charts")
	}
}

func TestBuildInsights_MalformedReportDoesNotFail(t *testing.T) {
	insights := BuildInsights(models.ModeATSMatch, "model ignored the format entirely", "resume text")
	if insights == nil {
		t.Fatal("ATS insights should still be returned")
	}
	if insights.MatchScore != nil {
		t.Error("no score should be extracted from a malformed report")
	}
}
