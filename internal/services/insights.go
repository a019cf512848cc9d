package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/W-Anubhav/resumeinsight/internal/models"
)

// The scans below are best-effort enrichment of free-text model output. A
// missing or malformed pattern yields an absent value, never an error: the
// textual report is always usable on its own.

var (
	matchScoreRe    = regexp.MustCompile(`Overall Match Score[:\s]+(\d+)%`)
	comparisonRowRe = regexp.MustCompile(`(?m)^\|\s*([^|]+?)\s*\|\s*(\d+)\s*/\s*10\s*\|\s*(\d+)\s*/\s*10\s*\|`)
	wordRe          = regexp.MustCompile(`[a-zA-Z][a-zA-Z+#.-]{2,}`)

	subScoreRes = map[string]*regexp.Regexp{
		"keyword":    regexp.MustCompile(`Keyword Match[:\s]+(\d+)%`),
		"skills":     regexp.MustCompile(`Skills Match[:\s]+(\d+)%`),
		"experience": regexp.MustCompile(`Experience Match[:\s]+(\d+)%`),
		"education":  regexp.MustCompile(`Education Match[:\s]+(\d+)%`),
	}

	stopwords = map[string]bool{
		"the": true, "and": true, "for": true, "with": true, "that": true,
		"this": true, "from": true, "have": true, "are": true, "was": true,
		"were": true, "will": true, "has": true, "had": true, "but": true,
		"not": true, "you": true, "your": true, "our": true, "can": true,
		"may": true, "also": true, "etc": true, "more": true, "than": true,
		"such": true, "other": true, "into": true, "over": true, "per": true,
		"via": true, "using": true, "use": true, "used": true, "all": true,
		"its": true, "their": true, "they": true, "about": true, "while": true,
	}
)

// ExtractMatchScore scans a report for the "Overall Match Score: NN%" line
// that drives the gauge chart.
func ExtractMatchScore(report string) (int, bool) {
	m := matchScoreRe.FindStringSubmatch(report)
	if m == nil {
		return 0, false
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return score, true
}

// ExtractSubScores pulls the four component percentages out of an ATS report.
// Missing components are simply absent from the result.
func ExtractSubScores(report string) map[string]int {
	scores := make(map[string]int)
	for name, re := range subScoreRes {
		m := re.FindStringSubmatch(report)
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil {
			scores[name] = v
		}
	}

	if len(scores) == 0 {
		return nil
	}
	return scores
}

// ScoreBand maps a match percentage to the gauge band and color.
func ScoreBand(score int) (band string, color string) {
	switch {
	case score >= 80:
		return "excellent", "#00C853"
	case score >= 60:
		return "good", "#FFB300"
	default:
		return "needs_improvement", "#FF5252"
	}
}

// ParseComparisonTable extracts "| Category | X/10 | X/10 | ... |" rows from a
// comparison report. The winner is recomputed from the two scores so a
// malformed winner column cannot mislead the table.
func ParseComparisonTable(report string) []models.ComparisonRow {
	matches := comparisonRowRe.FindAllStringSubmatch(report, -1)

	var rows []models.ComparisonRow
	for _, m := range matches {
		category := strings.TrimSpace(m[1])
		if category == "" || strings.EqualFold(category, "Category") {
			continue
		}

		s1, err1 := strconv.Atoi(m[2])
		s2, err2 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil {
			continue
		}

		winner := "Tie"
		if s1 > s2 {
			winner = "Resume 1"
		} else if s2 > s1 {
			winner = "Resume 2"
		}

		rows = append(rows, models.ComparisonRow{
			Category: category,
			Resume1:  s1,
			Resume2:  s2,
			Winner:   winner,
		})
	}

	return rows
}

// KeywordFrequencies counts word occurrences for the word cloud: lowercased,
// short and stopword tokens dropped, sorted by count then alphabetically.
func KeywordFrequencies(text string, max int) []models.KeywordCount {
	if max <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stopwords[word] {
			continue
		}
		counts[word]++
	}

	keywords := make([]models.KeywordCount, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, models.KeywordCount{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}

// BuildInsights assembles the chart payload for a finished report. Only the
// ATS and comparison modes derive charts; the other reports stand alone.
func BuildInsights(mode models.AnalysisMode, report, resumeText string) *models.InsightsData {
	switch mode {
	case models.ModeATSMatch:
		insights := &models.InsightsData{
			SubScores: ExtractSubScores(report),
			Keywords:  KeywordFrequencies(resumeText, 50),
		}
		if score, ok := ExtractMatchScore(report); ok {
			band, color := ScoreBand(score)
			insights.MatchScore = &score
			insights.ScoreBand = band
			insights.GaugeColor = color
		}
		return insights
	case models.ModeComparison:
		rows := ParseComparisonTable(report)
		if rows == nil {
			return nil
		}
		return &models.InsightsData{Comparison: rows}
	default:
		return nil
	}
}
