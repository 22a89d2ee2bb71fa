// Package ats rates how well a parsed resume survives an applicant tracking
// system and suggests keywords from a job description.
package ats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/resume"
	"github.com/spigell/careerbuddy/internal/vocab"
)

const (
	weightFormatting  = 0.25
	weightKeyword     = 0.30
	weightContent     = 0.25
	weightReadability = 0.20

	longLineLength = 100
	complexWord    = 6
)

var (
	tablesRe       = regexp.MustCompile(`(?i)<table|<tr|<td`)
	graphicsRe     = regexp.MustCompile(`(?i)<img|<svg`)
	columnsRe      = regexp.MustCompile(`│|┌|┐|└|┘`)
	specialCharsRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,\-@()+%$#]`)
	numberRe       = regexp.MustCompile(`\d+(?:\.\d+)?%?`)
	sentenceRe     = regexp.MustCompile(`[.!?]+`)
)

// Score is the ATS compatibility of one resume. All scores are 0-100.
type Score struct {
	Overall     int     `json:"overall_score"`
	Formatting  int     `json:"formatting_score"`
	Keyword     int     `json:"keyword_score"`
	Content     int     `json:"content_score"`
	Readability int     `json:"readability_score"`
	Details     Details `json:"details"`
}

// Details explains the sub-scores. ReadabilityMetrics is nil for a resume
// without words.
type Details struct {
	FormattingIssues   []string            `json:"formatting_issues"`
	KeywordAnalysis    KeywordAnalysis     `json:"keyword_analysis"`
	ContentAnalysis    ContentAnalysis     `json:"content_analysis"`
	ReadabilityMetrics *ReadabilityMetrics `json:"readability_metrics,omitempty"`
}

type KeywordAnalysis struct {
	Found            []string `json:"found_keywords"`
	Missing          []string `json:"missing_keywords"`
	Density          float64  `json:"keyword_density"`
	ActionVerbsCount int      `json:"action_verbs_count"`
}

type ContentAnalysis struct {
	HasContactInfo         bool `json:"has_contact_info"`
	ExperienceCount        int  `json:"experience_count"`
	EducationCount         int  `json:"education_count"`
	SkillsCount            int  `json:"skills_count"`
	HasSummary             bool `json:"has_summary"`
	QuantifiedAchievements int  `json:"quantified_achievements"`
}

type ReadabilityMetrics struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord     float64 `json:"avg_chars_per_word"`
	ComplexWords        int     `json:"complex_words"`
}

// Analyzer computes ATS scores. It keeps only read-only tables and is safe
// for concurrent use.
type Analyzer struct {
	vocab  vocab.Vocabulary
	logger *zap.Logger
}

func NewAnalyzer(v vocab.Vocabulary, log *zap.Logger) *Analyzer {
	if v == nil {
		v = vocab.Default()
	}
	return &Analyzer{vocab: v, logger: logger.OrNop(log)}
}

// Compute scores parsed. A nil resume scores like an empty one.
func (a *Analyzer) Compute(parsed *resume.ParsedData) Score {
	if parsed == nil {
		parsed = &resume.ParsedData{}
	}

	text := parsed.RawText
	stats := textStats(text)

	score := Score{
		Formatting:  formattingScore(text),
		Keyword:     a.keywordScore(parsed),
		Content:     contentScore(parsed),
		Readability: stats.score(),
	}
	score.Overall = int(math.Round(
		float64(score.Formatting)*weightFormatting +
			float64(score.Keyword)*weightKeyword +
			float64(score.Content)*weightContent +
			float64(score.Readability)*weightReadability,
	))

	score.Details = Details{
		FormattingIssues:   formattingIssues(text),
		KeywordAnalysis:    a.keywordAnalysis(text),
		ContentAnalysis:    contentAnalysis(parsed),
		ReadabilityMetrics: stats.metrics(),
	}

	a.logger.Debug("computed ats score",
		zap.Int("overall", score.Overall),
		zap.Int("formatting", score.Formatting),
		zap.Int("keyword", score.Keyword),
		zap.Int("content", score.Content),
		zap.Int("readability", score.Readability),
	)

	return score
}

type formattingCheck struct {
	penalty int
	issue   string
	hit     func(text string) bool
}

var formattingChecks = []formattingCheck{
	{penalty: 20, issue: "Document contains tables that may not parse correctly", hit: tablesRe.MatchString},
	{penalty: 15, issue: "Document contains graphics that ATS cannot read", hit: graphicsRe.MatchString},
	{penalty: 15, issue: "Multi-column layout may cause parsing issues", hit: columnsRe.MatchString},
	{penalty: 10, issue: "Too many special characters", hit: tooManySpecialChars},
	{penalty: 10, issue: "Too many lines longer than 100 characters", hit: tooManyLongLines},
}

func formattingScore(text string) int {
	score := 100
	for _, check := range formattingChecks {
		if check.hit(text) {
			score -= check.penalty
		}
	}
	return max(0, score)
}

func formattingIssues(text string) []string {
	issues := []string{}
	for _, check := range formattingChecks {
		if check.hit(text) {
			issues = append(issues, check.issue)
		}
	}
	return issues
}

// tooManySpecialChars reports more than 5% of characters outside the plain set.
func tooManySpecialChars(text string) bool {
	special := len(specialCharsRe.FindAllStringIndex(text, -1))
	return float64(special) > float64(utf8.RuneCountInString(text))*0.05
}

// tooManyLongLines reports more than 30% of lines over the line limit.
func tooManyLongLines(text string) bool {
	lines := strings.Split(text, "\n")
	long := 0
	for _, line := range lines {
		if utf8.RuneCountInString(line) > longLineLength {
			long++
		}
	}
	return float64(long) > float64(len(lines))*0.3
}

func (a *Analyzer) keywordScore(parsed *resume.ParsedData) int {
	keywords := a.vocab.ATSKeywords()
	found, _ := splitKeywords(strings.ToLower(parsed.RawText), keywords)

	score := 0.0
	if len(keywords) > 0 {
		score = math.Min(100, float64(len(found))/float64(len(keywords))*100)
	}
	if len(parsed.Skills) > 0 {
		score += 10
	}
	if len(numberRe.FindAllStringIndex(parsed.RawText, -1)) >= 3 {
		score += 10
	}

	return min(100, int(score))
}

func (a *Analyzer) keywordAnalysis(text string) KeywordAnalysis {
	keywords := a.vocab.ATSKeywords()
	found, missing := splitKeywords(strings.ToLower(text), keywords)

	analysis := KeywordAnalysis{Found: found, Missing: missing}
	if len(keywords) > 0 {
		analysis.Density = float64(len(found)) / float64(len(keywords))
	}

	verbs := make(map[string]struct{}, len(a.vocab.ActionVerbs()))
	for _, verb := range a.vocab.ActionVerbs() {
		verbs[verb] = struct{}{}
	}
	for _, kw := range found {
		if _, ok := verbs[kw]; ok {
			analysis.ActionVerbsCount++
		}
	}

	return analysis
}

// splitKeywords partitions keywords by substring presence in lowered text.
func splitKeywords(lowered string, keywords []string) ([]string, []string) {
	found, missing := []string{}, []string{}
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}

func contentScore(parsed *resume.ParsedData) int {
	score := 0
	if parsed.ContactInfo.Email != "" {
		score += 20
	}
	if parsed.ContactInfo.Phone != "" {
		score += 10
	}
	if len(parsed.Experience) > 0 {
		score += 25
	}
	if len(parsed.Education) > 0 {
		score += 20
	}
	if len(parsed.Skills) > 0 {
		score += 25
	}
	for _, exp := range parsed.Experience {
		if len(exp.Description) >= 2 {
			score += 5
		}
	}
	return min(100, score)
}

func contentAnalysis(parsed *resume.ParsedData) ContentAnalysis {
	return ContentAnalysis{
		HasContactInfo:         parsed.ContactInfo.Email != "",
		ExperienceCount:        len(parsed.Experience),
		EducationCount:         len(parsed.Education),
		SkillsCount:            len(parsed.Skills),
		HasSummary:             parsed.Summary != "",
		QuantifiedAchievements: len(numberRe.FindAllStringIndex(parsed.RawText, -1)),
	}
}

type readability struct {
	words     int
	sentences int
	chars     int
	complex   int
}

func textStats(text string) readability {
	words := strings.Fields(text)
	r := readability{
		words:     len(words),
		sentences: len(sentenceRe.Split(text, -1)),
	}
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		r.chars += n
		if n > complexWord {
			r.complex++
		}
	}
	return r
}

func (r readability) wordsPerSentence() float64 {
	return float64(r.words) / float64(r.sentences)
}

func (r readability) charsPerWord() float64 {
	return float64(r.chars) / float64(r.words)
}

func (r readability) score() int {
	if r.words == 0 || r.sentences == 0 {
		return 0
	}

	score := 100
	switch wps := r.wordsPerSentence(); {
	case wps > 25:
		score -= 20
	case wps < 8:
		score -= 10
	}
	if r.charsPerWord() > complexWord {
		score -= 15
	}
	return max(0, score)
}

func (r readability) metrics() *ReadabilityMetrics {
	if r.words == 0 || r.sentences == 0 {
		return nil
	}
	return &ReadabilityMetrics{
		WordCount:           r.words,
		SentenceCount:       r.sentences,
		AvgWordsPerSentence: r.wordsPerSentence(),
		AvgCharsPerWord:     r.charsPerWord(),
		ComplexWords:        r.complex,
	}
}
