package ats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/utils"
)

const (
	maxTargetKeywords   = 20
	suggestMissing      = 5
	suggestLowFrequency = 3
	lowFrequency        = 2
	restructureMissing  = 10
)

var jobWordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// KeywordOptimization compares a resume with the keywords of one job description.
type KeywordOptimization struct {
	MissingKeywords   []string          `json:"missing_keywords"`
	KeywordFrequency  map[string]int    `json:"keyword_frequency"`
	Suggestions       []string          `json:"suggestions"`
	OptimizedSections map[string]string `json:"optimized_sections"`
	KeywordMatchScore float64           `json:"keyword_match_score"`
}

// OptimizeKeywords finds the most frequent words of jobDescription and reports
// which of them resumeText lacks or uses rarely.
func (a *Analyzer) OptimizeKeywords(resumeText, jobDescription string) KeywordOptimization {
	targets := a.jobKeywords(jobDescription)
	lowered := strings.ToLower(resumeText)

	result := KeywordOptimization{
		MissingKeywords:   []string{},
		KeywordFrequency:  make(map[string]int, len(targets)),
		OptimizedSections: map[string]string{},
	}

	var rare []string
	for _, kw := range targets {
		if !strings.Contains(lowered, kw) {
			result.MissingKeywords = append(result.MissingKeywords, kw)
		}
		count := len(wholeWord(kw).FindAllStringIndex(resumeText, -1))
		result.KeywordFrequency[kw] = count
		if count < lowFrequency {
			rare = append(rare, kw)
		}
	}

	if len(targets) > 0 {
		result.KeywordMatchScore = float64(len(targets)-len(result.MissingKeywords)) / float64(len(targets)) * 100
	}

	result.Suggestions = keywordSuggestions(result.MissingKeywords, rare)
	if missing := result.MissingKeywords; len(missing) > 0 {
		if strings.Contains(lowered, "skills") {
			result.OptimizedSections["Skills"] = "Add these relevant skills: " + strings.Join(utils.TopN(missing, suggestMissing), ", ")
		}
		if strings.Contains(lowered, "experience") {
			second := missing[0]
			if len(missing) > 1 {
				second = missing[1]
			}
			result.OptimizedSections["Experience"] = fmt.Sprintf("Incorporate keywords like '%s' and '%s' into your job descriptions", missing[0], second)
		}
	}

	a.logger.Debug("optimized keywords",
		zap.Int("targets", len(targets)),
		zap.Int("missing", len(result.MissingKeywords)),
		zap.Float64("match_score", result.KeywordMatchScore),
	)

	return result
}

// jobKeywords returns the most frequent non stop words of a description.
// Equal counts keep the order of first appearance.
func (a *Analyzer) jobKeywords(description string) []string {
	counts := make(map[string]int)
	var order []string

	for _, word := range jobWordRe.FindAllString(strings.ToLower(description), -1) {
		if a.vocab.IsKeywordStopWord(word) {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return utils.TopN(order, maxTargetKeywords)
}

func keywordSuggestions(missing, rare []string) []string {
	suggestions := []string{}
	if len(missing) > 0 {
		suggestions = append(suggestions, "Consider adding these missing keywords: "+strings.Join(utils.TopN(missing, suggestMissing), ", "))
	}
	if len(rare) > 0 {
		suggestions = append(suggestions, "Increase frequency of these keywords: "+strings.Join(utils.TopN(rare, suggestLowFrequency), ", "))
	}
	if len(missing) > restructureMissing {
		suggestions = append(suggestions, "Consider restructuring your resume to include more relevant keywords")
	}
	return suggestions
}

func wholeWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
