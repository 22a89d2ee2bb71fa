package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/utils"
)

const highQualityScore = 0.8

// Insights summarises a set of matches.
type Insights struct {
	Message                 string   `json:"message,omitempty"`
	Suggestions             []string `json:"suggestions,omitempty"`
	AverageMatchScore       float64  `json:"average_match_score"`
	HighQualityMatches      int      `json:"high_quality_matches"`
	TotalMatches            int      `json:"total_matches"`
	MostCommonMissingSkills []string `json:"most_common_missing_skills"`
	Recommendations         []string `json:"recommendations"`
}

// MarketAnalysis relates the static market tables to a profile.
type MarketAnalysis struct {
	RelevantTrendingSkills []string `json:"relevant_trending_skills"`
	GrowthOpportunities    []string `json:"growth_opportunities"`
	MarketOutlook          string   `json:"market_outlook"`
	SalaryGrowthPotential  string   `json:"salary_growth_potential"`
	JobAvailability        string   `json:"job_availability"`
}

func BuildInsights(matches []matching.Result) Insights {
	if len(matches) == 0 {
		return Insights{
			Message:                 "No suitable matches found",
			Suggestions:             []string{"Consider expanding your skill set", "Review your job preferences"},
			MostCommonMissingSkills: []string{},
			Recommendations:         []string{},
		}
	}

	var sum float64
	high := 0
	var missing []string
	for _, m := range matches {
		sum += m.Score
		if m.Score >= highQualityScore {
			high++
		}
		missing = append(missing, m.MissingSkills...)
	}
	avg := sum / float64(len(matches))
	common := MostCommon(missing, 5)

	insights := Insights{
		AverageMatchScore:       utils.Round(avg, 2),
		HighQualityMatches:      high,
		TotalMatches:            len(matches),
		MostCommonMissingSkills: common,
		Recommendations:         []string{},
	}

	if avg < 0.6 {
		insights.Recommendations = append(insights.Recommendations, "Consider developing skills in high-demand areas")
	}
	if len(common) > 0 {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("Focus on learning: %s", strings.Join(utils.TopN(common, 3), ", ")))
	}
	if high == 0 {
		insights.Recommendations = append(insights.Recommendations, "Consider expanding your job search criteria")
	}

	return insights
}

// MostCommon returns up to n items ordered by descending frequency. Equal
// counts keep first-occurrence order.
func MostCommon(items []string, n int) []string {
	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := counts[item]; !seen {
			order = append(order, item)
		}
		counts[item]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return utils.TopN(order, n)
}

// AnalyzeMarket relates trending skills and growth industries to p.
func (e *Engine) AnalyzeMarket(p *profile.UserProfile) MarketAnalysis {
	userSkills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		userSkills = append(userSkills, strings.ToLower(s))
	}

	trending := []string{}
	for _, skill := range e.vocab.TrendingSkills() {
		lower := strings.ToLower(skill)
		for _, us := range userSkills {
			if strings.Contains(lower, us) || strings.Contains(us, lower) {
				trending = append(trending, skill)
				break
			}
		}
	}

	growth := []string{}
	for _, industry := range p.PreferredIndustries {
		for _, gi := range e.vocab.GrowthIndustries() {
			if strings.EqualFold(industry, gi) {
				growth = append(growth, industry)
				break
			}
		}
	}

	return MarketAnalysis{
		RelevantTrendingSkills: utils.TopN(trending, 5),
		GrowthOpportunities:    growth,
		MarketOutlook:          "positive",
		SalaryGrowthPotential:  "moderate to high",
		JobAvailability:        "good",
	}
}
