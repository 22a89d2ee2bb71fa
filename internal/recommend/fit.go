package recommend

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/utils"
	"github.com/spigell/careerbuddy/internal/vocab"
)

// FitPrediction estimates how well a profile fits a described position.
type FitPrediction struct {
	OverallFitScore        float64            `json:"overall_fit_score"`
	FitPercentage          int                `json:"fit_percentage"`
	Strength               matching.Strength  `json:"recommendation_strength"`
	MatchingSkills         []string           `json:"matching_skills,omitempty"`
	MissingSkills          []string           `json:"missing_skills,omitempty"`
	SkillCoverage          float64            `json:"skill_coverage,omitempty"`
	MatchBreakdown         map[string]float64 `json:"match_breakdown,omitempty"`
	ImprovementSuggestions []string           `json:"improvement_suggestions,omitempty"`
	Error                  string             `json:"error,omitempty"`
}

// PredictFit scores a synthetic remote full-time listing at the user's own
// level with default preferences.
func (e *Engine) PredictFit(p *profile.UserProfile, description string, requirements []string) FitPrediction {
	job := jobs.Listing{
		ID:              "temp_job",
		Title:           "Target Position",
		Company:         "Target Company",
		Description:     description,
		Requirements:    requirements,
		SkillsRequired:  requirements,
		ExperienceLevel: p.ExperienceLevel,
		Location:        "Unknown",
		LocationType:    jobs.Remote,
		EmploymentType:  jobs.FullTime,
	}

	matches := e.scorer.RankJobs(p, []jobs.Listing{job}, matching.DefaultPreferences())
	if len(matches) == 0 {
		e.logger.Debug("fit prediction below threshold", zap.String("user_id", p.UserID))
		return FitPrediction{
			Strength: matching.Poor,
			Error:    "Unable to analyze job fit",
		}
	}

	match := matches[0]
	return FitPrediction{
		OverallFitScore:        match.Score,
		FitPercentage:          match.Percentage,
		Strength:               match.Strength,
		MatchingSkills:         match.MatchingSkills,
		MissingSkills:          match.MissingSkills,
		SkillCoverage:          match.SkillCoverage,
		MatchBreakdown:         match.Breakdown(),
		ImprovementSuggestions: ImprovementSuggestions(&match),
	}
}

// ImprovementSuggestions lists ways to raise the score of match.
func ImprovementSuggestions(match *matching.Result) []string {
	suggestions := []string{}

	if len(match.MissingSkills) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Develop skills in: %s", strings.Join(utils.TopN(match.MissingSkills, 3), ", ")))
	}
	if match.Score < 0.7 {
		suggestions = append(suggestions, "Consider gaining more relevant experience in the target role")
	}

	for _, reason := range match.Reasons {
		switch {
		case reason.Category == matching.CategoryExperience && reason.Score < 0.6:
			suggestions = append(suggestions, "Gain more experience at the required level")
		case reason.Category == matching.CategoryLocation && reason.Score < 0.5:
			suggestions = append(suggestions, "Consider relocating or looking for remote opportunities")
		case reason.Category == matching.CategorySalary && reason.Score < 0.7:
			suggestions = append(suggestions, "Adjust salary expectations or negotiate based on other benefits")
		}
	}

	return suggestions
}

const futureOutlook = "The job market continues to favor technology and healthcare sectors, with remote work opportunities increasing."

// Trends is the market overview, optionally narrowed to an industry.
type Trends struct {
	TrendingSkills   []string              `json:"trending_skills"`
	GrowthIndustries []string              `json:"growth_industries"`
	SalaryTrends     []vocab.SalaryTrend   `json:"salary_trends"`
	LocationInsights vocab.LocationInsight `json:"location_insights"`
	FutureOutlook    string                `json:"future_outlook"`
}

// MarketTrends reports the static market tables. An unknown industry leaves
// the trending skills unfiltered.
func (e *Engine) MarketTrends(industry, location string) Trends {
	insight, ok := e.vocab.LocationInsight(location)
	if !ok {
		insight = vocab.LocationInsight{
			JobGrowth:    "moderate",
			CostOfLiving: "moderate",
			TechJobs:     "available",
			Note:         "Data not available for specified location",
		}
	}

	trends := Trends{
		TrendingSkills:   utils.TopN(e.vocab.TrendingSkills(), 10),
		GrowthIndustries: utils.TopN(e.vocab.GrowthIndustries(), 8),
		SalaryTrends:     e.vocab.SalaryTrends(),
		LocationInsights: insight,
		FutureOutlook:    futureOutlook,
	}

	if strings.TrimSpace(industry) == "" {
		return trends
	}

	industrySkills, ok := e.vocab.IndustrySkills(industry)
	if !ok {
		return trends
	}

	filtered := []string{}
	for _, skill := range trends.TrendingSkills {
		lower := strings.ToLower(skill)
		for _, is := range industrySkills {
			if strings.Contains(lower, is) {
				filtered = append(filtered, skill)
				break
			}
		}
	}
	trends.TrendingSkills = utils.TopN(filtered, 10)

	return trends
}
