// Package matching scores job listings against a candidate profile.
package matching

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/skills"
	"github.com/spigell/careerbuddy/internal/vocab"
)

const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryLocation   = "location"
	CategorySalary     = "salary"
	CategoryIndustry   = "industry"
)

// Strength is the categorical label attached to a score.
type Strength string

const (
	Excellent Strength = "excellent"
	Strong    Strength = "strong"
	Moderate  Strength = "moderate"
	Weak      Strength = "weak"
	// Poor is reserved for fit predictions that fall below the ranking cut-off.
	Poor Strength = "poor"
)

// StrengthOf maps a score onto a label.
func StrengthOf(score float64) Strength {
	switch {
	case score >= 0.9:
		return Excellent
	case score >= 0.8:
		return Strong
	case score >= 0.6:
		return Moderate
	default:
		return Weak
	}
}

// Reason explains one category's contribution.
type Reason struct {
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Result is the outcome of scoring one listing for one profile.
type Result struct {
	Job            jobs.Listing `json:"job"`
	Score          float64      `json:"match_score"`
	Percentage     int          `json:"match_percentage"`
	Reasons        []Reason     `json:"match_reasons"`
	MatchingSkills []string     `json:"matching_skills"`
	MissingSkills  []string     `json:"missing_skills"`
	SkillCoverage  float64      `json:"skill_coverage"`
	Strength       Strength     `json:"recommendation_strength"`
}

// Reason returns the reason for category, if present.
func (r *Result) Reason(category string) (Reason, bool) {
	for _, reason := range r.Reasons {
		if reason.Category == category {
			return reason, true
		}
	}
	return Reason{}, false
}

// Breakdown maps each category to its sub-score.
func (r *Result) Breakdown() map[string]float64 {
	out := make(map[string]float64, len(r.Reasons))
	for _, reason := range r.Reasons {
		out[reason.Category] = reason.Score
	}
	return out
}

// Scorer computes match results. It holds only read-only tables and is safe
// for concurrent use.
type Scorer struct {
	skills *skills.Matcher
	logger *zap.Logger
}

func NewScorer(v vocab.Vocabulary, log *zap.Logger) *Scorer {
	return &Scorer{
		skills: skills.NewMatcher(v),
		logger: logger.OrNop(log),
	}
}

// Skills exposes the skill matcher the scorer was built with.
func (s *Scorer) Skills() *skills.Matcher {
	return s.skills
}

// ScoreJob scores job for p using the weights in prefs.
func (s *Scorer) ScoreJob(p *profile.UserProfile, job *jobs.Listing, prefs Preferences) Result {
	cov := s.skills.Coverage(job.SkillsRequired, p.Skills)
	experience := ExperienceScore(p.ExperienceLevel, job.ExperienceLevel)
	location := LocationScore(p.LocationPreferences, job.Location, job.LocationType)
	expectation, hasExpectation := p.Salary()
	salary := SalaryScore(expectation, hasExpectation, job)
	industry := IndustryScore(p.PreferredIndustries, job.Industry)

	total := cov.Score*prefs.WeightSkills +
		experience*prefs.WeightExperience +
		location*prefs.WeightLocation +
		salary*prefs.WeightSalary +
		industry*prefs.WeightIndustry

	result := Result{
		Job:        *job,
		Score:      total,
		Percentage: int(total * 100),
		Reasons: []Reason{
			{
				Category:    CategorySkills,
				Score:       cov.Score,
				Explanation: fmt.Sprintf("Skills match: %d%% - %d matching skills", percent(cov.Score), len(cov.Matched)),
			},
			{
				Category:    CategoryExperience,
				Score:       experience,
				Explanation: fmt.Sprintf("Experience level match: %d%%", percent(experience)),
			},
			{
				Category:    CategoryLocation,
				Score:       location,
				Explanation: fmt.Sprintf("Location preference match: %d%%", percent(location)),
			},
			{
				Category:    CategorySalary,
				Score:       salary,
				Explanation: fmt.Sprintf("Salary expectation match: %d%%", percent(salary)),
			},
			{
				Category:    CategoryIndustry,
				Score:       industry,
				Explanation: fmt.Sprintf("Industry preference match: %d%%", percent(industry)),
			},
		},
		MatchingSkills: cov.Matched,
		MissingSkills:  cov.Missing,
		SkillCoverage:  cov.Score,
		Strength:       StrengthOf(total),
	}

	s.logger.Debug("scored job",
		zap.String(logger.FieldJobID, job.ID),
		zap.Float64("score", total),
		zap.String("strength", string(result.Strength)),
	)

	return result
}

// RankJobs scores every listing, keeps those at or above the threshold and
// orders them by descending score. Equal scores keep their input order.
func (s *Scorer) RankJobs(p *profile.UserProfile, listings []jobs.Listing, prefs Preferences) []Result {
	results := make([]Result, 0, len(listings))

	for i := range listings {
		result := s.ScoreJob(p, &listings[i], prefs)
		if result.Score >= prefs.MinMatchScore {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	s.logger.Debug("ranked jobs",
		zap.Int("scored", len(listings)),
		zap.Int("kept", len(results)),
		zap.Float64("threshold", prefs.MinMatchScore),
	)

	return results
}

func percent(score float64) int {
	return int(score * 100)
}
