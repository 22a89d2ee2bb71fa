package recommend

import (
	"strings"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/utils"
)

const maxCareerSuggestions = 5

type careerRule struct {
	applies     func(p *profile.UserProfile) bool
	suggestions []string
}

func atLevel(level jobs.ExperienceLevel) func(*profile.UserProfile) bool {
	return func(p *profile.UserProfile) bool {
		return strings.EqualFold(string(p.ExperienceLevel), string(level))
	}
}

func always(*profile.UserProfile) bool { return true }

var careerRules = []careerRule{
	{
		applies: atLevel(jobs.LevelEntry),
		suggestions: []string{
			"Focus on building a strong foundation in core technologies",
			"Consider seeking mentorship opportunities",
		},
	},
	{
		applies: atLevel(jobs.LevelMid),
		suggestions: []string{
			"Consider specializing in a particular domain or technology",
			"Start taking on leadership responsibilities",
		},
	},
	{
		applies: atLevel(jobs.LevelSenior),
		suggestions: []string{
			"Consider transitioning to technical leadership roles",
			"Mentor junior developers to build leadership skills",
		},
	},
	{
		applies: func(p *profile.UserProfile) bool {
			for _, s := range p.Skills {
				if strings.ToLower(s) == "python" {
					return true
				}
			}
			return false
		},
		suggestions: []string{"Explore machine learning and data science opportunities"},
	},
	{
		applies: func(p *profile.UserProfile) bool {
			for _, s := range p.Skills {
				if strings.Contains(strings.ToLower(s), "react") {
					return true
				}
			}
			return false
		},
		suggestions: []string{"Consider full-stack development or frontend architecture roles"},
	},
	{
		applies: func(p *profile.UserProfile) bool {
			return strings.Contains(strings.ToLower(strings.Join(p.TargetRoles, " ")), "manager")
		},
		suggestions: []string{"Develop project management and communication skills"},
	},
	{
		applies: always,
		suggestions: []string{
			"Stay updated with industry trends and emerging technologies",
			"Build a strong professional network through LinkedIn and tech events",
		},
	},
}

// CareerSuggestions walks the career rule table in order and keeps the first
// few suggestions.
func CareerSuggestions(p *profile.UserProfile) []string {
	var out []string
	for _, rule := range careerRules {
		if rule.applies(p) {
			out = append(out, rule.suggestions...)
		}
	}
	return utils.TopN(out, maxCareerSuggestions)
}
