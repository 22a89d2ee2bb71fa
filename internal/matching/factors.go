package matching

import (
	"math"
	"strings"

	"github.com/spigell/careerbuddy/internal/jobs"
)

const (
	noSalaryScore   = 0.7
	noIndustryScore = 0.7
	poorLocation    = 0.2
	poorIndustry    = 0.2
)

// ExperienceScore rates the distance between two seniority levels.
// Unknown levels rate as the furthest distance.
func ExperienceScore(user, job jobs.ExperienceLevel) float64 {
	u, j := user.Index(), job.Index()
	if u < 0 || j < 0 {
		return 0.3
	}

	switch diff := abs(u - j); diff {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.6
	default:
		return 0.3
	}
}

// LocationScore rates a job location against the user's preferences. A
// "remote" preference is judged on the location type alone.
func LocationScore(preferences []string, location string, locationType jobs.LocationType) float64 {
	if len(preferences) == 0 {
		return 1.0
	}

	for _, pref := range preferences {
		if strings.EqualFold(strings.TrimSpace(pref), string(jobs.Remote)) {
			switch locationType {
			case jobs.Remote:
				return 1.0
			case jobs.Hybrid:
				return 0.8
			default:
				return 0.3
			}
		}
	}

	loc := strings.ToLower(location)
	for _, pref := range preferences {
		if strings.Contains(loc, strings.ToLower(strings.TrimSpace(pref))) {
			return 1.0
		}
	}

	return poorLocation
}

// SalaryScore rates a job's salary range against an expectation. A job paying
// more than expected is a full match.
func SalaryScore(expectation int, hasExpectation bool, job *jobs.Listing) float64 {
	if !hasExpectation {
		return 1.0
	}

	lo, hi, hasMin, hasMax := job.SalaryBounds()
	exp := float64(expectation)

	switch {
	case !hasMin && !hasMax:
		return noSalaryScore
	case hasMin && hasMax:
		if expectation <= hi {
			return 1.0
		}
		return math.Max(0, float64(hi)/exp)
	default:
		bound := hi
		if !hasMax {
			bound = lo
		}
		if bound >= expectation {
			return 1.0
		}
		return math.Max(0, float64(bound)/exp)
	}
}

// IndustryScore rates a job's industry against the preferred ones, matching by
// containment in either direction.
func IndustryScore(preferences []string, industry string) float64 {
	if len(preferences) == 0 {
		return 1.0
	}

	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return noIndustryScore
	}

	for _, pref := range preferences {
		p := strings.ToLower(strings.TrimSpace(pref))
		if strings.Contains(industry, p) || strings.Contains(p, industry) {
			return 1.0
		}
	}

	return poorIndustry
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
