package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/vocab"
)

func newScorer() *Scorer {
	return NewScorer(vocab.Default(), zap.NewNop())
}

func TestExperienceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		user, job jobs.ExperienceLevel
		want      float64
	}{
		{jobs.LevelMid, jobs.LevelMid, 1.0},
		{jobs.LevelMid, jobs.LevelSenior, 0.8},
		{jobs.LevelSenior, jobs.LevelMid, 0.8},
		{jobs.LevelJunior, jobs.LevelSenior, 0.6},
		{jobs.LevelEntry, jobs.LevelSenior, 0.3},
		{jobs.LevelEntry, jobs.LevelExecutive, 0.3},
		{"unknown", jobs.LevelMid, 0.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceScore(tt.user, tt.job), "%s vs %s", tt.user, tt.job)
	}
}

func TestLocationScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs []string
		loc   string
		typ   jobs.LocationType
		want  float64
	}{
		{name: "no preferences", prefs: nil, loc: "Austin", typ: jobs.Onsite, want: 1.0},
		{name: "remote pref remote job", prefs: []string{"Remote"}, loc: "Anywhere", typ: jobs.Remote, want: 1.0},
		{name: "remote pref hybrid job", prefs: []string{"remote"}, loc: "Austin", typ: jobs.Hybrid, want: 0.8},
		{name: "remote pref onsite job", prefs: []string{"New York", "REMOTE"}, loc: "New York", typ: jobs.Onsite, want: 0.3},
		{name: "city substring", prefs: []string{"san francisco"}, loc: "San Francisco, CA", typ: jobs.Onsite, want: 1.0},
		{name: "no city match", prefs: []string{"Seattle"}, loc: "Austin, TX", typ: jobs.Hybrid, want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationScore(tt.prefs, tt.loc, tt.typ))
		})
	}
}

func TestSalaryScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		expectation int
		has         bool
		job         jobs.Listing
		want        float64
	}{
		{name: "no expectation", has: false, job: jobs.Listing{}, want: 1.0},
		{name: "no job salary", expectation: 100000, has: true, job: jobs.Listing{}, want: 0.7},
		{name: "within range", expectation: 100000, has: true, job: jobs.Listing{SalaryMin: jobs.Int(80000), SalaryMax: jobs.Int(120000)}, want: 1.0},
		{name: "below min", expectation: 60000, has: true, job: jobs.Listing{SalaryMin: jobs.Int(80000), SalaryMax: jobs.Int(120000)}, want: 1.0},
		{name: "above max", expectation: 150000, has: true, job: jobs.Listing{SalaryMin: jobs.Int(80000), SalaryMax: jobs.Int(120000)}, want: 0.8},
		{name: "max only above", expectation: 150000, has: true, job: jobs.Listing{SalaryMax: jobs.Int(120000)}, want: 0.8},
		{name: "min only covers", expectation: 90000, has: true, job: jobs.Listing{SalaryMin: jobs.Int(90000)}, want: 1.0},
		{name: "min only below", expectation: 100000, has: true, job: jobs.Listing{SalaryMin: jobs.Int(50000)}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SalaryScore(tt.expectation, tt.has, &tt.job), 1e-9)
		})
	}
}

func TestIndustryScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, IndustryScore(nil, "technology"))
	assert.Equal(t, 0.7, IndustryScore([]string{"fintech"}, ""))
	assert.Equal(t, 1.0, IndustryScore([]string{"Tech"}, "Technology"))
	assert.Equal(t, 1.0, IndustryScore([]string{"financial technology"}, "technology"))
	assert.Equal(t, 0.2, IndustryScore([]string{"healthcare"}, "retail"))
}

func TestStrengthBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Excellent, StrengthOf(0.9))
	assert.Equal(t, Strong, StrengthOf(0.8999))
	assert.Equal(t, Strong, StrengthOf(0.8))
	assert.Equal(t, Moderate, StrengthOf(0.7999))
	assert.Equal(t, Moderate, StrengthOf(0.6))
	assert.Equal(t, Weak, StrengthOf(0.5999))
}

func endToEndFixtures() (*profile.UserProfile, *jobs.Listing) {
	p := &profile.UserProfile{
		UserID:          "u-1",
		Skills:          []string{"Python", "SQL"},
		ExperienceLevel: jobs.LevelMid,
	}
	job := &jobs.Listing{
		ID:              "job-1",
		Title:           "Data Engineer",
		SkillsRequired:  []string{"Python", "SQL", "React"},
		ExperienceLevel: jobs.LevelMid,
		Location:        "Berlin",
		LocationType:    jobs.Onsite,
	}
	return p, job
}

func TestScoreJobEndToEnd(t *testing.T) {
	p, job := endToEndFixtures()

	result := newScorer().ScoreJob(p, job, DefaultPreferences())

	// 0.667*0.4 + 1.0*0.2 + 1.0*0.15 + 1.0*0.15 + 1.0*0.1
	assert.InDelta(t, 0.8667, result.Score, 1e-4)
	assert.Equal(t, 86, result.Percentage)
	assert.Equal(t, Strong, result.Strength)
	assert.Equal(t, []string{"python", "sql"}, result.MatchingSkills)
	assert.Equal(t, []string{"react"}, result.MissingSkills)
	assert.InDelta(t, 2.0/3.0, result.SkillCoverage, 1e-9)

	require.Len(t, result.Reasons, 5)
	assert.Equal(t, []string{CategorySkills, CategoryExperience, CategoryLocation, CategorySalary, CategoryIndustry},
		[]string{result.Reasons[0].Category, result.Reasons[1].Category, result.Reasons[2].Category, result.Reasons[3].Category, result.Reasons[4].Category})
	assert.Equal(t, "Skills match: 66% - 2 matching skills", result.Reasons[0].Explanation)
	assert.Equal(t, "Experience level match: 100%", result.Reasons[1].Explanation)
}

func TestScoreJobEndToEndWithUnpricedJob(t *testing.T) {
	p, job := endToEndFixtures()
	p.SalaryExpectation = jobs.Int(90000)

	result := newScorer().ScoreJob(p, job, DefaultPreferences())

	// 0.667*0.4 + 1.0*0.2 + 1.0*0.15 + 0.7*0.15 + 1.0*0.1
	assert.InDelta(t, 0.8217, result.Score, 1e-4)
	assert.Equal(t, Strong, result.Strength)

	salary, ok := result.Reason(CategorySalary)
	require.True(t, ok)
	assert.Equal(t, 0.7, salary.Score)
	assert.Equal(t, "Salary expectation match: 70%", salary.Explanation)
	assert.Equal(t, 0.7, result.Breakdown()[CategorySalary])
}

func TestScoreJobIsNotNormalized(t *testing.T) {
	p, job := endToEndFixtures()
	job.SkillsRequired = nil

	prefs := Preferences{WeightSkills: 1, WeightExperience: 1, WeightLocation: 1, WeightSalary: 1, WeightIndustry: 1}
	result := newScorer().ScoreJob(p, job, prefs)

	assert.InDelta(t, 5.0, result.Score, 1e-9)
	assert.Equal(t, 500, result.Percentage)
	assert.InDelta(t, 5.0, prefs.WeightSum(), 1e-9)
}

func TestRankJobsThresholdAndStableTies(t *testing.T) {
	p := &profile.UserProfile{UserID: "u", Skills: []string{"Go"}, ExperienceLevel: jobs.LevelSenior}

	listings := []jobs.Listing{
		{ID: "a", SkillsRequired: []string{"Go"}, ExperienceLevel: jobs.LevelSenior, LocationType: jobs.Remote},
		{ID: "weak", SkillsRequired: []string{"Rust", "C"}, ExperienceLevel: jobs.LevelEntry, LocationType: jobs.Remote},
		{ID: "b", SkillsRequired: []string{"go"}, ExperienceLevel: jobs.LevelSenior, LocationType: jobs.Onsite},
		{ID: "mid", SkillsRequired: []string{"Go", "Kafka"}, ExperienceLevel: jobs.LevelSenior, LocationType: jobs.Remote},
		{ID: "c", SkillsRequired: []string{"GO"}, ExperienceLevel: jobs.LevelSenior, LocationType: jobs.Hybrid},
	}

	results := newScorer().RankJobs(p, listings, DefaultPreferences())

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Job.ID)
		assert.GreaterOrEqual(t, r.Score, DefaultMinMatchScore)
	}
	assert.Equal(t, []string{"a", "b", "c", "mid"}, ids)
}

func TestRankJobsEmpty(t *testing.T) {
	p := &profile.UserProfile{UserID: "u", ExperienceLevel: jobs.LevelMid}

	assert.Empty(t, newScorer().RankJobs(p, nil, DefaultPreferences()))
}

func TestScoreJobLogsAtDebug(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	scorer := NewScorer(nil, zap.New(core))
	p, job := endToEndFixtures()

	scorer.ScoreJob(p, job, DefaultPreferences())

	entries := observed.FilterMessage("scored job").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "job-1", entries[0].ContextMap()["job_id"])
}
