// Package vocab holds the fixed word lists and reference tables the scorers
// depend on. Tables are versioned so results can be traced to the data that
// produced them.
package vocab

import "strings"

// Vocabulary is the lookup surface the scorers consume.
type Vocabulary interface {
	Version() string

	// Synonym maps a normalised skill to its canonical form.
	Synonym(term string) (string, bool)

	// ATSKeywords are the generic resume keywords probed by the ATS scorer.
	ATSKeywords() []string
	// ActionVerbs is the subset of ATSKeywords reported as action verbs.
	ActionVerbs() []string
	// FeedbackActionVerbs is the verb list the feedback rules look for.
	FeedbackActionVerbs() []string

	// IsStopWord reports English stop words dropped before TF-IDF.
	IsStopWord(word string) bool
	// IsKeywordStopWord reports words ignored when extracting job keywords.
	IsKeywordStopWord(word string) bool

	SkillCategories() []Category
	ResumeSkills() ResumeSkills
	// SpokenLanguages are the natural languages the resume parser recognises.
	SpokenLanguages() []string

	TrendingSkills() []string
	GrowthIndustries() []string
	SalaryTrends() []SalaryTrend
	LocationInsight(location string) (LocationInsight, bool)
	IndustrySkills(industry string) ([]string, bool)
}

// Category groups skills for gap analysis.
type Category struct {
	Name     string
	Keywords []string
}

// ResumeSkills is the dictionary the resume parser searches for.
type ResumeSkills struct {
	Technical []string
	Soft      []string
	Tools     []string
}

// All returns every dictionary term in technical, soft, tools order.
func (r ResumeSkills) All() []string {
	all := make([]string, 0, len(r.Technical)+len(r.Soft)+len(r.Tools))
	all = append(all, r.Technical...)
	all = append(all, r.Soft...)
	return append(all, r.Tools...)
}

type SalaryTrend struct {
	Role    string  `json:"role"`
	Average int     `json:"average"`
	Growth  float64 `json:"growth"`
}

type LocationInsight struct {
	JobGrowth    string `json:"job_growth"`
	CostOfLiving string `json:"cost_of_living"`
	TechJobs     string `json:"tech_jobs"`
	Note         string `json:"note,omitempty"`
}

// Default returns the built-in tables.
func Default() Vocabulary {
	return defaultV1
}

type table struct {
	version             string
	synonyms            map[string]string
	atsKeywords         []string
	actionVerbs         []string
	feedbackActionVerbs []string
	stopWords           map[string]struct{}
	keywordStopWords    map[string]struct{}
	categories          []Category
	resumeSkills        ResumeSkills
	spokenLanguages     []string
	trendingSkills      []string
	growthIndustries    []string
	salaryTrends        []SalaryTrend
	locations           map[string]LocationInsight
	industrySkills      map[string][]string
}

func (t *table) Version() string { return t.version }

func (t *table) Synonym(term string) (string, bool) {
	v, ok := t.synonyms[term]
	return v, ok
}

func (t *table) ATSKeywords() []string { return t.atsKeywords }
func (t *table) ActionVerbs() []string { return t.actionVerbs }
func (t *table) FeedbackActionVerbs() []string { return t.feedbackActionVerbs }

func (t *table) IsStopWord(word string) bool {
	_, ok := t.stopWords[word]
	return ok
}

func (t *table) IsKeywordStopWord(word string) bool {
	_, ok := t.keywordStopWords[word]
	return ok
}

func (t *table) SkillCategories() []Category { return t.categories }
func (t *table) ResumeSkills() ResumeSkills { return t.resumeSkills }
func (t *table) SpokenLanguages() []string { return t.spokenLanguages }
func (t *table) TrendingSkills() []string { return t.trendingSkills }
func (t *table) GrowthIndustries() []string { return t.growthIndustries }
func (t *table) SalaryTrends() []SalaryTrend { return t.salaryTrends }

func (t *table) LocationInsight(location string) (LocationInsight, bool) {
	insight, ok := t.locations[strings.ToLower(strings.TrimSpace(location))]
	return insight, ok
}

func (t *table) IndustrySkills(industry string) ([]string, bool) {
	skills, ok := t.industrySkills[strings.ToLower(strings.TrimSpace(industry))]
	return skills, ok
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
