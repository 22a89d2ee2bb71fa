package skills

import "strings"

const otherCategory = "other"

// Gap describes which requirements a candidate lacks and how to close the gap.
type Gap struct {
	MatchingSkills []string            `json:"matching_skills"`
	MissingSkills  []string            `json:"missing_skills"`
	Categories     map[string][]string `json:"skill_categories"`
	GapScore       float64             `json:"gap_score"`
	Suggestions    []string            `json:"suggestions"`
}

var categorySuggestions = []struct {
	category   string
	suggestion string
}{
	{"programming", "Consider taking online courses for programming languages like Codecademy or freeCodeCamp"},
	{"frameworks", "Learn popular frameworks through official documentation and tutorials"},
	{"cloud", "Get cloud certifications from AWS, Azure, or Google Cloud Platform"},
	{"certifications", "Pursue relevant professional certifications in your field"},
}

const manyMissingSuggestion = "Focus on the most important skills first - prioritize based on job frequency"

// AnalyzeGap compares userSkills against requirements and groups the missing ones.
func (m *Matcher) AnalyzeGap(userSkills, requirements []string) Gap {
	cov := m.Coverage(requirements, userSkills)
	categories := m.Categorize(cov.Missing)

	gap := Gap{
		MatchingSkills: cov.Matched,
		MissingSkills:  cov.Missing,
		Categories:     categories,
		GapScore:       cov.Score,
		Suggestions:    []string{},
	}

	for _, cs := range categorySuggestions {
		if _, ok := categories[cs.category]; ok {
			gap.Suggestions = append(gap.Suggestions, cs.suggestion)
		}
	}

	if len(cov.Missing) > 5 {
		gap.Suggestions = append(gap.Suggestions, manyMissingSuggestion)
	}

	return gap
}

// Categorize assigns each skill to the first category with a keyword contained
// in it, or to "other". Empty categories are omitted.
func (m *Matcher) Categorize(list []string) map[string][]string {
	categories := make(map[string][]string)

	for _, skill := range list {
		lower := strings.ToLower(skill)
		name := otherCategory

	lookup:
		for _, c := range m.vocab.SkillCategories() {
			for _, kw := range c.Keywords {
				if strings.Contains(lower, kw) {
					name = c.Name
					break lookup
				}
			}
		}

		categories[name] = append(categories[name], skill)
	}

	return categories
}
