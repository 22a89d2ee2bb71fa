package feedback

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spigell/careerbuddy/internal/vocab"
)

const (
	poorATSScore         = 70
	complexFormatting    = 80
	minActionVerbs       = 3
	longParagraph        = 500
	maxLongParagraphs    = 2
	maxBulletStyles      = 2
	minDescriptionLines  = 2
	quantifiedLinesRatio = 0.3
)

var unprofessionalEmailRes = []*regexp.Regexp{
	regexp.MustCompile(`\d{4,}.*@`),
	regexp.MustCompile(`(?i)(sexy|hot|cute|cool|awesome).*@`),
	regexp.MustCompile(`(?i)@(yahoo|hotmail|aol)\.`),
}

var (
	metricRe     = regexp.MustCompile(`\d+(?:\.\d+)?%?`)
	bulletStyles = []string{"•", "-", "*", "·"}
)

// Rules returns the rule table in evaluation order.
func Rules(v vocab.Vocabulary) []Rule {
	verbs := v.FeedbackActionVerbs()

	return []Rule{
		{
			ID:          "missing_email",
			Category:    CategoryContent,
			Severity:    Critical,
			Title:       "Missing Email Address",
			Description: "No email address found in resume",
			Suggestion:  "Add a professional email address in the contact section",
			Impact:      9,
			Check: func(in *Input) (bool, []any) {
				return in.Resume.ContactInfo.Email == "", nil
			},
		},
		{
			ID:          "unprofessional_email",
			Category:    CategoryContent,
			Severity:    Medium,
			Title:       "Unprofessional Email",
			Description: "Email address may appear unprofessional",
			Suggestion:  "Use a professional email format: firstname.lastname@email.com",
			Impact:      5,
			Check: func(in *Input) (bool, []any) {
				return unprofessionalEmail(in.Resume.ContactInfo.Email), nil
			},
		},
		{
			ID:          "missing_phone",
			Category:    CategoryContent,
			Severity:    High,
			Title:       "Missing Phone Number",
			Description: "No phone number found in resume",
			Suggestion:  "Include a phone number for direct contact",
			Impact:      7,
			Check: func(in *Input) (bool, []any) {
				return in.Resume.ContactInfo.Phone == "", nil
			},
		},
		{
			ID:          "no_summary",
			Category:    CategoryContent,
			Severity:    Medium,
			Title:       "Missing Professional Summary",
			Description: "No professional summary or objective found",
			Suggestion:  "Add a 2-3 sentence professional summary highlighting your key strengths",
			Impact:      6,
			Check: func(in *Input) (bool, []any) {
				return in.Resume.Summary == "", nil
			},
		},
		{
			ID:          "no_experience",
			Category:    CategoryContent,
			Severity:    Critical,
			Title:       "Missing Work Experience",
			Description: "No work experience section found",
			Suggestion:  "Add your work experience with specific achievements and responsibilities",
			Impact:      10,
			Check: func(in *Input) (bool, []any) {
				return len(in.Resume.Experience) == 0, nil
			},
		},
		{
			ID:          "no_education",
			Category:    CategoryEducation,
			Severity:    High,
			Title:       "Missing Education",
			Description: "No education information found",
			Suggestion:  "Include your educational background and relevant coursework",
			Impact:      8,
			Check: func(in *Input) (bool, []any) {
				return len(in.Resume.Education) == 0, nil
			},
		},
		{
			ID:          "no_skills",
			Category:    CategorySkills,
			Severity:    High,
			Title:       "Missing Skills Section",
			Description: "No skills section found",
			Suggestion:  "Add a dedicated skills section with relevant technical and soft skills",
			Impact:      8,
			Check: func(in *Input) (bool, []any) {
				return len(in.Resume.Skills) == 0, nil
			},
		},
		{
			ID:          "long_paragraphs",
			Category:    CategoryFormatting,
			Severity:    Low,
			Title:       "Long Paragraphs",
			Description: "Some paragraphs are too long",
			Suggestion:  "Break long paragraphs into bullet points for better readability",
			Impact:      3,
			Check: func(in *Input) (bool, []any) {
				return longParagraphs(in.Resume.RawText) > maxLongParagraphs, nil
			},
		},
		{
			ID:          "inconsistent_bullets",
			Category:    CategoryFormatting,
			Severity:    Low,
			Title:       "Inconsistent Formatting",
			Description: "Multiple bullet point styles detected",
			Suggestion:  "Use consistent bullet points throughout the resume",
			Impact:      2,
			Check: func(in *Input) (bool, []any) {
				return bulletStylesUsed(in.Resume.RawText) > maxBulletStyles, nil
			},
		},
		{
			ID:          "poor_ats_score",
			Category:    CategoryATSCompatibility,
			Severity:    High,
			Title:       "Poor ATS Compatibility",
			Description: "ATS score: %d/100",
			Suggestion:  "Use standard headings, avoid tables/graphics, and use common fonts",
			Impact:      8,
			Check: func(in *Input) (bool, []any) {
				return in.Score.Overall < poorATSScore, []any{in.Score.Overall}
			},
		},
		{
			ID:          "complex_formatting",
			Category:    CategoryATSCompatibility,
			Severity:    Medium,
			Title:       "Complex Formatting",
			Description: "Formatting score: %d/100",
			Suggestion:  "Simplify formatting and avoid multi-column layouts",
			Impact:      6,
			Check: func(in *Input) (bool, []any) {
				return in.Score.Formatting < complexFormatting, []any{in.Score.Formatting}
			},
		},
		{
			ID:          "missing_action_verbs",
			Category:    CategoryKeywords,
			Severity:    Medium,
			Title:       "Missing Industry Keywords",
			Description: "Only %d action verbs found",
			Suggestion:  "Include more action verbs to describe your achievements",
			Impact:      5,
			Check: func(in *Input) (bool, []any) {
				found := countContained(strings.ToLower(in.Resume.RawText), verbs)
				return found < minActionVerbs, []any{found}
			},
		},
		{
			ID:          "brief_experience",
			Category:    CategoryExperience,
			Severity:    Medium,
			Title:       "Brief Experience Descriptions",
			Description: "%d jobs have insufficient descriptions",
			Suggestion:  "Expand job descriptions with specific achievements and quantifiable results",
			Impact:      7,
			Check: func(in *Input) (bool, []any) {
				brief := 0
				for _, exp := range in.Resume.Experience {
					if len(exp.Description) < minDescriptionLines {
						brief++
					}
				}
				return float64(brief) > float64(len(in.Resume.Experience))*0.5, []any{brief}
			},
		},
		{
			ID:          "unquantified_achievements",
			Category:    CategoryExperience,
			Severity:    Medium,
			Title:       "Lack of Quantified Achievements",
			Description: "Only %d descriptions include metrics",
			Suggestion:  "Include specific numbers, percentages, or metrics to demonstrate impact",
			Impact:      6,
			Check: func(in *Input) (bool, []any) {
				lines := in.Resume.DescriptionLines()
				withMetrics := 0
				for _, line := range lines {
					if metricRe.MatchString(line) {
						withMetrics++
					}
				}
				return float64(withMetrics) < float64(len(lines))*quantifiedLinesRatio, []any{withMetrics}
			},
		},
	}
}

func unprofessionalEmail(email string) bool {
	if email == "" {
		return false
	}
	for _, re := range unprofessionalEmailRes {
		if re.MatchString(email) {
			return true
		}
	}
	return false
}

func longParagraphs(text string) int {
	long := 0
	for _, paragraph := range strings.Split(text, "\n\n") {
		if utf8.RuneCountInString(paragraph) > longParagraph {
			long++
		}
	}
	return long
}

func bulletStylesUsed(text string) int {
	used := 0
	for _, style := range bulletStyles {
		if strings.Contains(text, style) {
			used++
		}
	}
	return used
}

func countContained(text string, words []string) int {
	found := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			found++
		}
	}
	return found
}
