package resume

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/careerbuddy/internal/vocab"
)

const (
	sectionSummary        = "summary"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionSkills         = "skills"
	sectionCertifications = "certifications"
	sectionLanguages      = "languages"
	sectionProjects       = "projects"
	sectionAwards         = "awards"

	minSummaryLength = 20
	maxProjectName   = 50
)

var headings = map[string]string{
	"summary":                 sectionSummary,
	"professional summary":    sectionSummary,
	"profile":                 sectionSummary,
	"professional profile":    sectionSummary,
	"objective":               sectionSummary,
	"career objective":        sectionSummary,
	"about":                   sectionSummary,
	"about me":                sectionSummary,
	"experience":              sectionExperience,
	"work experience":         sectionExperience,
	"professional experience": sectionExperience,
	"employment":              sectionExperience,
	"employment history":      sectionExperience,
	"work history":            sectionExperience,
	"career":                  sectionExperience,
	"education":               sectionEducation,
	"skills":                  sectionSkills,
	"technical skills":        sectionSkills,
	"core skills":             sectionSkills,
	"key skills":              sectionSkills,
	"certifications":          sectionCertifications,
	"certificates":            sectionCertifications,
	"licenses":                sectionCertifications,
	"languages":               sectionLanguages,
	"projects":                sectionProjects,
	"portfolio":               sectionProjects,
	"awards":                  sectionAwards,
	"achievements":            sectionAwards,
	"honors":                  sectionAwards,
}

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedInRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	gitHubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	degreeRe = regexp.MustCompile(`(?i)(?:^|[\s,(])(bachelor(?:'s)?|master(?:'s)?|ph\.?d\.?|mba|b\.s\.?|m\.s\.?|b\.a\.?|m\.a\.?|b\.tech|m\.tech|bsc|msc|bs|ms|ba|ma)(?:[\s,.:)]|$)(.*)`)
	yearRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRe    = regexp.MustCompile(`(?i)gpa[:\s]*([0-4](?:\.\d{1,2})?)`)
	dateRe   = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|(?:19|20)\d{2}|present|current)\b`)

	certificationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:AWS|Azure|Google Cloud|Microsoft|Oracle|Cisco|CompTIA|PMP|Scrum Master)[ \t\w]*(?:Certified|Certification)`),
		regexp.MustCompile(`(?i)(?:Certified|Certification)[ \t\w]*(?:AWS|Azure|Google|Microsoft|Oracle|Cisco|CompTIA|PMP|Scrum)`),
	}

	bulletRe    = regexp.MustCompile(`^\s*(?:[-•*·▪◦‣–]|\d{1,2}[.)])\s*`)
	listSplitRe = regexp.MustCompile(`\s*[,;|•·]\s*`)
)

// Parser splits resume text into sections with line-based heuristics.
type Parser struct {
	skills    []term
	languages []term
}

type term struct {
	name string
	re   *regexp.Regexp
}

func NewParser(v vocab.Vocabulary) *Parser {
	if v == nil {
		v = vocab.Default()
	}
	return &Parser{
		skills:    compileTerms(v.ResumeSkills().All()),
		languages: compileTerms(v.SpokenLanguages()),
	}
}

var defaultParser = NewParser(nil)

// Parse runs the default parser over text.
func Parse(text string) ParsedData {
	return defaultParser.Parse(text)
}

// compileTerms builds whole-word matchers that also work for terms such as
// "c++" and "node.js".
func compileTerms(names []string) []term {
	terms := make([]term, 0, len(names))
	for _, name := range names {
		pattern := `(?i)(?:^|[^\w+#.])` + regexp.QuoteMeta(name) + `(?:$|[^\w+#])`
		terms = append(terms, term{name: name, re: regexp.MustCompile(pattern)})
	}
	return terms
}

// Parse never fails: sections it cannot find are left empty.
func (p *Parser) Parse(text string) ParsedData {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	sections := splitSections(lines)

	data := ParsedData{
		ContactInfo:    parseContact(text, lines),
		Summary:        parseSummary(sections[sectionSummary]),
		Education:      parseEducation(sections[sectionEducation], lines),
		Experience:     parseExperience(sections[sectionExperience]),
		Skills:         p.parseSkills(text, sections[sectionSkills]),
		Certifications: parseCertifications(lines, sections[sectionCertifications]),
		Languages:      p.parseLanguages(text, sections[sectionLanguages]),
		Projects:       parseProjects(sections[sectionProjects]),
		Awards:         parseAwards(sections[sectionAwards]),
		RawText:        text,
	}

	return data
}

// splitSections assigns every line after a heading to that heading's section.
// A heading may carry inline content after a colon.
func splitSections(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, line := range lines {
		if name, rest, ok := heading(line); ok {
			current = name
			if _, seen := sections[current]; !seen {
				sections[current] = []string{}
			}
			if rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	return sections
}

func heading(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	head, rest := trimmed, ""
	if i := strings.Index(trimmed, ":"); i >= 0 {
		head, rest = trimmed[:i], strings.TrimSpace(trimmed[i+1:])
	}

	name, ok := headings[strings.ToLower(strings.Join(strings.Fields(head), " "))]
	return name, rest, ok
}

func parseContact(text string, lines []string) ContactInfo {
	contact := ContactInfo{
		Email:    emailRe.FindString(text),
		Phone:    strings.TrimSpace(phoneRe.FindString(text)),
		LinkedIn: linkedInRe.FindString(text),
		GitHub:   gitHubRe.FindString(text),
	}

	for i, line := range lines {
		if i >= 5 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 4 {
			continue
		}
		if _, _, isHeading := heading(line); isHeading {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, "resume", "cv", "email", "phone", "@") {
			continue
		}
		contact.Name = line
		break
	}

	return contact
}

func parseSummary(lines []string) string {
	summary := strings.Join(nonEmpty(lines), " ")
	if len(summary) <= minSummaryLength {
		return ""
	}
	return summary
}

// parseEducation looks for degree lines inside the education section, or in
// the whole document when there is none.
func parseEducation(section, all []string) []Education {
	lines := section
	if lines == nil {
		lines = all
	}

	education := []Education{}
	prev, prevIsDegree := "", false
	for _, raw := range lines {
		line := stripBullet(raw)
		if line == "" {
			continue
		}

		m := degreeRe.FindStringSubmatch(line)
		// outside an education section two-letter degrees collide with state codes
		if m == nil || (section == nil && len(m[1]) <= 2) {
			prev, prevIsDegree = line, false
			continue
		}

		entry := Education{
			Degree:       m[1],
			FieldOfStudy: cleanField(m[2]),
		}
		if year, err := strconv.Atoi(yearRe.FindString(line)); err == nil {
			entry.GraduationYear = year
		}
		if gpa := gpaRe.FindStringSubmatch(line); gpa != nil {
			if v, err := strconv.ParseFloat(gpa[1], 64); err == nil {
				entry.GPA = &v
			}
		}
		if len(prev) > 5 && !prevIsDegree {
			entry.Institution = prev
		}

		education = append(education, entry)
		prev, prevIsDegree = line, true
	}

	return education
}

func cleanField(s string) string {
	s = yearRe.ReplaceAllString(s, "")
	s = gpaRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"in ", "of "} {
		if len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
		}
	}
	return strings.Trim(strings.TrimSpace(s), ",-–()")
}

// parseExperience reads blank-line separated blocks: company, position, then
// description lines.
func parseExperience(section []string) []Experience {
	experience := []Experience{}

	for _, block := range blocks(section) {
		if len(block) < 2 {
			continue
		}

		entry := Experience{
			Company:     block[0],
			Position:    block[1],
			Description: []string{},
		}

		dates := dateRe.FindAllString(strings.Join(block[:min(len(block), 3)], "\n"), -1)
		if len(dates) > 0 {
			entry.StartDate = dates[0]
		}
		if len(dates) > 1 {
			entry.EndDate = dates[1]
		}

		for _, line := range block[2:] {
			if dateOnly(line) {
				continue
			}
			if desc := stripBullet(line); desc != "" {
				entry.Description = append(entry.Description, desc)
			}
		}

		experience = append(experience, entry)
	}

	return experience
}

// dateOnly reports lines such as "Jan 2020 - Present".
func dateOnly(line string) bool {
	rest := dateRe.ReplaceAllString(line, "")
	return strings.Trim(rest, " \t-–—to|,") == "" && dateRe.MatchString(line)
}

func (p *Parser) parseSkills(text string, section []string) []string {
	var skills []string
	for _, line := range nonEmpty(section) {
		skills = append(skills, splitList(stripBullet(line))...)
	}
	for _, t := range p.skills {
		if t.re.MatchString(text) {
			skills = append(skills, t.name)
		}
	}
	return dedupe(skills)
}

func parseCertifications(lines, section []string) []string {
	var certs []string
	for _, line := range nonEmpty(section) {
		certs = append(certs, stripBullet(line))
	}
	for _, line := range lines {
		for _, re := range certificationRes {
			for _, match := range re.FindAllString(line, -1) {
				if !coveredBy(certs, strings.TrimSpace(match)) {
					certs = append(certs, strings.TrimSpace(match))
				}
			}
		}
	}
	return dedupe(certs)
}

func (p *Parser) parseLanguages(text string, section []string) []string {
	var languages []string
	for _, line := range nonEmpty(section) {
		languages = append(languages, splitList(stripBullet(line))...)
	}
	if len(languages) > 0 {
		return dedupe(languages)
	}

	for _, t := range p.languages {
		if t.re.MatchString(text) {
			languages = append(languages, t.name)
		}
	}
	return dedupe(languages)
}

func parseProjects(section []string) []Project {
	projects := []Project{}

	var items [][]string
	for _, block := range blocks(section) {
		for _, line := range block {
			if bulletRe.MatchString(line) || len(items) == 0 {
				items = append(items, []string{stripBullet(line)})
				continue
			}
			items[len(items)-1] = append(items[len(items)-1], line)
		}
		// a blank line always closes the current project
		items = append(items, nil)
	}

	for _, item := range items {
		description := strings.TrimSpace(strings.Join(item, "\n"))
		if len(description) <= 10 {
			continue
		}
		projects = append(projects, Project{
			Name:        truncateRunes(item[0], maxProjectName),
			Description: description,
		})
	}

	return projects
}

func parseAwards(section []string) []string {
	awards := []string{}
	for _, line := range section {
		if award := stripBullet(line); len(award) > 5 {
			awards = append(awards, award)
		}
	}
	return awards
}

// blocks groups trimmed non-empty lines separated by blank lines.
func blocks(lines []string) [][]string {
	var out [][]string
	var current []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}

func splitList(line string) []string {
	var items []string
	for _, item := range listSplitRe.Split(line, -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// dedupe keeps the first spelling of each case-insensitive value.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// coveredBy reports whether s is part of an item already collected.
func coveredBy(items []string, s string) bool {
	lower := strings.ToLower(s)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), lower) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
