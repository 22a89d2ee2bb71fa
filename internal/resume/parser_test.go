package resume

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

SUMMARY
Backend engineer with 8 years of experience building distributed systems in Go and Python.

EXPERIENCE
Acme Corp
Senior Software Engineer
Jan 2020 - Present
- Led migration of 40 services to Kubernetes
- Reduced p99 latency by 35%

Globex Inc
Software Engineer
2016 - 2019
- Developed billing pipeline in Python

EDUCATION
Massachusetts Institute of Technology
B.S. Computer Science, 2016 GPA: 3.8

SKILLS
Go, Python, PostgreSQL; Docker | Kafka

CERTIFICATIONS
AWS Certified Solutions Architect

LANGUAGES
English, Spanish

PROJECTS
- ledger: double-entry accounting library for Go services
- tiny

AWARDS
- Employee of the Year 2021
`

func TestParseSampleResume(t *testing.T) {
	t.Parallel()

	data := Parse(sampleResume)

	assert.Equal(t, ContactInfo{
		Name:     "Jane Doe",
		Email:    "jane.doe@example.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "linkedin.com/in/janedoe",
		GitHub:   "github.com/janedoe",
	}, data.ContactInfo)

	assert.Equal(t, "Backend engineer with 8 years of experience building distributed systems in Go and Python.", data.Summary)

	require.Len(t, data.Experience, 2)
	assert.Equal(t, Experience{
		Company:   "Acme Corp",
		Position:  "Senior Software Engineer",
		StartDate: "Jan 2020",
		EndDate:   "Present",
		Description: []string{
			"Led migration of 40 services to Kubernetes",
			"Reduced p99 latency by 35%",
		},
	}, data.Experience[0])
	assert.Equal(t, "2016", data.Experience[1].StartDate)
	assert.Equal(t, "2019", data.Experience[1].EndDate)
	assert.Equal(t, []string{"Developed billing pipeline in Python"}, data.Experience[1].Description)

	require.Len(t, data.Education, 1)
	edu := data.Education[0]
	assert.Equal(t, "Massachusetts Institute of Technology", edu.Institution)
	assert.Equal(t, "B.S.", edu.Degree)
	assert.Equal(t, "Computer Science", edu.FieldOfStudy)
	assert.Equal(t, 2016, edu.GraduationYear)
	require.NotNil(t, edu.GPA)
	assert.InDelta(t, 3.8, *edu.GPA, 1e-9)

	assert.Equal(t, []string{"Go", "Python", "PostgreSQL", "Docker", "Kafka", "kubernetes", "aws"}, data.Skills)
	assert.Equal(t, []string{"AWS Certified Solutions Architect"}, data.Certifications)
	assert.Equal(t, []string{"English", "Spanish"}, data.Languages)
	assert.Equal(t, []string{"Employee of the Year 2021"}, data.Awards)

	require.Len(t, data.Projects, 1)
	assert.Equal(t, maxProjectName, utf8.RuneCountInString(data.Projects[0].Name))
	assert.Equal(t, "ledger: double-entry accounting library for Go services", data.Projects[0].Description)

	assert.Equal(t, sampleResume, data.RawText)
	assert.Equal(t, []string{
		"Led migration of 40 services to Kubernetes",
		"Reduced p99 latency by 35%",
		"Developed billing pipeline in Python",
	}, data.DescriptionLines())
}

func TestParseEmptyText(t *testing.T) {
	t.Parallel()

	data := Parse("")

	assert.Empty(t, data.ContactInfo.Name)
	assert.Empty(t, data.Summary)
	assert.NotNil(t, data.Experience)
	assert.Empty(t, data.Experience)
	assert.Empty(t, data.Education)
	assert.NotNil(t, data.Skills)
	assert.Empty(t, data.Skills)
	assert.Empty(t, data.Certifications)
	assert.Empty(t, data.Languages)
	assert.Empty(t, data.Projects)
	assert.Empty(t, data.Awards)
}

func TestParseWithoutSections(t *testing.T) {
	t.Parallel()

	text := "My Resume\nJohn Smith\nBoston, MA\nMaster of Science in Physics 2010\nFluent in French and German. Used Excel and Jira daily."
	data := Parse(text)

	assert.Equal(t, "John Smith", data.ContactInfo.Name)

	require.Len(t, data.Education, 1)
	assert.Equal(t, "Master", data.Education[0].Degree)
	assert.Equal(t, "Science in Physics", data.Education[0].FieldOfStudy)
	assert.Equal(t, 2010, data.Education[0].GraduationYear)
	assert.Equal(t, "Boston, MA", data.Education[0].Institution)

	assert.Equal(t, []string{"French", "German"}, data.Languages)
	assert.Equal(t, []string{"excel", "jira"}, data.Skills)
	assert.Empty(t, data.Summary)
}

func TestParseInlineHeadings(t *testing.T) {
	t.Parallel()

	data := Parse("Skills: Go, Rust\nLanguages: English")

	assert.Equal(t, []string{"Go", "Rust"}, data.Skills)
	assert.Equal(t, []string{"English"}, data.Languages)
}

func TestLoadParsed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parsed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
contact_info:
  name: Jane Doe
  email: jane@example.com
skills: [Go, SQL]
experience:
  - company: Acme
    position: Engineer
    description: ["Built things"]
`), 0o600))

	parsed, err := LoadParsed(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", parsed.ContactInfo.Name)
	assert.Equal(t, []string{"Go", "SQL"}, parsed.Skills)
	assert.Equal(t, []string{"Built things"}, parsed.DescriptionLines())

	_, err = LoadParsed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
