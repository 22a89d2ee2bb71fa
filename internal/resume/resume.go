// Package resume turns uploaded resumes into the structured data the ATS
// scorer and feedback rules read.
package resume

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ContactInfo struct {
	Name      string `json:"name,omitempty" yaml:"name"`
	Email     string `json:"email,omitempty" yaml:"email"`
	Phone     string `json:"phone,omitempty" yaml:"phone"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin"`
	GitHub    string `json:"github,omitempty" yaml:"github"`
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio"`
	Location  string `json:"location,omitempty" yaml:"location"`
}

type Education struct {
	Institution    string   `json:"institution" yaml:"institution"`
	Degree         string   `json:"degree" yaml:"degree"`
	FieldOfStudy   string   `json:"field_of_study,omitempty" yaml:"field_of_study"`
	GraduationYear int      `json:"graduation_year,omitempty" yaml:"graduation_year"`
	GPA            *float64 `json:"gpa,omitempty" yaml:"gpa"`
}

type Experience struct {
	Company     string   `json:"company" yaml:"company"`
	Position    string   `json:"position" yaml:"position"`
	StartDate   string   `json:"start_date,omitempty" yaml:"start_date"`
	EndDate     string   `json:"end_date,omitempty" yaml:"end_date"`
	Description []string `json:"description" yaml:"description"`
	Location    string   `json:"location,omitempty" yaml:"location"`
}

type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ParsedData is a resume split into sections. RawText keeps the text the
// sections were parsed from.
type ParsedData struct {
	ContactInfo    ContactInfo  `json:"contact_info" yaml:"contact_info"`
	Summary        string       `json:"summary,omitempty" yaml:"summary"`
	Education      []Education  `json:"education" yaml:"education"`
	Experience     []Experience `json:"experience" yaml:"experience"`
	Skills         []string     `json:"skills" yaml:"skills"`
	Certifications []string     `json:"certifications" yaml:"certifications"`
	Languages      []string     `json:"languages" yaml:"languages"`
	Projects       []Project    `json:"projects" yaml:"projects"`
	Awards         []string     `json:"awards" yaml:"awards"`
	RawText        string       `json:"raw_text" yaml:"raw_text"`
}

// DescriptionLines returns every experience description line in order.
func (d *ParsedData) DescriptionLines() []string {
	var lines []string
	for _, exp := range d.Experience {
		lines = append(lines, exp.Description...)
	}
	return lines
}

// LoadParsed reads an already parsed resume from a YAML or JSON document.
func LoadParsed(path string) (*ParsedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parsed resume %q: %w", path, err)
	}

	var parsed ParsedData
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decoding parsed resume %q: %w", path, err)
	}

	return &parsed, nil
}
