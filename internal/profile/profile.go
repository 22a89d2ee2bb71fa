// Package profile holds the candidate-side input of the matching engine.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spigell/careerbuddy/internal/jobs"
)

// UserProfile is the candidate as seen by the scorers.
type UserProfile struct {
	UserID              string               `json:"user_id" yaml:"user_id" validate:"required"`
	Skills              []string             `json:"skills" yaml:"skills"`
	ExperienceLevel     jobs.ExperienceLevel `json:"experience_level" yaml:"experience_level" validate:"required,experience_level"`
	TargetRoles         []string             `json:"target_roles" yaml:"target_roles"`
	PreferredIndustries []string             `json:"preferred_industries" yaml:"preferred_industries"`
	LocationPreferences []string             `json:"location_preferences" yaml:"location_preferences"`
	SalaryExpectation   *int                 `json:"salary_expectation,omitempty" yaml:"salary_expectation" validate:"omitempty,gte=0"`
	Certifications      []string             `json:"certifications,omitempty" yaml:"certifications"`
	Languages           []string             `json:"languages,omitempty" yaml:"languages"`
}

// Salary returns the expectation when one is set and positive.
func (p *UserProfile) Salary() (int, bool) {
	if p.SalaryExpectation == nil || *p.SalaryExpectation <= 0 {
		return 0, false
	}
	return *p.SalaryExpectation, true
}

// Document is the on-disk form: a profile plus optional application history.
type Document struct {
	Profile UserProfile `yaml:"profile"`
	// History lists ids of jobs the user already applied to.
	History []string `yaml:"history"`
}

// Load reads a YAML or JSON profile document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %q: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding profile %q: %w", path, err)
	}

	return &doc, nil
}
