package jobs

import "strings"

// ExperienceLevel is an ordinal seniority scale.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

// Levels lists experience levels in ascending order.
var Levels = []ExperienceLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead, LevelExecutive}

// Index returns the position of l on the seniority scale, or -1 if l is unknown.
func (l ExperienceLevel) Index() int {
	for i, level := range Levels {
		if strings.EqualFold(string(l), string(level)) {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the known levels.
func (l ExperienceLevel) Valid() bool { return l.Index() >= 0 }

// LocationType describes where the work happens.
type LocationType string

const (
	Remote LocationType = "remote"
	Onsite LocationType = "onsite"
	Hybrid LocationType = "hybrid"
)

func (t LocationType) Valid() bool {
	switch t {
	case Remote, Onsite, Hybrid:
		return true
	}
	return false
}

// EmploymentType describes the contract.
type EmploymentType string

const (
	FullTime   EmploymentType = "full_time"
	PartTime   EmploymentType = "part_time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
	Freelance  EmploymentType = "freelance"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contract, Internship, Freelance:
		return true
	}
	return false
}

// Listing is a job posting as consumed by the scorers.
type Listing struct {
	ID              string          `json:"id" yaml:"id" validate:"required"`
	Title           string          `json:"title" yaml:"title" validate:"required"`
	Company         string          `json:"company" yaml:"company"`
	Description     string          `json:"description,omitempty" yaml:"description"`
	Requirements    []string        `json:"requirements,omitempty" yaml:"requirements"`
	SkillsRequired  []string        `json:"skills_required" yaml:"skills_required"`
	ExperienceLevel ExperienceLevel `json:"experience_level" yaml:"experience_level" validate:"required,experience_level"`
	Location        string          `json:"location" yaml:"location"`
	LocationType    LocationType    `json:"location_type" yaml:"location_type" validate:"required,location_type"`
	EmploymentType  EmploymentType  `json:"employment_type,omitempty" yaml:"employment_type" validate:"omitempty,employment_type"`
	SalaryMin       *int            `json:"salary_min,omitempty" yaml:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *int            `json:"salary_max,omitempty" yaml:"salary_max" validate:"omitempty,gte=0"`
	Industry        string          `json:"industry,omitempty" yaml:"industry"`
	Benefits        []string        `json:"benefits,omitempty" yaml:"benefits"`
	URL             string          `json:"url,omitempty" yaml:"url"`
}

// SalaryBounds returns the positive salary bounds. Zero and negative values count as absent.
func (item *Listing) SalaryBounds() (lo, hi int, hasMin, hasMax bool) {
	if item.SalaryMin != nil && *item.SalaryMin > 0 {
		lo, hasMin = *item.SalaryMin, true
	}
	if item.SalaryMax != nil && *item.SalaryMax > 0 {
		hi, hasMax = *item.SalaryMax, true
	}
	return lo, hi, hasMin, hasMax
}

// Int returns a pointer to v. Handy for salary literals.
func Int(v int) *int { return &v }
