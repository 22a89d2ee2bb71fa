package matching

// Preferences weights the five match categories and sets the ranking cut-off.
// Weights are expected to sum to 1.0; that is not enforced and totals are not clamped.
type Preferences struct {
	WeightSkills     float64 `json:"weight_skills" validate:"gte=0"`
	WeightExperience float64 `json:"weight_experience" validate:"gte=0"`
	WeightLocation   float64 `json:"weight_location" validate:"gte=0"`
	WeightSalary     float64 `json:"weight_salary" validate:"gte=0"`
	WeightIndustry   float64 `json:"weight_industry" validate:"gte=0"`
	MinMatchScore    float64 `json:"min_match_score" validate:"gte=0,lte=1"`
}

const (
	DefaultWeightSkills     = 0.4
	DefaultWeightExperience = 0.2
	DefaultWeightLocation   = 0.15
	DefaultWeightSalary     = 0.15
	DefaultWeightIndustry   = 0.1
	DefaultMinMatchScore    = 0.5
)

func DefaultPreferences() Preferences {
	return Preferences{
		WeightSkills:     DefaultWeightSkills,
		WeightExperience: DefaultWeightExperience,
		WeightLocation:   DefaultWeightLocation,
		WeightSalary:     DefaultWeightSalary,
		WeightIndustry:   DefaultWeightIndustry,
		MinMatchScore:    DefaultMinMatchScore,
	}
}

// WeightSum is reported by the CLI when weights drift away from 1.0.
func (p Preferences) WeightSum() float64 {
	return p.WeightSkills + p.WeightExperience + p.WeightLocation + p.WeightSalary + p.WeightIndustry
}
