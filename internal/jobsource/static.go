package jobsource

import (
	"context"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
)

// Static serves a fixed in-memory catalog.
type Static struct {
	listings []jobs.Listing
}

// NewStatic returns a source over listings. With no listings it serves the
// built-in catalog.
func NewStatic(listings ...jobs.Listing) *Static {
	if len(listings) == 0 {
		listings = Catalog()
	}
	return &Static{listings: listings}
}

func (s *Static) Name() string { return KindStatic }

func (s *Static) FetchCandidateJobs(ctx context.Context, _ *profile.UserProfile) ([]jobs.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]jobs.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

// Catalog returns a fresh copy of the built-in sample listings.
func Catalog() []jobs.Listing {
	return []jobs.Listing{
		{
			ID:              "job_1",
			Title:           "Senior Software Engineer",
			Company:         "TechCorp Inc",
			Description:     "We are looking for a senior software engineer with Python and React experience.",
			Requirements:    []string{"Python", "React", "SQL", "Git"},
			SkillsRequired:  []string{"Python", "React", "SQL", "Git"},
			ExperienceLevel: jobs.LevelSenior,
			Location:        "San Francisco, CA",
			LocationType:    jobs.Hybrid,
			EmploymentType:  jobs.FullTime,
			SalaryMin:       jobs.Int(120000),
			SalaryMax:       jobs.Int(180000),
			Industry:        "technology",
		},
		{
			ID:              "job_2",
			Title:           "Data Scientist",
			Company:         "DataCorp",
			Description:     "Join our data science team to build ML models and analyze big data.",
			Requirements:    []string{"Python", "Machine Learning", "SQL", "Statistics"},
			SkillsRequired:  []string{"Python", "Machine Learning", "SQL", "Statistics"},
			ExperienceLevel: jobs.LevelMid,
			Location:        "Remote",
			LocationType:    jobs.Remote,
			EmploymentType:  jobs.FullTime,
			SalaryMin:       jobs.Int(100000),
			SalaryMax:       jobs.Int(150000),
			Industry:        "technology",
		},
		{
			ID:              "job_3",
			Title:           "Frontend Developer",
			Company:         "StartupXYZ",
			Description:     "Looking for a frontend developer to build amazing user interfaces.",
			Requirements:    []string{"JavaScript", "React", "CSS", "HTML"},
			SkillsRequired:  []string{"JavaScript", "React", "CSS", "HTML"},
			ExperienceLevel: jobs.LevelJunior,
			Location:        "New York, NY",
			LocationType:    jobs.Onsite,
			EmploymentType:  jobs.FullTime,
			SalaryMin:       jobs.Int(80000),
			SalaryMax:       jobs.Int(120000),
			Industry:        "technology",
		},
		{
			ID:              "job_4",
			Title:           "DevOps Engineer",
			Company:         "CloudTech",
			Description:     "Manage our cloud infrastructure and deployment pipelines.",
			Requirements:    []string{"AWS", "Docker", "Kubernetes", "Python"},
			SkillsRequired:  []string{"AWS", "Docker", "Kubernetes", "Python"},
			ExperienceLevel: jobs.LevelSenior,
			Location:        "Austin, TX",
			LocationType:    jobs.Hybrid,
			EmploymentType:  jobs.FullTime,
			SalaryMin:       jobs.Int(110000),
			SalaryMax:       jobs.Int(160000),
			Industry:        "technology",
		},
		{
			ID:              "job_5",
			Title:           "Product Manager",
			Company:         "InnovateCorp",
			Description:     "Lead product development and strategy for our mobile applications.",
			Requirements:    []string{"Product Management", "Agile", "Analytics", "Communication"},
			SkillsRequired:  []string{"Product Management", "Agile", "Analytics", "Communication"},
			ExperienceLevel: jobs.LevelMid,
			Location:        "Seattle, WA",
			LocationType:    jobs.Hybrid,
			EmploymentType:  jobs.FullTime,
			SalaryMin:       jobs.Int(105000),
			SalaryMax:       jobs.Int(140000),
			Industry:        "technology",
		},
	}
}
