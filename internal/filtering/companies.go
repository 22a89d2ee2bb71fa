package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
)

type companiesFilter struct {
	toggle
	companies []string
}

// NewCompanies creates a filter that removes listings by companies configured in the config.
func NewCompanies() Filter {
	return &companiesFilter{}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Validate(cfg *Config) error {
	f.companies = nil
	if cfg != nil {
		f.companies = append(f.companies, cfg.Companies...)
	}
	return nil
}

func (f *companiesFilter) Apply(_ context.Context, deps Deps, l *jobs.Listings) (*jobs.Listings, Step, error) {
	excluded, step := excludeStep(l, jobs.ListingCompanyField, f.companies)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding listings by company",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", l.Len()),
		)
	}

	return l, step, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
