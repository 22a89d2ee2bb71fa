package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
)

type employmentTypesFilter struct {
	toggle
	types []string
}

// NewEmploymentTypes creates a filter that removes listings with unwanted employment types.
func NewEmploymentTypes() Filter {
	return &employmentTypesFilter{}
}

func (f *employmentTypesFilter) Name() string { return "employment_types" }

func (f *employmentTypesFilter) Validate(cfg *Config) error {
	f.types = nil
	if cfg == nil {
		return nil
	}
	for _, t := range cfg.EmploymentTypes {
		normalized := strings.ToLower(strings.TrimSpace(t))
		if !jobs.EmploymentType(normalized).Valid() {
			return fmt.Errorf("unknown employment type %q", t)
		}
		f.types = append(f.types, normalized)
	}
	return nil
}

func (f *employmentTypesFilter) Apply(_ context.Context, deps Deps, l *jobs.Listings) (*jobs.Listings, Step, error) {
	excluded, step := excludeStep(l, jobs.ListingEmploymentTypeField, f.types)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding listings by employment type",
			zap.Strings("employment_types", f.types),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", l.Len()),
		)
	}

	return l, step, nil
}

func (f *employmentTypesFilter) Status() Status {
	details := map[string]string{}
	if len(f.types) > 0 {
		details["employment_types"] = strings.Join(f.types, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
