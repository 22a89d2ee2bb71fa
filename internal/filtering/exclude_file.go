package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
)

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile creates a filter that removes listings contained in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, l *jobs.Listings) (*jobs.Listings, Step, error) {
	if f.path == "" {
		return l, Step{Initial: l.Len(), Left: l.Len()}, nil
	}

	excludedJobs, err := jobs.ExcludedFromFile(f.path)
	if err != nil {
		return l, Step{}, fmt.Errorf("getting excluded jobs from file: %w", err)
	}

	removed, step := excludeStep(l, jobs.ListingIDField, excludedJobs.IDs())
	if len(removed) > 0 {
		deps.Logger.Info("excluding listings based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_jobs", removed),
			zap.Int("jobs_left", l.Len()),
		)
	}

	return l, step, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
