package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
)

const AppliedHistoryName = "applied_history"

type appliedHistoryFilter struct {
	toggle
	lastHistory int
}

// NewAppliedHistory creates a filter that removes listings found in the application history.
func NewAppliedHistory() Filter {
	return &appliedHistoryFilter{}
}

func (f *appliedHistoryFilter) Name() string { return AppliedHistoryName }

func (f *appliedHistoryFilter) Validate(*Config) error { return nil }

func (f *appliedHistoryFilter) Apply(_ context.Context, deps Deps, l *jobs.Listings) (*jobs.Listings, Step, error) {
	f.lastHistory = len(deps.History)

	excluded, step := excludeStep(l, jobs.ListingIDField, deps.History)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding listings based on application history",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", l.Len()),
		)
	}

	return l, step, nil
}

func (f *appliedHistoryFilter) Status() Status {
	details := map[string]string{
		"history_size": strconv.Itoa(f.lastHistory),
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
