// Package jobsource provides the candidate job listings fed to the recommender.
package jobsource

import (
	"context"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
)

const (
	KindStatic = "static"
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindHTTP   = "http"
)

// Source yields candidate listings for a profile. Implementations may ignore
// the profile and return their whole catalog.
type Source interface {
	Name() string
	FetchCandidateJobs(ctx context.Context, p *profile.UserProfile) ([]jobs.Listing, error)
}
