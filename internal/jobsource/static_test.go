package jobsource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/careerbuddy/internal/jobs"
)

func TestStaticServesCatalog(t *testing.T) {
	t.Parallel()

	src := NewStatic()
	got, err := src.FetchCandidateJobs(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, got, 5)
	assert.Equal(t, KindStatic, src.Name())
	assert.Equal(t, "job_1", got[0].ID)
	assert.Equal(t, []string{"Python", "React", "SQL", "Git"}, got[0].SkillsRequired)
	assert.Equal(t, got[0].SkillsRequired, got[0].Requirements)
	assert.Equal(t, jobs.Remote, got[1].LocationType)
	assert.Equal(t, 180000, *got[0].SalaryMax)

	for _, item := range got {
		assert.Equal(t, jobs.FullTime, item.EmploymentType)
		assert.Equal(t, "technology", item.Industry)
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	t.Parallel()

	src := NewStatic(jobs.Listing{ID: "x", Title: "X"})
	first, err := src.FetchCandidateJobs(context.Background(), nil)
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := src.FetchCandidateJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "X", second[0].Title)
}

func TestStaticHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic().FetchCandidateJobs(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
