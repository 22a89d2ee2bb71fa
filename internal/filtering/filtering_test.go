package filtering

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/careerbuddy/internal/jobs"
)

func sampleListings() *jobs.Listings {
	return jobs.NewListings([]jobs.Listing{
		{ID: "1", Title: "Go Developer", Company: "Acme", EmploymentType: jobs.FullTime},
		{ID: "2", Title: "SRE", Company: "Globex", EmploymentType: jobs.Contract},
		{ID: "3", Title: "QA", Company: "acme ", EmploymentType: jobs.Internship},
		{ID: "4", Title: "Data Engineer", Company: "Initech", EmploymentType: jobs.FullTime},
	})
}

func TestRunDefaultPipeline(t *testing.T) {
	excludePath := filepath.Join(t.TempDir(), "exclude.json")
	excluded := jobs.NewListings([]jobs.Listing{{ID: "4", Title: "Data Engineer"}}).ToExcluded()
	require.NoError(t, excluded.ToFile(excludePath))

	core, observed := observer.New(zapcore.InfoLevel)
	cfg := &Config{
		Companies:       []string{"ACME"},
		EmploymentTypes: []string{"Contract"},
		ExcludeFile:     excludePath,
	}

	got, err := Run(context.Background(), cfg, Deps{Logger: zap.New(core)}, Default(), sampleListings())
	require.NoError(t, err)
	assert.Empty(t, got.IDs())

	steps := observed.FilterMessage("filter step").All()
	require.Len(t, steps, 4)
	assert.Equal(t, "companies", steps[0].ContextMap()["name"])
	assert.Equal(t, int64(2), steps[0].ContextMap()["dropped"])
	assert.Equal(t, int64(1), steps[1].ContextMap()["dropped"])
	assert.Equal(t, int64(0), steps[2].ContextMap()["dropped"])
	assert.Equal(t, int64(1), steps[3].ContextMap()["dropped"])
}

func TestRunAppliedHistory(t *testing.T) {
	got, err := Run(context.Background(), nil, Deps{History: []string{"2", "3", "unknown"}}, Default(), sampleListings())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, got.IDs())
}

func TestRunSkipsDisabledFilters(t *testing.T) {
	steps := Default()
	DisableByName(steps, AppliedHistoryName, "flag")

	core, observed := observer.New(zapcore.InfoLevel)
	got, err := Run(context.Background(), nil, Deps{Logger: zap.New(core), History: []string{"1"}}, steps, sampleListings())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got.IDs())
	assert.Equal(t, 1, observed.FilterMessage("filter disabled").Len())

	statuses := Describe(steps)
	require.Len(t, statuses, 4)
	assert.False(t, statuses[2].Enabled)
	assert.Equal(t, "flag", statuses[2].Reason)
}

func TestRunRejectsUnknownEmploymentType(t *testing.T) {
	_, err := Run(context.Background(), &Config{EmploymentTypes: []string{"gig"}}, Deps{}, Default(), sampleListings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employment_types")
}

func TestDescribeReportsConfiguration(t *testing.T) {
	steps := Default()
	_, err := Run(context.Background(), &Config{Companies: []string{"Acme", "Globex"}}, Deps{}, steps, sampleListings())
	require.NoError(t, err)

	statuses := Describe(steps)
	assert.Equal(t, "Acme,Globex", statuses[0].Details["companies"])
	assert.Empty(t, statuses[3].Details)
}
