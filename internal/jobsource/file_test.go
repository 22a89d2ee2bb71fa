package jobsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/careerbuddy/internal/jobs"
)

func TestDecodeListings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantIDs []string
		wantErr bool
	}{
		{
			name: "bare yaml list",
			doc: `
- id: a
  title: Go Developer
  experience_level: senior
  location_type: remote
  skills_required: [Go, Kafka]
  salary_max: 150000
- id: b
  title: SRE
  experience_level: mid
  location_type: onsite
`,
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "jobs key",
			doc:     "jobs:\n  - id: c\n    title: QA\n    experience_level: junior\n    location_type: hybrid\n",
			wantIDs: []string{"c"},
		},
		{
			name:    "json document",
			doc:     `{"jobs": [{"id": "d", "title": "PM", "experience_level": "lead", "location_type": "remote"}]}`,
			wantIDs: []string{"d"},
		},
		{
			name:    "empty document",
			doc:     "",
			wantIDs: []string{},
		},
		{
			name:    "scalar document",
			doc:     "just text",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeListings([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	doc := "- id: a\n  title: Go Developer\n  experience_level: senior\n  location_type: remote\n  skills_required: [Go]\n  salary_min: 90000\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	src := NewFile(path)
	got, err := src.FetchCandidateJobs(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, KindFile, src.Name())
	assert.Equal(t, jobs.LevelSenior, got[0].ExperienceLevel)
	assert.Equal(t, []string{"Go"}, got[0].SkillsRequired)
	require.NotNil(t, got[0].SalaryMin)
	assert.Equal(t, 90000, *got[0].SalaryMin)
	assert.Nil(t, got[0].SalaryMax)
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFile(filepath.Join(t.TempDir(), "nope.yaml")).FetchCandidateJobs(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading jobs file")
}
