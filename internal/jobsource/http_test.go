package jobsource

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
)

func TestBuildParams(t *testing.T) {
	t.Parallel()

	q := buildParams(&SearchParams{
		Text:      "backend engineer",
		Locations: []string{"Berlin", " ", "remote"},
		Skills:    []string{"Go"},
		PerPage:   20,
	})

	assert.Equal(t, "backend engineer", q.Get("text"))
	assert.Equal(t, []string{"Berlin", "remote"}, q["location"])
	assert.Equal(t, []string{"Go"}, q["skill"])
	assert.Equal(t, "20", q.Get("per_page"))
	assert.NotContains(t, q, "experience_level")
}

func TestHTTPSourcePaginates(t *testing.T) {
	var queries []string

	pages := []ItemResponse{
		{
			Items: []map[string]any{
				{"id": "a", "title": "Go Developer", "experience_level": "senior", "location_type": "remote",
					"skills_required": []any{"Go", "Kafka"}, "salary_min": 100000, "salary_max": nil},
			},
			Found: 2, Pages: 2, Page: 0, PerPage: 1,
		},
		{
			Items: []map[string]any{
				{"id": "b", "title": "SRE", "experience_level": "mid", "location_type": "onsite", "unknown": true},
			},
			Found: 2, Pages: 2, Page: 1, PerPage: 1,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		page := 0
		if r.URL.Query().Get("page") == "1" {
			page = 1
		}

		if page == 1 {
			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			defer gz.Close()
			_ = json.NewEncoder(gz).Encode(pages[page])
			return
		}
		_ = json.NewEncoder(w).Encode(pages[page])
	}))
	t.Cleanup(srv.Close)

	src := NewHTTP(srv.URL, "test-agent", 1, zap.NewNop())
	p := &profile.UserProfile{
		UserID:          "u",
		TargetRoles:     []string{"backend", "engineer"},
		ExperienceLevel: jobs.LevelSenior,
		Skills:          []string{"Go"},
	}

	got, err := src.FetchCandidateJobs(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, jobs.LevelSenior, got[0].ExperienceLevel)
	assert.Equal(t, []string{"Go", "Kafka"}, got[0].SkillsRequired)
	require.NotNil(t, got[0].SalaryMin)
	assert.Equal(t, 100000, *got[0].SalaryMin)
	assert.Nil(t, got[0].SalaryMax)
	assert.Equal(t, jobs.Onsite, got[1].LocationType)

	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "text=backend+engineer")
	assert.Contains(t, queries[0], "experience_level=senior")
	assert.Contains(t, queries[1], "page=1")
}

func TestHTTPSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTP(srv.URL, "", 0, nil).FetchCandidateJobs(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad status")
}
