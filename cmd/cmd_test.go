package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/ats"
	"github.com/spigell/careerbuddy/internal/feedback"
	"github.com/spigell/careerbuddy/internal/filtering"
	"github.com/spigell/careerbuddy/internal/jobsource"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/resume"
	"github.com/spigell/careerbuddy/internal/vocab"
)

func TestDefaultsUnmarshal(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var config Config
	require.NoError(t, v.Unmarshal(&config))

	assert.Equal(t, matching.DefaultPreferences(), config.preferences())
	assert.Equal(t, 10, config.Recommend.Limit)
	assert.Equal(t, jobsource.KindStatic, config.Jobs.Source)
	assert.Equal(t, 50, config.Jobs.HTTP.PerPage)
	assert.Equal(t, 4, concurrency(&config))
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, 200, config.AI.Gemini.MaxLogLength)
}

func TestConfigOverridesWeights(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("matching.weights.skills", 0.6)
	v.Set("matching.min-match-score", 0.3)

	var config Config
	require.NoError(t, v.Unmarshal(&config))

	prefs := config.preferences()
	assert.Equal(t, 0.6, prefs.WeightSkills)
	assert.Equal(t, 0.3, prefs.MinMatchScore)
	assert.InDelta(t, 1.2, prefs.WeightSum(), 1e-9)
}

func TestEmptyConfig(t *testing.T) {
	config := &Config{}

	assert.Equal(t, matching.DefaultPreferences(), config.preferences())
	assert.Equal(t, 1, concurrency(config))

	cfg := filterConfig(config)
	assert.Empty(t, cfg.Companies)
	assert.Empty(t, cfg.ExcludeFile)
}

func TestNewSource(t *testing.T) {
	log := zap.NewNop()

	source, closeSource, err := newSource(&Config{}, log)
	require.NoError(t, err)
	closeSource()
	assert.Equal(t, jobsource.KindStatic, source.Name())

	source, _, err = newSource(&Config{Jobs: &JobsConfig{Source: jobsource.KindFile, File: "jobs.yaml"}}, log)
	require.NoError(t, err)
	assert.Equal(t, jobsource.KindFile, source.Name())

	_, _, err = newSource(&Config{Jobs: &JobsConfig{Source: jobsource.KindHTTP}}, log)
	assert.Error(t, err)

	_, _, err = newSource(&Config{Jobs: &JobsConfig{Source: "ftp"}}, log)
	assert.ErrorContains(t, err, `unknown job source "ftp"`)
}

func TestNewAdvisorDisabled(t *testing.T) {
	advisor, err := newAdvisor(t.Context(), &Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, advisor)

	_, err = newAdvisor(t.Context(), &Config{AI: &AIConfig{Enabled: true, Provider: "openai"}}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported ai provider")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "run-1", "similarity", map[string]float64{"similarity": 0.5}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, "similarity", got["command"])
	assert.Equal(t, map[string]any{"similarity": 0.5}, got["result"])
}

func newReviewer() *reviewer {
	v := vocab.Default()
	return &reviewer{
		parser:   resume.NewParser(v),
		analyzer: ats.NewAnalyzer(v, zap.NewNop()),
		feedback: feedback.NewGenerator(v, zap.NewNop()),
		logger:   zap.NewNop(),
	}
}

func TestReviewBrokenPDFIsEmptyResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-garbage"), 0o600))

	analysis, err := newReviewer().review(path)
	require.NoError(t, err)

	assert.Equal(t, 25, analysis.ATS.Overall)
	assert.NotEmpty(t, analysis.Feedback)
	assert.Equal(t, feedback.OverallScore(analysis.ATS, analysis.Feedback), analysis.OverallScore)
}

func TestReviewText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	text := "Jane Doe\njane.doe@example.com\n(555) 123-4567\n\nSkills\nGo, Python\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	analysis, err := newReviewer().review(path)
	require.NoError(t, err)

	assert.Equal(t, path, analysis.File)
	assert.Equal(t, "jane.doe@example.com", analysis.Parsed.ContactInfo.Email)
	assert.Contains(t, analysis.Parsed.Skills, "Go")
}

func TestReviewRejectsUnsupportedFiles(t *testing.T) {
	_, err := newReviewer().review("resume.doc")

	assert.ErrorIs(t, err, resume.ErrUnsupportedFormat)
	assert.True(t, apperr.Is(err, apperr.InputValidation))
}

func TestFilterStepsHonoursAppliedFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "match"}
	cmd.Flags().BoolP("do-not-exclude-applied", "f", false, "")
	require.NoError(t, cmd.Flags().Set("do-not-exclude-applied", "true"))

	steps := filterSteps(cmd, zap.NewNop())

	require.Len(t, steps, 4)
	for _, status := range filtering.Describe(steps) {
		assert.Equal(t, status.Name != filtering.AppliedHistoryName, status.Enabled, status.Name)
	}
}
