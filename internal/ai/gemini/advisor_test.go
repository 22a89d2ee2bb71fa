package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genai"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func fixtures() (*profile.UserProfile, *matching.Result) {
	p := &profile.UserProfile{UserID: "u-1", Skills: []string{"Go", "SQL"}, ExperienceLevel: jobs.LevelSenior}
	match := &matching.Result{
		Job:            jobs.Listing{ID: "job_1", Title: "Backend Engineer", Company: "Acme"},
		Score:          0.8666666,
		Strength:       matching.Strong,
		MatchingSkills: []string{"go"},
		MissingSkills:  []string{"kafka"},
	}
	return p, match
}

func TestAdvisorAdvise(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "```json\n" + `{
		"summary": " Solid backend fit. ",
		"strengths": ["Go experience", ""],
		"gaps": "No Kafka",
		"next_steps": ["Ship a Kafka side project"],
		"confidence": "0.82"
	}` + "\n```"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)
	p, match := fixtures()

	advice, err := advisor.Advise(context.Background(), p, match)
	require.NoError(t, err)

	assert.Equal(t, "job_1", advice.JobID)
	assert.Equal(t, "Solid backend fit.", advice.Summary)
	assert.Equal(t, []string{"Go experience"}, advice.Strengths)
	assert.Equal(t, []string{"No Kafka"}, advice.Gaps)
	assert.Equal(t, []string{"Ship a Kafka side project"}, advice.NextSteps)
	assert.InDelta(t, 0.82, advice.Confidence, 1e-9)
	assert.NotEmpty(t, advice.Raw)

	assert.Contains(t, stub.lastPrompt, `"user_id": "u-1"`)
	assert.Contains(t, stub.lastPrompt, `"job_id": "job_1"`)
	assert.Contains(t, stub.lastPrompt, `"match_score": 0.87`)
	assert.NotContains(t, stub.lastPrompt, "{{PROFILE_JSON}}")
	assert.NotContains(t, stub.lastPrompt, "{{MATCH_JSON}}")
}

func TestAdvisorErrors(t *testing.T) {
	t.Parallel()

	p, match := fixtures()

	_, err := NewAdvisor(&stubGenerator{}, nil, 0).Advise(context.Background(), nil, match)
	assert.Error(t, err)

	_, err = NewAdvisor(&stubGenerator{}, nil, 0).Advise(context.Background(), p, nil)
	assert.Error(t, err)

	upstream := errors.New("quota exceeded")
	_, err = NewAdvisor(&stubGenerator{err: upstream}, nil, 0).Advise(context.Background(), p, match)
	assert.ErrorIs(t, err, upstream)

	_, err = NewAdvisor(&stubGenerator{response: "not json"}, nil, 0).Advise(context.Background(), p, match)
	assert.ErrorContains(t, err, "parse gemini response")
}

func TestParseResponseClampsConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
	}{
		{raw: `{"confidence": 1.7}`, want: 1},
		{raw: `{"confidence": -3}`, want: 0},
		{raw: `{"confidence": "high"}`, want: 0},
		{raw: `{}`, want: 0},
	}

	for _, tt := range tests {
		advice, err := parseResponse(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, advice.Confidence, tt.raw)
		assert.Empty(t, advice.Strengths)
	}
}

func TestAdvisorLogsPreviews(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	stub := &stubGenerator{response: `{"summary": "` + strings.Repeat("x", 100) + `"}`}
	p, match := fixtures()

	_, err := NewAdvisor(stub, zap.New(core), 10).Advise(context.Background(), p, match)
	require.NoError(t, err)

	entries := observed.FilterMessage("gemini generate content response").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "job_1", entries[0].ContextMap()["job_id"])
	assert.Equal(t, `{"summary"...`, entries[0].ContextMap()["response_preview"])
}

func TestResponseText(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: &genai.Content{Parts: []*genai.Part{{Text: " first "}, nil, {Text: ""}}}},
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "second"}}}},
		},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", text)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = responseText(nil)
	assert.Error(t, err)
}

func TestGeneratorGuards(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), "  ", "")
	assert.Error(t, err)

	var g *Generator
	_, err = g.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
	assert.Empty(t, g.Model())
}
