package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/ai"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/utils"
)

// Provider is the name reported in logs.
const Provider = "gemini"

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Advisor asks Gemini to narrate a match result.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewAdvisor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		logger:    logger.OrNop(log),
		maxLogLen: maxLogLength,
	}
}

// matchPayload is the part of a match the model is allowed to see.
type matchPayload struct {
	JobID          string            `json:"job_id"`
	Title          string            `json:"title"`
	Company        string            `json:"company"`
	Description    string            `json:"description"`
	Score          float64           `json:"match_score"`
	Strength       matching.Strength `json:"recommendation_strength"`
	Reasons        []matching.Reason `json:"match_reasons"`
	MatchingSkills []string          `json:"matching_skills"`
	MissingSkills  []string          `json:"missing_skills"`
}

func (a *Advisor) Advise(ctx context.Context, p *profile.UserProfile, match *matching.Result) (*ai.Advice, error) {
	if p == nil {
		return nil, errors.New("profile is required")
	}
	if match == nil {
		return nil, errors.New("match is required")
	}

	profileJSON, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	matchJSON, err := json.MarshalIndent(matchPayload{
		JobID:          match.Job.ID,
		Title:          match.Job.Title,
		Company:        match.Job.Company,
		Description:    match.Job.Description,
		Score:          utils.Round(match.Score, 2),
		Strength:       match.Strength,
		Reasons:        match.Reasons,
		MatchingSkills: match.MatchingSkills,
		MissingSkills:  match.MissingSkills,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal match payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(matchJSON))

	a.logger.Debug("gemini generate content request",
		zap.String(logger.FieldJobID, match.Job.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.String(logger.FieldJobID, match.Job.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	advice.JobID = match.Job.ID
	advice.Raw = raw
	return advice, nil
}

func buildPrompt(profileJSON, matchJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nMatch:\n{{MATCH_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{MATCH_JSON}}", matchJSON)
	return prompt
}

func parseResponse(raw string) (*ai.Advice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	confidence := coerceFloat(data["confidence"])
	if math.IsNaN(confidence) {
		confidence = 0
	}

	return &ai.Advice{
		Summary:    coerceString(data["summary"]),
		Strengths:  coerceStrings(data["strengths"]),
		Gaps:       coerceStrings(data["gaps"]),
		NextSteps:  coerceStrings(data["next_steps"]),
		Confidence: math.Max(0, math.Min(1, confidence)),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// coerceStrings accepts a list or a single string and drops empty entries.
func coerceStrings(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	}
	return out
}
