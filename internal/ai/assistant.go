// Package ai describes optional narrative advice produced by a language model
// on top of the deterministic match scores.
package ai

import (
	"context"

	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
)

// Advice is a model's reading of one match. It never changes the match score.
// Confidence is the model's own 0-1 estimate of fit.
type Advice struct {
	JobID      string   `json:"job_id"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	NextSteps  []string `json:"next_steps"`
	Confidence float64  `json:"confidence"`
	Raw        string   `json:"-"`
}

type Advisor interface {
	Advise(ctx context.Context, p *profile.UserProfile, match *matching.Result) (*Advice, error)
}
