// Package recommend turns ranked matches into recommendations with insights,
// market context and career advice.
package recommend

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/filtering"
	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/jobsource"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/vocab"
)

// fallbackCandidates is how many listings are kept when none look relevant.
const fallbackCandidates = 3

// Recommendation is the full answer to a recommend request.
type Recommendation struct {
	Recommendations   []matching.Result `json:"recommendations"`
	Insights          Insights          `json:"insights"`
	MarketAnalysis    MarketAnalysis    `json:"market_analysis"`
	CareerSuggestions []string          `json:"career_suggestions"`
}

// Engine ranks candidate listings from a source. It is safe for concurrent
// use as long as its source is.
type Engine struct {
	source  jobsource.Source
	scorer  *matching.Scorer
	vocab   vocab.Vocabulary
	logger  *zap.Logger
	filters []filtering.Filter
	config  *filtering.Config
}

// Option customises an Engine.
type Option func(*Engine)

// WithFilters replaces the default pre-scoring pipeline, which only drops
// listings from the application history.
func WithFilters(cfg *filtering.Config, steps ...filtering.Filter) Option {
	return func(e *Engine) {
		e.config = cfg
		e.filters = steps
	}
}

func NewEngine(source jobsource.Source, scorer *matching.Scorer, v vocab.Vocabulary, log *zap.Logger, opts ...Option) *Engine {
	if v == nil {
		v = vocab.Default()
	}
	log = logger.OrNop(log)
	if scorer == nil {
		scorer = matching.NewScorer(v, log)
	}

	e := &Engine{
		source:  source,
		scorer:  scorer,
		vocab:   v,
		logger:  log,
		filters: []filtering.Filter{filtering.NewAppliedHistory()},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend fetches candidates, ranks the relevant ones and decorates the
// top results. history lists ids of listings the user already applied to.
// A limit of zero or less keeps every result.
func (e *Engine) Recommend(ctx context.Context, p *profile.UserProfile, history []string, prefs matching.Preferences, limit int) (*Recommendation, error) {
	const op = "recommend"

	if e.source == nil {
		return nil, apperr.Invalid(op, "job source is not configured")
	}

	available, err := e.source.FetchCandidateJobs(ctx, p)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, op, err)
	}

	listings, err := filtering.Run(ctx, e.config, filtering.Deps{Logger: e.logger, History: history}, e.filters, jobs.NewListings(available))
	if err != nil {
		return nil, apperr.New(apperr.InputValidation, op, err)
	}

	candidates := SelectRelevant(p, listings.Values())

	e.logger.Info("selected candidate jobs",
		zap.String("source", e.source.Name()),
		zap.Int("fetched", len(available)),
		zap.Int("candidates", len(candidates)),
	)

	matches := e.scorer.RankJobs(p, candidates, prefs)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return &Recommendation{
		Recommendations:   matches,
		Insights:          BuildInsights(matches),
		MarketAnalysis:    e.AnalyzeMarket(p),
		CareerSuggestions: CareerSuggestions(p),
	}, nil
}

// Relevance counts exact skill overlaps (+1 each) and target roles found in
// the title (+2 each).
func Relevance(p *profile.UserProfile, job *jobs.Listing) int {
	userSkills := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		userSkills[strings.ToLower(s)] = struct{}{}
	}

	score := 0
	for _, s := range job.SkillsRequired {
		if _, ok := userSkills[strings.ToLower(s)]; ok {
			score++
		}
	}

	title := strings.ToLower(job.Title)
	for _, role := range p.TargetRoles {
		if strings.Contains(title, strings.ToLower(role)) {
			score += 2
		}
	}

	return score
}

// SelectRelevant keeps listings with a positive relevance, falling back to
// the first few listings when nothing is relevant.
func SelectRelevant(p *profile.UserProfile, available []jobs.Listing) []jobs.Listing {
	relevant := make([]jobs.Listing, 0, len(available))
	for i := range available {
		if Relevance(p, &available[i]) > 0 {
			relevant = append(relevant, available[i])
		}
	}

	if len(relevant) > 0 {
		return relevant
	}

	if len(available) > fallbackCandidates {
		return available[:fallbackCandidates]
	}
	return available
}
