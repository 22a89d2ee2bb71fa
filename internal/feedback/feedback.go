// Package feedback turns a parsed resume and its ATS score into prioritised
// improvement advice.
package feedback

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/ats"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/resume"
	"github.com/spigell/careerbuddy/internal/utils"
	"github.com/spigell/careerbuddy/internal/vocab"
)

type Category string

const (
	CategoryFormatting       Category = "formatting"
	CategoryContent          Category = "content"
	CategorySkills           Category = "skills"
	CategoryExperience       Category = "experience"
	CategoryEducation        Category = "education"
	CategoryKeywords         Category = "keywords"
	CategoryATSCompatibility Category = "ats_compatibility"
)

type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

// Rank orders severities for display, critical first.
func (s Severity) Rank() int {
	switch s {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// Item is one piece of advice. Impact is 0-10.
type Item struct {
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	Impact      int      `json:"impact_score"`
}

// Input is what a rule inspects.
type Input struct {
	Resume *resume.ParsedData
	Score  ats.Score
}

// Rule fires an Item when Check returns true. Description is a format string
// filled with the arguments Check returns.
type Rule struct {
	ID          string
	Category    Category
	Severity    Severity
	Title       string
	Description string
	Suggestion  string
	Impact      int
	Check       func(in *Input) (bool, []any)
}

func (r *Rule) item(args []any) Item {
	description := r.Description
	if len(args) > 0 {
		description = fmt.Sprintf(r.Description, args...)
	}
	return Item{
		Category:    r.Category,
		Severity:    r.Severity,
		Title:       r.Title,
		Description: description,
		Suggestion:  r.Suggestion,
		Impact:      r.Impact,
	}
}

// Generator evaluates a rule table. It is safe for concurrent use.
type Generator struct {
	rules  []Rule
	logger *zap.Logger
}

func NewGenerator(v vocab.Vocabulary, log *zap.Logger) *Generator {
	if v == nil {
		v = vocab.Default()
	}
	return &Generator{rules: Rules(v), logger: logger.OrNop(log)}
}

// Generate evaluates every rule and returns the fired items, critical first.
// Items of equal severity keep rule order.
func (g *Generator) Generate(parsed *resume.ParsedData, score ats.Score) []Item {
	if parsed == nil {
		parsed = &resume.ParsedData{}
	}
	in := &Input{Resume: parsed, Score: score}

	items := []Item{}
	for i := range g.rules {
		rule := &g.rules[i]
		fired, args := rule.Check(in)
		if !fired {
			continue
		}
		items = append(items, rule.item(args))
		g.logger.Debug("feedback rule fired", zap.String("rule", rule.ID))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Severity.Rank() < items[j].Severity.Rank()
	})

	return items
}

// OverallScore discounts the ATS score by the advice it produced.
func OverallScore(score ats.Score, items []Item) int {
	overall := score.Overall
	for _, item := range items {
		switch item.Severity {
		case Critical:
			overall -= 15
		case High:
			overall -= 10
		case Medium:
			overall -= 5
		}
	}
	return utils.ClampInt(overall, 0, 100)
}
