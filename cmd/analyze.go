package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/ats"
	"github.com/spigell/careerbuddy/internal/feedback"
	"github.com/spigell/careerbuddy/internal/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Parse resumes, score ATS compatibility and generate feedback",
	Long: `Parse resumes, score ATS compatibility and generate feedback.

PDF, DOCX and TXT files are extracted and parsed. YAML and JSON files are
read as already parsed resumes.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// Analysis is the review of one resume file.
type Analysis struct {
	File         string             `json:"file"`
	Parsed       *resume.ParsedData `json:"parsed_data"`
	ATS          ats.Score          `json:"ats_score"`
	Feedback     []feedback.Item    `json:"feedback"`
	OverallScore int                `json:"overall_score"`
}

func analyze(cmd *cobra.Command, files []string) {
	e := setup(cmd)

	rv := &reviewer{
		parser:   resume.NewParser(e.vocab),
		analyzer: ats.NewAnalyzer(e.vocab, e.logger),
		feedback: feedback.NewGenerator(e.vocab, e.logger),
		logger:   e.logger,
	}

	results := make([]Analysis, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency(e.config))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			analysis, err := rv.review(file)
			if err != nil {
				return err
			}
			results[i] = *analysis
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.fatal("analyzing resumes", err)
	}

	e.print(cmd, results)
}

type reviewer struct {
	parser   *resume.Parser
	analyzer *ats.Analyzer
	feedback *feedback.Generator
	logger   *zap.Logger
}

func (r *reviewer) review(file string) (*Analysis, error) {
	parsed, err := r.load(file)
	if err != nil {
		return nil, err
	}

	score := r.analyzer.Compute(parsed)
	items := r.feedback.Generate(parsed, score)
	overall := feedback.OverallScore(score, items)

	r.logger.Info("analyzed resume",
		zap.String("file", file),
		zap.Int("ats_score", score.Overall),
		zap.Int("feedback_items", len(items)),
		zap.Int("overall_score", overall),
	)

	return &Analysis{
		File:         file,
		Parsed:       parsed,
		ATS:          score,
		Feedback:     items,
		OverallScore: overall,
	}, nil
}

// load returns the parsed resume in file. An unreadable PDF or DOCX is
// reviewed as an empty resume.
func (r *reviewer) load(file string) (*resume.ParsedData, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml", ".json":
		parsed, err := resume.LoadParsed(file)
		if err != nil {
			return nil, apperr.New(apperr.InputValidation, "load resume", err)
		}
		return parsed, nil
	}

	if !resume.SupportedExtension(file) {
		return nil, apperr.New(apperr.InputValidation, "load resume", fmt.Errorf("%s: %w", file, resume.ErrUnsupportedFormat))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, apperr.New(apperr.InputValidation, "load resume", err)
	}

	text, err := resume.ExtractText(data, filepath.Base(file))
	if err != nil {
		if !apperr.Is(err, apperr.Upstream) {
			return nil, err
		}
		r.logger.Warn("text extraction failed, reviewing an empty resume",
			zap.String("file", file),
			zap.Error(err),
		)
		text = ""
	}

	parsed := r.parser.Parse(text)
	return &parsed, nil
}
