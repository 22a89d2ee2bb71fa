package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/ai"
	"github.com/spigell/careerbuddy/internal/ai/gemini"
	"github.com/spigell/careerbuddy/internal/filtering"
	"github.com/spigell/careerbuddy/internal/jobsource"
	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// newSource opens the configured job source. The returned closer must be
// called when the source is no longer needed.
func newSource(c *Config, log *zap.Logger) (jobsource.Source, func(), error) {
	noop := func() {}

	if c.Jobs == nil {
		return jobsource.NewStatic(), noop, nil
	}

	switch c.Jobs.Source {
	case "", jobsource.KindStatic:
		return jobsource.NewStatic(), noop, nil
	case jobsource.KindFile:
		return jobsource.NewFile(c.Jobs.File), noop, nil
	case jobsource.KindSQLite:
		store, err := jobsource.OpenSQLite(c.Jobs.SQLite, log)
		if err != nil {
			return nil, noop, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn("closing job store", zap.Error(err))
			}
		}, nil
	case jobsource.KindHTTP:
		h := c.Jobs.HTTP
		if h == nil || h.URL == "" {
			return nil, noop, fmt.Errorf("jobs.http.url is required for the %s source", jobsource.KindHTTP)
		}
		return jobsource.NewHTTP(h.URL, h.UserAgent, h.PerPage, log), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown job source %q", c.Jobs.Source)
	}
}

// newAdvisor returns nil when AI advice is disabled.
func newAdvisor(ctx context.Context, c *Config, log *zap.Logger) (ai.Advisor, error) {
	if c.AI == nil || !c.AI.Enabled {
		return nil, nil
	}

	if c.AI.Provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider %q", c.AI.Provider)
	}

	settings := c.AI.Gemini
	if settings == nil {
		settings = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: settings.APIKeyFile,
		Env:  geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, settings.Model)
	if err != nil {
		return nil, err
	}

	aiLogger := logger.WithCommonFields(log, gemini.Provider, generator.Model())
	aiLogger.Info("ai advisor enabled")

	return gemini.NewAdvisor(generator, aiLogger, settings.MaxLogLength), nil
}

func filterConfig(c *Config) *filtering.Config {
	cfg := &filtering.Config{ExcludeFile: c.ExcludeFile}
	if c.Exclude != nil {
		cfg.Companies = c.Exclude.Companies
		cfg.EmploymentTypes = c.Exclude.EmploymentTypes
	}
	return cfg
}

// filterSteps returns the default pipeline, honouring --do-not-exclude-applied.
func filterSteps(cmd *cobra.Command, log *zap.Logger) []filtering.Filter {
	steps := filtering.Default()

	if keep, _ := cmd.Flags().GetBool("do-not-exclude-applied"); keep {
		filtering.DisableByName(steps, filtering.AppliedHistoryName, "disabled by --do-not-exclude-applied")
	}

	for _, status := range filtering.Describe(steps) {
		log.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}

	return steps
}
