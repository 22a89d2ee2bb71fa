package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/filtering"
	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/jobsource"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score and rank job listings against a profile",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("profile", "p", "", "profile document (yaml or json)")
	matchCmd.Flags().String("jobs", "", "listings file to score instead of the configured job source")
	matchCmd.Flags().BoolP("do-not-exclude-applied", "f", false, "do not exclude jobs from the application history")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	e := setup(cmd)

	doc := e.loadProfile(requiredFlag(cmd, "profile"))
	prefs, err := e.checkedPreferences()
	if err != nil {
		e.fatal("validating preferences", err)
	}

	var source jobsource.Source
	closeSource := func() {}
	if path, _ := cmd.Flags().GetString("jobs"); path != "" {
		source = jobsource.NewFile(path)
	} else {
		source, closeSource, err = newSource(e.config, e.logger)
		if err != nil {
			e.fatal("opening job source", err)
		}
	}
	defer closeSource()

	available, err := source.FetchCandidateJobs(ctx, &doc.Profile)
	if err != nil {
		e.fatal("fetching jobs", err)
	}
	if err := e.validator.Listings("match", available); err != nil {
		e.fatal("validating jobs", err)
	}

	listings, err := filtering.Run(ctx, filterConfig(e.config),
		filtering.Deps{Logger: e.logger, History: doc.History},
		filterSteps(cmd, e.logger), jobs.NewListings(available),
	)
	if err != nil {
		e.fatal("filtering jobs", apperr.New(apperr.InputValidation, "match", err))
	}

	results := matching.NewScorer(e.vocab, e.logger).RankJobs(&doc.Profile, listings.Values(), prefs)

	e.logger.Info("ranked jobs",
		zap.String("source", source.Name()),
		zap.Int("fetched", len(available)),
		zap.Int("matched", len(results)),
	)

	e.print(cmd, results)
}

// loadProfile reads and validates a profile document. Failures are fatal.
func (e *env) loadProfile(path string) *profile.Document {
	doc, err := profile.Load(path)
	if err != nil {
		e.fatal("loading profile", apperr.New(apperr.InputValidation, "load profile", err))
	}
	if err := e.validator.Struct("load profile", &doc.Profile); err != nil {
		e.fatal("validating profile", err)
	}

	e.logger.Debug("loaded profile",
		zap.String("user_id", doc.Profile.UserID),
		zap.Int("skills", len(doc.Profile.Skills)),
		zap.Int("history", len(doc.History)),
	)

	return doc
}
