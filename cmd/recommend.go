package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/careerbuddy/internal/ai"
	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/profile"
	"github.com/spigell/careerbuddy/internal/recommend"
)

const (
	PromptPrintReport         = "Print report"
	PromptReportByCompany     = "Report by companies"
	PromptJobsToFile          = "Dump jobs to file"
	PromptAppendToExcludeFile = "Append all jobs to exclude file"
	PromptExplain             = "Explain a job"
	PromptExit                = "Exit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs for a profile with insights and career advice",
	Run: func(cmd *cobra.Command, _ []string) {
		recommendJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("profile", "p", "", "profile document (yaml or json)")
	recommendCmd.Flags().IntP("limit", "l", 0, "maximum number of recommendations (default from config)")
	recommendCmd.Flags().BoolP("interactive", "i", false, "browse recommendations in an interactive menu")
	recommendCmd.Flags().Bool("explain", false, "ask the ai advisor to explain every recommendation")
	recommendCmd.Flags().BoolP("do-not-exclude-applied", "f", false, "do not exclude jobs from the application history")
	recommendCmd.Flags().StringP("exclude-file", "e", "", "file with jobs to exclude. Default is unset.")

	viper.BindPFlag("recommend.limit", recommendCmd.Flags().Lookup("limit"))
	viper.BindPFlag("exclude-file", recommendCmd.Flags().Lookup("exclude-file"))
}

// recommendReport is the recommend output with optional advice per job.
type recommendReport struct {
	*recommend.Recommendation
	Advice []*ai.Advice `json:"advice,omitempty"`
}

func recommendJobs(cmd *cobra.Command) {
	ctx := context.Background()
	e := setup(cmd)

	doc := e.loadProfile(requiredFlag(cmd, "profile"))
	prefs, err := e.checkedPreferences()
	if err != nil {
		e.fatal("validating preferences", err)
	}

	source, closeSource, err := newSource(e.config, e.logger)
	if err != nil {
		e.fatal("opening job source", err)
	}
	defer closeSource()

	advisor, err := newAdvisor(ctx, e.config, e.logger)
	if err != nil {
		e.fatal("creating ai advisor", err)
	}

	engine := recommend.NewEngine(source, matching.NewScorer(e.vocab, e.logger), e.vocab, e.logger,
		recommend.WithFilters(filterConfig(e.config), filterSteps(cmd, e.logger)...),
	)

	limit := 0
	if e.config.Recommend != nil {
		limit = e.config.Recommend.Limit
	}

	result, err := engine.Recommend(ctx, &doc.Profile, doc.History, prefs, limit)
	if err != nil {
		e.fatal("recommending jobs", err)
	}

	out := &recommendReport{Recommendation: result}

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		if advisor == nil {
			e.logger.Warn("explain requested but ai is disabled", zap.String("hint", "set ai.enabled to true"))
		} else {
			out.Advice, err = adviseAll(ctx, advisor, &doc.Profile, result.Recommendations, concurrency(e.config))
			if err != nil {
				e.fatal("explaining recommendations", err)
			}
		}
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
		e.print(cmd, out)
		return
	}

	m := &menu{env: e, cmd: cmd, profile: &doc.Profile, advisor: advisor, report: out}
	if err := m.loop(); err != nil && !errors.Is(err, errExit) {
		e.fatal("exiting", err)
	}
}

// adviseAll asks the advisor about every match, keeping the input order.
func adviseAll(ctx context.Context, advisor ai.Advisor, p *profile.UserProfile, matches []matching.Result, limit int) ([]*ai.Advice, error) {
	advice := make([]*ai.Advice, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range matches {
		g.Go(func() error {
			a, err := advisor.Advise(gctx, p, &matches[i])
			if err != nil {
				return fmt.Errorf("advising on job %s: %w", matches[i].Job.ID, err)
			}
			advice[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return advice, nil
}

type menu struct {
	env     *env
	cmd     *cobra.Command
	profile *profile.UserProfile
	advisor ai.Advisor
	report  *recommendReport
}

func (m *menu) listings() *jobs.Listings {
	items := make([]jobs.Listing, 0, len(m.report.Recommendations))
	for _, r := range m.report.Recommendations {
		items = append(items, r.Job)
	}
	return jobs.NewListings(items)
}

func (m *menu) loop() error {
	for {
		items := []string{PromptPrintReport, PromptReportByCompany, PromptJobsToFile}
		if m.env.config.ExcludeFile != "" && len(m.report.Recommendations) != 0 {
			items = append(items, PromptAppendToExcludeFile)
		}
		items = append(items, PromptExplain, PromptExit)

		prompt := promptui.Select{
			Label: "Proceed?",
			Items: items,
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		m.env.logger.Info("current list of recommendations", zap.Int("count", len(m.report.Recommendations)))

		if err := m.handleAction(action); err != nil {
			return err
		}
	}
}

func (m *menu) handleAction(action string) error {
	logger := m.env.logger

	switch action {
	case PromptPrintReport:
		m.env.print(m.cmd, m.report)
		return nil
	case PromptReportByCompany:
		listings := m.listings()
		pretty, _ := json.MarshalIndent(listings.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", listings.Len()))
		return nil
	case PromptJobsToFile:
		filename, err := m.listings().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return m.appendToExcludeFile()
	case PromptExplain:
		return m.explain()
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (m *menu) appendToExcludeFile() error {
	excludeFile := m.env.config.ExcludeFile

	excluded, err := jobs.ExcludedFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(m.listings().ToExcluded())

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	m.env.logger.Info("appended to exclude file", zap.String("filename", excludeFile))
	m.report.Recommendations = nil
	m.report.Advice = nil

	return nil
}

func (m *menu) explain() error {
	for {
		items := make([]string, 0, len(m.report.Recommendations)+1)
		for _, r := range m.report.Recommendations {
			items = append(items, fmt.Sprintf("%s %s / %s / %d%%",
				r.Job.ID, r.Job.Title, r.Job.Company, r.Percentage,
			))
		}

		jobPrompt := promptui.Select{
			Label: "Choose a job and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := jobPrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptBack {
			return nil
		}

		jobID := strings.Split(selected, " ")[0]
		match := m.find(jobID)
		if match == nil {
			return fmt.Errorf("there is no such job id %s", jobID)
		}

		if m.advisor == nil {
			m.env.print(m.cmd, recommend.ImprovementSuggestions(match))
			continue
		}

		advice, err := m.advisor.Advise(context.Background(), m.profile, match)
		if err != nil {
			return err
		}
		m.env.print(m.cmd, advice)
	}
}

func (m *menu) find(id string) *matching.Result {
	for i := range m.report.Recommendations {
		if m.report.Recommendations[i].Job.ID == id {
			return &m.report.Recommendations[i]
		}
	}
	return nil
}
