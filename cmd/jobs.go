package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/jobsource"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the local job store",
}

var jobsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Validate listings from a yaml or json file and save them to the sqlite store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		importJobs(cmd, args[0])
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the listings of the configured job source grouped by company",
	Run: func(cmd *cobra.Command, _ []string) {
		listJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsImportCmd, jobsListCmd)

	jobsImportCmd.Flags().String("db", "", "sqlite database (default is jobs.sqlite from config)")
}

func importJobs(cmd *cobra.Command, file string) {
	ctx := context.Background()
	e := setup(cmd)

	listings, err := jobsource.LoadListings(file)
	if err != nil {
		e.fatal("loading listings", err)
	}
	if err := e.validator.Listings("import jobs", listings); err != nil {
		e.fatal("validating listings", err)
	}

	db, _ := cmd.Flags().GetString("db")
	if db == "" && e.config.Jobs != nil {
		db = e.config.Jobs.SQLite
	}

	store, err := jobsource.OpenSQLite(db, e.logger)
	if err != nil {
		e.fatal("opening job store", err)
	}
	defer store.Close()

	saved, err := store.Save(ctx, listings)
	if err != nil {
		e.fatal("saving listings", err)
	}

	e.logger.Info("imported listings", zap.String("db", db), zap.Int("saved", saved))
	e.print(cmd, map[string]any{"db": db, "saved": saved})
}

func listJobs(cmd *cobra.Command) {
	ctx := context.Background()
	e := setup(cmd)

	source, closeSource, err := newSource(e.config, e.logger)
	if err != nil {
		e.fatal("opening job source", err)
	}
	defer closeSource()

	listings, err := source.FetchCandidateJobs(ctx, nil)
	if err != nil {
		e.fatal("fetching jobs", err)
	}

	e.print(cmd, jobs.NewListings(listings).ReportByCompany())
}
