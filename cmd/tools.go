package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/ats"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/recommend"
	"github.com/spigell/careerbuddy/internal/skills"
	"github.com/spigell/careerbuddy/internal/textsim"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Compare resume keywords against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup(cmd)

		resumeText := e.readText(requiredFlag(cmd, "resume"))
		description := e.readText(requiredFlag(cmd, "job"))

		e.print(cmd, ats.NewAnalyzer(e.vocab, e.logger).OptimizeKeywords(resumeText, description))
	},
}

var similarityCmd = &cobra.Command{
	Use:   "similarity A B",
	Short: "TF-IDF cosine similarity of two job descriptions",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		e := setup(cmd)

		a, b := args[0], args[1]
		if literal, _ := cmd.Flags().GetBool("text"); !literal {
			a, b = e.readText(a), e.readText(b)
		}

		e.print(cmd, map[string]float64{
			"similarity": textsim.New(e.vocab).JobSimilarity(a, b),
		})
	},
}

var skillsGapCmd = &cobra.Command{
	Use:   "skills-gap",
	Short: "Show which required skills are missing and how to close the gap",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup(cmd)

		userSkills, _ := cmd.Flags().GetStringSlice("skills")
		requirements, _ := cmd.Flags().GetStringSlice("requirements")

		e.print(cmd, skills.NewMatcher(e.vocab).AnalyzeGap(userSkills, requirements))
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show market trends for an industry and location",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup(cmd)

		industry, _ := cmd.Flags().GetString("industry")
		location, _ := cmd.Flags().GetString("location")

		engine := recommend.NewEngine(nil, nil, e.vocab, e.logger)
		e.print(cmd, engine.MarketTrends(industry, location))
	},
}

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Predict how well a profile fits a described position",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup(cmd)

		doc := e.loadProfile(requiredFlag(cmd, "profile"))
		description, _ := cmd.Flags().GetString("description")
		requirements, _ := cmd.Flags().GetStringSlice("requirements")

		engine := recommend.NewEngine(nil, matching.NewScorer(e.vocab, e.logger), e.vocab, e.logger)
		e.print(cmd, engine.PredictFit(&doc.Profile, description, requirements))
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd, similarityCmd, skillsGapCmd, trendsCmd, fitCmd)

	keywordsCmd.Flags().String("resume", "", "resume text file")
	keywordsCmd.Flags().String("job", "", "job description text file")

	similarityCmd.Flags().Bool("text", false, "treat arguments as literal text instead of file paths")

	skillsGapCmd.Flags().StringSlice("skills", nil, "skills the user has")
	skillsGapCmd.Flags().StringSlice("requirements", nil, "skills the job requires")

	trendsCmd.Flags().String("industry", "", "industry to narrow trending skills to")
	trendsCmd.Flags().String("location", "", "location to report insights for")

	fitCmd.Flags().StringP("profile", "p", "", "profile document (yaml or json)")
	fitCmd.Flags().String("description", "", "job description")
	fitCmd.Flags().StringSlice("requirements", nil, "required skills")
}

// readText reads a plain text input. Failures are fatal.
func (e *env) readText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		e.fatal("reading input", apperr.New(apperr.InputValidation, "read text", err))
	}

	e.logger.Debug("read input", zap.String("path", path), zap.Int("bytes", len(data)))

	return strings.TrimSpace(string(data))
}
