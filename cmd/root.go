package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerbuddy/internal/logger"
	"github.com/spigell/careerbuddy/internal/matching"
	"github.com/spigell/careerbuddy/internal/validation"
	"github.com/spigell/careerbuddy/internal/vocab"
)

const (
	app       = "careerbuddy"
	envPrefix = "CAREERBUDDY"
)

type Config struct {
	Matching    *MatchingConfig  `mapstructure:"matching"`
	Recommend   *RecommendConfig `mapstructure:"recommend"`
	Jobs        *JobsConfig      `mapstructure:"jobs"`
	Exclude     *ExcludeConfig   `mapstructure:"exclude"`
	ExcludeFile string           `mapstructure:"exclude-file"`
	Concurrency int              `mapstructure:"concurrency"`
	AI          *AIConfig        `mapstructure:"ai"`
}

type MatchingConfig struct {
	Weights       *WeightsConfig `mapstructure:"weights"`
	MinMatchScore float64        `mapstructure:"min-match-score"`
}

type WeightsConfig struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Location   float64 `mapstructure:"location"`
	Salary     float64 `mapstructure:"salary"`
	Industry   float64 `mapstructure:"industry"`
}

type RecommendConfig struct {
	Limit int `mapstructure:"limit"`
}

type JobsConfig struct {
	Source string      `mapstructure:"source"`
	File   string      `mapstructure:"file"`
	SQLite string      `mapstructure:"sqlite"`
	HTTP   *HTTPConfig `mapstructure:"http"`
}

type HTTPConfig struct {
	URL       string `mapstructure:"url"`
	UserAgent string `mapstructure:"user-agent"`
	PerPage   int    `mapstructure:"per-page"`
}

type ExcludeConfig struct {
	Companies       []string `mapstructure:"companies"`
	EmploymentTypes []string `mapstructure:"employment-types"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerbuddy matches job listings to a profile and reviews resumes for ATS compatibility",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerbuddy.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("matching.weights.skills", matching.DefaultWeightSkills)
	v.SetDefault("matching.weights.experience", matching.DefaultWeightExperience)
	v.SetDefault("matching.weights.location", matching.DefaultWeightLocation)
	v.SetDefault("matching.weights.salary", matching.DefaultWeightSalary)
	v.SetDefault("matching.weights.industry", matching.DefaultWeightIndustry)
	v.SetDefault("matching.min-match-score", matching.DefaultMinMatchScore)
	v.SetDefault("recommend.limit", 10)
	v.SetDefault("jobs.source", "static")
	v.SetDefault("jobs.file", "jobs.yaml")
	v.SetDefault("jobs.sqlite", "careerbuddy.db")
	v.SetDefault("jobs.http.url", "")
	v.SetDefault("jobs.http.user-agent", "")
	v.SetDefault("jobs.http.per-page", 50)
	v.SetDefault("exclude.companies", []string{})
	v.SetDefault("exclude.employment-types", []string{})
	v.SetDefault("exclude-file", "")
	v.SetDefault("concurrency", 4)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "")
	v.SetDefault("ai.gemini.max-log-length", 200)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// preferences builds match preferences from the config.
func (c *Config) preferences() matching.Preferences {
	prefs := matching.DefaultPreferences()
	if c.Matching == nil {
		return prefs
	}

	if w := c.Matching.Weights; w != nil {
		prefs.WeightSkills = w.Skills
		prefs.WeightExperience = w.Experience
		prefs.WeightLocation = w.Location
		prefs.WeightSalary = w.Salary
		prefs.WeightIndustry = w.Industry
	}
	prefs.MinMatchScore = c.Matching.MinMatchScore

	return prefs
}

// env is what every command needs: config, a run-scoped logger and the
// shared tables.
type env struct {
	config    *Config
	logger    *zap.Logger
	runID     string
	vocab     vocab.Vocabulary
	validator *validation.Validator
}

// setup is called at the start of every command. Failures are fatal.
func setup(cmd *cobra.Command) *env {
	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	runID := uuid.NewString()
	l := logger.WithRun(base, runID, cmd.Name())

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	v := vocab.Default()
	l.Debug("starting", zap.String("version", version), zap.String("vocabulary", v.Version()))

	return &env{
		config:    config,
		logger:    l,
		runID:     runID,
		vocab:     v,
		validator: validation.New(),
	}
}

// checkedPreferences validates the configured preferences and warns when the
// weights do not add up to one.
func (e *env) checkedPreferences() (matching.Preferences, error) {
	prefs := e.config.preferences()
	if err := e.validator.Struct("preferences", &prefs); err != nil {
		return prefs, err
	}

	if sum := prefs.WeightSum(); sum < 0.999 || sum > 1.001 {
		e.logger.Warn("match weights do not sum to 1.0, scores are not normalized",
			zap.Float64("weight_sum", sum),
		)
	}

	return prefs, nil
}

func (e *env) fatal(msg string, err error) {
	e.logger.Fatal(msg, zap.Error(err))
}

func requiredFlag(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(value) == "" {
		log.Fatalf("flag --%s is required", name)
	}
	return value
}

func concurrency(c *Config) int {
	if c.Concurrency <= 0 {
		return 1
	}
	return c.Concurrency
}
