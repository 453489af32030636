package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/advisehq/advisor/internal/ai"
	"github.com/advisehq/advisor/internal/ai/gemini"
	"github.com/advisehq/advisor/internal/ai/openai"
	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/logger"
	"github.com/advisehq/advisor/internal/matching"
	"github.com/advisehq/advisor/internal/profile"
	"github.com/advisehq/advisor/internal/report"
	"github.com/advisehq/advisor/internal/secrets"
	"github.com/advisehq/advisor/internal/survey"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowResults = "Show results"
	PromptDumpToFile  = "Save results to file"
	PromptExit        = "Exit"

	schemeRIASEC   = "riasec"
	schemeWorkMode = "workmode"

	maxInterestTags  = 3
	defaultAITimeout = 30 * time.Second
)

var errExit = errors.New("exit requested")

var resultsPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowResults, PromptDumpToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive questionnaire and print programme matches",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("scheme", "s", "", "profiling scheme: riasec or workmode")

	viper.BindPFlag("advisor.scheme", runCmd.Flags().Lookup("scheme"))
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the advisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	scheme, err := resolveScheme(config.Advisor.Scheme)
	if err != nil {
		logger.Fatal("resolving profiling scheme", zap.Error(err))
	}

	cache := catalog.NewCache(config.Data.CacheTTL, referenceLoader(config.Data, scheme))

	set, err := cache.Get()
	if err != nil {
		logger.Fatal("loading reference data", zap.Error(err))
	}

	logger.Info("reference data loaded",
		zap.String("scheme", scheme.Name),
		zap.Int("programmes", set.Programmes.Len()),
		zap.Int("questions", len(set.Questions)),
	)

	collector := survey.NewCollector(logger)

	rep, freeText, err := runPass(config, scheme, set, collector, logger)
	if err != nil {
		logger.Fatal("scoring pass failed", zap.Error(err))
	}

	if config.AI != nil && config.AI.Enabled {
		explain(config.AI, rep, freeText, logger)
	}

	for {
		_, action, err := resultsPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, rep, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// runPass walks the questionnaire, scores the profile, and ranks the
// programme table. It returns the assembled report and the user's
// free-text answer for the optional explanation step.
func runPass(config *Config, scheme *profile.Scheme, set *catalog.Set, collector *survey.Collector, logger *zap.Logger) (*report.Report, string, error) {
	switch scheme {
	case profile.WorkModes():
		return runWorkModePass(config, scheme, set, collector, logger)
	default:
		return runRIASECPass(config, scheme, set, collector, logger)
	}
}

func runRIASECPass(config *Config, scheme *profile.Scheme, set *catalog.Set, collector *survey.Collector, logger *zap.Logger) (*report.Report, string, error) {
	questions := set.Questions
	if len(survey.LikertView(questions)) == 0 {
		questions = survey.DefaultInterestQuestions()
	}
	values := survey.DefaultValueQuestions()

	record, err := collector.Run(questions, values)
	if err != nil {
		return nil, "", fmt.Errorf("questionnaire: %w", err)
	}

	scorer := profile.NewAdditiveScorer(scheme, survey.LikertView(questions))

	responses := record.Responses()
	vector, err := scorer.Score(responses)
	if err != nil {
		return nil, "", fmt.Errorf("scoring profile: %w", err)
	}

	topValues := survey.TopValues(record, values, 3)

	matcher := matching.NewRankWeighted(scheme, topValues)
	ranking, err := matcher.Match(vector, set.Programmes, topN(config, matching.DefaultRankWeightedTopN))
	if err != nil {
		return nil, "", fmt.Errorf("matching programmes: %w", err)
	}

	logRanking(logger, matcher.Name(), ranking, true)

	rep := report.New(scheme, vector.Top(scheme, 3), 1, set.Descriptions, topValues, ranking)
	return rep, responses.FreeText, nil
}

func runWorkModePass(config *Config, scheme *profile.Scheme, set *catalog.Set, collector *survey.Collector, logger *zap.Logger) (*report.Report, string, error) {
	// CSV questions carry Likert dimension tags only; the weighted
	// scenario block always comes from the built-in set.
	questions := set.Questions
	if len(survey.ScenarioView(questions)) == 0 {
		questions = survey.DefaultScenarioQuestions()
	}
	if config.Advisor.IncludeText {
		questions = append(questions, survey.DefaultOpenQuestion())
	}

	record, err := collector.Run(questions, nil)
	if err != nil {
		return nil, "", fmt.Errorf("questionnaire: %w", err)
	}

	scorer := profile.NewWeightedScorer(scheme, survey.ScenarioView(questions), config.Advisor.IncludeText)

	responses := record.Responses()
	vector, err := scorer.Score(responses)
	if err != nil {
		return nil, "", fmt.Errorf("scoring profile: %w", err)
	}

	matcher, err := workModeMatcher(config, scheme, set, collector)
	if err != nil {
		return nil, "", err
	}

	ranking, err := matcher.Match(vector, set.Programmes, topN(config, matching.DefaultBlendTopN))
	if err != nil {
		return nil, "", fmt.Errorf("matching programmes: %w", err)
	}

	logRanking(logger, matcher.Name(), ranking, false)

	rep := report.New(scheme, vector.Top(scheme, 3), 100, set.Descriptions, nil, ranking)
	return rep, responses.FreeText, nil
}

// workModeMatcher builds the blended matcher, asking for the interest
// and study-style signals when blending is enabled and the programme
// table carries those tags.
func workModeMatcher(config *Config, scheme *profile.Scheme, set *catalog.Set, collector *survey.Collector) (matching.Matcher, error) {
	if !config.Advisor.Blend {
		return matching.NewBlend(scheme), nil
	}

	interestTags, err := collector.PickTags(
		fmt.Sprintf("Pick up to %d interest areas", maxInterestTags),
		collectTags(set.Programmes, func(p *catalog.Programme) []string { return p.InterestTags }),
		maxInterestTags,
	)
	if err != nil {
		return nil, fmt.Errorf("picking interest areas: %w", err)
	}

	studyStyle := ""
	if styles := collectTags(set.Programmes, func(p *catalog.Programme) []string { return p.StyleTags }); len(styles) > 0 {
		studyStyle, err = collector.PickOne("Preferred study style", styles)
		if err != nil {
			return nil, fmt.Errorf("picking study style: %w", err)
		}
	}

	return matching.NewBlendWithSignals(scheme, interestTags, studyStyle), nil
}

func handleAction(action string, rep *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowResults:
		fmt.Println(rep.Render())
		return nil
	case PromptDumpToFile:
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// explain asks the configured provider for a narrative and attaches it
// to the report. Every failure here is soft: the ranking stands on its
// own and the report stays valid without the annotation.
func explain(cfg *AIConfig, rep *report.Report, freeText string, logger *zap.Logger) {
	if rep == nil {
		return
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultAITimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	explainer, err := newExplainer(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping AI explanation", zap.Error(err))
		return
	}

	snapshot := ai.Snapshot{
		SchemeName: rep.SchemeName,
		Summary:    rep.ProfileSummary(),
		FreeText:   freeText,
	}

	text, err := explainer.Explain(ctx, snapshot, programmeBriefs(rep))
	if err != nil {
		logger.Warn("skipping AI explanation", zap.Error(err))
		return
	}

	rep.Explanation = text
}

func newExplainer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Explainer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", "gemini":
		if cfg.Gemini == nil {
			return nil, errors.New("gemini configuration is required when ai is enabled")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
		}

		generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}

		return gemini.NewExplainer(generator, logger, cfg.MaxLogLength), nil
	case "openai":
		if cfg.OpenAI == nil {
			return nil, errors.New("openai configuration is required for the openai provider")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "openai api key",
			File: cfg.OpenAI.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.openai.api-key-file or OPENAI_API_KEY_FILE)", err)
		}

		return openai.New(cfg.OpenAI.BaseURL, apiKey, cfg.OpenAI.Model, logger)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

func programmeBriefs(rep *report.Report) []ai.ProgrammeBrief {
	briefs := make([]ai.ProgrammeBrief, 0, rep.Ranking().Len())
	for _, result := range rep.Ranking().Results {
		briefs = append(briefs, ai.ProgrammeBrief{
			Name:        result.Programme.Name,
			Institution: result.Programme.Institution,
			Modes:       splitModes(result.Programme.ModeTags),
		})
	}
	return briefs
}

func splitModes(raw string) []string {
	var modes []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			modes = append(modes, tag)
		}
	}
	return modes
}

func logRanking(logger *zap.Logger, matcherName string, ranking *matching.Ranking, withQuality bool) {
	fields := []zap.Field{
		zap.String("matcher", matcherName),
		zap.Int("count", ranking.Len()),
	}
	if withQuality && ranking.Len() > 0 {
		best := ranking.Results[0]
		fields = append(fields,
			zap.String("top_match", best.Programme.Name),
			zap.String("quality", matching.Quality(best.Score)),
		)
	}
	logger.Info("programmes ranked", fields...)
}

func resolveScheme(name string) (*profile.Scheme, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "", schemeRIASEC:
		return profile.RIASEC(), nil
	case schemeWorkMode, "work-modes", "work_modes":
		return profile.WorkModes(), nil
	default:
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
}

// referenceLoader builds the catalog loader for the configured files.
// Missing paths fall back to the built-in questionnaire, descriptions,
// and an empty programme table.
func referenceLoader(cfg *DataConfig, scheme *profile.Scheme) catalog.Loader {
	return func() (*catalog.Set, error) {
		set := &catalog.Set{
			Programmes:   &catalog.Programmes{},
			Descriptions: catalog.DefaultDescriptions(scheme),
		}

		if cfg.ProgrammesFile != "" {
			programmes, err := catalog.LoadProgrammes(cfg.ProgrammesFile)
			if err != nil {
				return nil, fmt.Errorf("loading programmes: %w", err)
			}
			set.Programmes = programmes
		}

		if cfg.QuestionsFile != "" {
			questions, err := catalog.LoadQuestions(cfg.QuestionsFile, scheme)
			if err != nil {
				return nil, fmt.Errorf("loading questions: %w", err)
			}
			set.Questions = questions
		}

		if cfg.DescriptionsFile != "" {
			descriptions, err := catalog.LoadDescriptions(cfg.DescriptionsFile)
			if err != nil {
				return nil, fmt.Errorf("loading descriptions: %w", err)
			}
			set.Descriptions = descriptions
		}

		return set, nil
	}
}

func topN(config *Config, fallback int) int {
	if config.Advisor.TopN > 0 {
		return config.Advisor.TopN
	}
	return fallback
}

// collectTags returns the sorted union of the selected tag slice over
// the programme table.
func collectTags(programmes *catalog.Programmes, pick func(*catalog.Programme) []string) []string {
	seen := make(map[string]struct{})
	for _, p := range programmes.Items {
		for _, tag := range pick(p) {
			if tag = strings.TrimSpace(tag); tag != "" {
				seen[strings.ToLower(tag)] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
