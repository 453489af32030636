package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "advisor"
)

type Config struct {
	Data    *DataConfig    `mapstructure:"data"`
	Advisor *AdvisorConfig `mapstructure:"advisor"`
	AI      *AIConfig      `mapstructure:"ai"`
}

// DataConfig points at the reference-data CSV files. Every path is
// optional: the built-in questionnaire and an empty programme table are
// used for whatever is missing.
type DataConfig struct {
	ProgrammesFile   string        `mapstructure:"programmes-file"`
	QuestionsFile    string        `mapstructure:"questions-file"`
	DescriptionsFile string        `mapstructure:"descriptions-file"`
	CacheTTL         time.Duration `mapstructure:"cache-ttl"`
}

type AdvisorConfig struct {
	// Scheme selects the profiling strategy: riasec (default) or workmode.
	Scheme string `mapstructure:"scheme"`
	// IncludeText enables the open "about yourself" question and its
	// keyword contribution in the workmode scheme.
	IncludeText bool `mapstructure:"include-text"`
	// Blend adds the interest-tag and study-style signals to the
	// workmode matcher.
	Blend bool `mapstructure:"blend"`
	// TopN overrides the scheme's default ranking size when positive.
	TopN int `mapstructure:"top-n"`
}

type AIConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Provider     string        `mapstructure:"provider"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxLogLength int           `mapstructure:"max-log-length"`
	Gemini       *GeminiConfig `mapstructure:"gemini"`
	OpenAI       *OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	BaseURL    string `mapstructure:"base-url"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "advisor is an interactive cli that matches a student's interest profile to university programmes",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.openai.api-key-file", "OPENAI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding OPENAI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The built-in questionnaire makes the config file itself optional,
	// but a present-and-broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Data == nil {
		config.Data = &DataConfig{}
	}
	if config.Advisor == nil {
		config.Advisor = &AdvisorConfig{}
	}

	return config, nil
}
