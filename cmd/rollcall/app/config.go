package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Flag values take precedence and
// are applied after cobra parses them.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Pipeline configuration
	InputDir   string
	RosterPath string
	OutputPath string
	AuditPath  string

	// Matching thresholds. Zero means use the built-in default.
	NameSimilarity      float64
	FirstNameSimilarity float64
	LastNameSimilarity  float64

	// Logging configuration. LogLevel is only set by the --log-level
	// flag; envLogLevel carries LOG_LEVEL from the environment so the
	// flag precedence rules can tell the two apart.
	LogLevel    string
	LogFormat   string
	LogOutput   string
	envLogLevel string
}

// LoadConfig loads configuration from all sources in order of
// precedence: command-line flags (applied later by cobra), environment
// variables, .env files, the config file, then defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("ROLLCALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("input_dir", ".")
	v.SetDefault("output_path", "absence-summary-2568.xlsx")

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(".")
			v.SetConfigType("yaml")
			v.SetConfigName(".rollcall")
		}
	}

	// Config file is optional.
	_ = v.ReadInConfig()

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),

		ConfigFile: v.ConfigFileUsed(),

		InputDir:   v.GetString("input_dir"),
		RosterPath: v.GetString("roster_path"),
		OutputPath: v.GetString("output_path"),
		AuditPath:  v.GetString("audit_path"),

		NameSimilarity:      v.GetFloat64("match.name_similarity"),
		FirstNameSimilarity: v.GetFloat64("match.first_name_similarity"),
		LastNameSimilarity:  v.GetFloat64("match.last_name_similarity"),

		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
		envLogLevel: os.Getenv("LOG_LEVEL"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default
// if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
