package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	Trivia           Trivia   `mapstructure:"trivia"`   // question source section
	Sessions         Sessions `mapstructure:"sessions"` // in-memory quiz sessions section
}

// Trivia contains question source parameters.
type Trivia struct {
	BaseURL        string        `mapstructure:"base_url"`        // OpenTDB compatible endpoint
	BooleanAmount  int           `mapstructure:"boolean_amount"`  // true/false questions per quiz
	MultipleAmount int           `mapstructure:"multiple_amount"` // multiple choice questions per quiz
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`   // upper bound for fetching one quiz
}

// Sessions contains parameters of the bot's session storage.
type Sessions struct {
	TTL           time.Duration `mapstructure:"ttl"`            // idle time after which a session is dropped
	SweepInterval time.Duration `mapstructure:"sweep_interval"` // how often idle sessions are looked for
}

// TelegramToken returns the Telegram API token if it is configured.
func (c *Config) TelegramToken() (string, error) {
	if c.TelegramAPIToken == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return c.TelegramAPIToken, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("trivia.base_url", "https://opentdb.com/api.php")
	v.SetDefault("trivia.boolean_amount", 5)
	v.SetDefault("trivia.multiple_amount", 5)
	v.SetDefault("trivia.fetch_timeout", "10s")
	v.SetDefault("sessions.ttl", "1h")
	v.SetDefault("sessions.sweep_interval", "10m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Trivia.BooleanAmount < 1 || c.Trivia.MultipleAmount < 1:
		return fmt.Errorf("%w: trivia amounts must be positive", ErrInvalidConfig)
	case c.Trivia.FetchTimeout <= 0:
		return fmt.Errorf("%w: trivia.fetch_timeout must be positive", ErrInvalidConfig)
	case c.Sessions.TTL <= 0 || c.Sessions.SweepInterval <= 0:
		return fmt.Errorf("%w: session durations must be positive", ErrInvalidConfig)
	}
	return nil
}
