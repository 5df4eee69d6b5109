package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	// Locale drives ambiguous slash-date resolution during extraction
	// (month-first for US-style locales, day-first otherwise).
	Locale string `mapstructure:"locale" yaml:"locale"`

	Data struct {
		// File is the YAML subscriptions store path.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Reminders struct {
		// LeadDays is the window used by upcoming-renewal projections.
		LeadDays int `mapstructure:"lead_days" yaml:"lead_days"`
	} `mapstructure:"reminders" yaml:"reminders"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SUBSCAN_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.subscan")
	v.AddConfigPath(".subscan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SUBSCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not stop the CLI; defaults and env
			// variables still apply.
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the unprefixed env variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// GetConfig returns the lazily-initialized global configuration.
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := InitializeConfig()
		if err != nil {
			Logger.WithError(err).Warn("Failed to initialize configuration, using defaults")
			cfg = defaultConfig()
		}
		globalConfig = cfg
	})
	return globalConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("locale", "en_US")
	v.SetDefault("data.file", "subscriptions.yaml")
	v.SetDefault("reminders.lead_days", 7)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
}

func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
