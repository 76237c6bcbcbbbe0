package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string  `mapstructure:"PORT"`
	GinMode                          string  `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string  `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string  `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string  `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string  `mapstructure:"CLIENT_URL"`
	MistralAPIKey                    string  `mapstructure:"MISTRAL_API_KEY"`
	MistralModel                     string  `mapstructure:"MISTRAL_MODEL"`
	OverBudgetThreshold              float64 `mapstructure:"OVER_BUDGET_THRESHOLD"`
}

var appConfig *Config

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MISTRAL_MODEL", "mistral-medium")
	// Advisory per-contributor shared-cart limit, in rupees. The legacy
	// store-driven UI used 1000; the session API path settled on 2000.
	viper.SetDefault("OVER_BUDGET_THRESHOLD", 2000.0)

	// Bind environment variables
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("MISTRAL_API_KEY")
	viper.BindEnv("MISTRAL_MODEL")
	viper.BindEnv("OVER_BUDGET_THRESHOLD")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.OverBudgetThreshold < 0 {
		return nil, errors.New("OVER_BUDGET_THRESHOLD must be non-negative")
	}
	// MISTRAL_API_KEY is optional: the recipe endpoint reports itself
	// unavailable without it rather than blocking startup.

	appConfig = &cfg
	return appConfig, nil
}

// GetConfig returns the loaded application configuration. It panics if
// LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
