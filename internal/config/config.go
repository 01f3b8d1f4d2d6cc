package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Tracker TrackerConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimitRPS    float64 // per client, AI-backed routes only; <= 0 disables
	RateLimitBurst  int
}

// AIConfig selects and configures the remote text generation provider
type AIConfig struct {
	Provider   string // mock, gemini, openai or azure
	Model      string
	APIKey     string
	BaseURL    string // optional OpenAI-compatible base URL
	Endpoint   string // Azure OpenAI resource endpoint
	APIVersion string // Azure OpenAI API version
}

// TrackerConfig holds form acknowledgement settings
type TrackerConfig struct {
	AckDuration time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load reads configuration from an optional .env file, environment variables and defaults
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)
	v.SetDefault("server.ratelimitrps", 2.0)
	v.SetDefault("server.ratelimitburst", 5)

	// AI defaults
	v.SetDefault("ai.provider", "mock")
	v.SetDefault("ai.model", "gemini-3-flash-preview")
	v.SetDefault("ai.apiversion", "2024-08-01-preview")

	// Tracker defaults
	v.SetDefault("tracker.ackduration", 3*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")
	v.BindEnv("server.shutdowntimeout", "SHUTDOWN_TIMEOUT")
	v.BindEnv("server.ratelimitrps", "RATE_LIMIT_RPS")
	v.BindEnv("server.ratelimitburst", "RATE_LIMIT_BURST")

	// AI
	v.BindEnv("ai.provider", "AI_PROVIDER")
	v.BindEnv("ai.model", "AI_MODEL")
	v.BindEnv("ai.apikey", "AI_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "AZURE_OPENAI_API_KEY")
	v.BindEnv("ai.baseurl", "OPENAI_BASE_URL")
	v.BindEnv("ai.endpoint", "AZURE_OPENAI_ENDPOINT")
	v.BindEnv("ai.apiversion", "AZURE_OPENAI_API_VERSION")

	// Tracker
	v.BindEnv("tracker.ackduration", "TRACKER_ACK_DURATION")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	if c.AI.Model == "" {
		return fmt.Errorf("ai.model is required")
	}

	switch strings.ToLower(c.AI.Provider) {
	case "", "mock":
	case "gemini", "openai":
		if c.AI.APIKey == "" {
			return fmt.Errorf("ai.apikey is required for provider %s", c.AI.Provider)
		}
	case "azure":
		if c.AI.APIKey == "" {
			return fmt.Errorf("ai.apikey is required for provider azure")
		}
		if c.AI.Endpoint == "" {
			return fmt.Errorf("ai.endpoint is required for provider azure")
		}
	default:
		return fmt.Errorf("ai.provider must be one of mock, gemini, openai, azure; got %q", c.AI.Provider)
	}

	if c.Tracker.AckDuration <= 0 {
		return fmt.Errorf("tracker.ackduration must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
