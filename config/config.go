package config

import (
	"fmt"
	"log" // Import log
	"strings"

	"github.com/spf13/viper"
)

// Env key of the upstream credential. It is looked up on every request.
const keyAPIKey = "GROQ_API_KEY"

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode
	AppName       string `mapstructure:"APP_NAME"`

	// AI Configuration
	GroqAPIKey string `mapstructure:"GROQ_API_KEY"` // snapshot at load time; use APIKey() per request
	LLMSDK     string `mapstructure:"LLM_SDK"`      // "go-openai" or "openai-go"
	LLMBaseURL string `mapstructure:"LLM_BASE_URL"` // OpenAI-compatible endpoint
	LLMModel   string `mapstructure:"LLM_MODEL"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"` // "json" or "text"

	// HTTP
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Observability
	MetricsEnabled  bool    `mapstructure:"METRICS_ENABLED"`
	MetricsPath     string  `mapstructure:"METRICS_PATH"`
	TracingEnabled  bool    `mapstructure:"TRACING_ENABLED"`
	OTLPEndpoint    string  `mapstructure:"OTLP_ENDPOINT"`
	TraceSampleRate float64 `mapstructure:"TRACE_SAMPLE_RATE"`

	v *viper.Viper
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	v.AutomaticEnv() // Read environment variables that match keys
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// AutomaticEnv only reaches Unmarshal for keys viper already knows.
	setDefaults(v)

	err = v.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.v = v

	// A missing key is not fatal: the relay answers with a configuration
	// error per request until it is set.
	if config.APIKey() == "" {
		log.Printf("WARN: %s is not set; generation requests will fail until it is configured.", keyAPIKey)
	}

	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "card-words-ai")

	v.SetDefault(keyAPIKey, "")
	v.SetDefault("LLM_SDK", "go-openai")
	v.SetDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("LLM_MODEL", "mixtral-8x7b-32768")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("TRACE_SAMPLE_RATE", 1.0)
}

// APIKey returns the upstream credential as currently set in the
// environment (or config file), not as it was at startup.
func (c Config) APIKey() string {
	if c.v != nil {
		return strings.TrimSpace(c.v.GetString(keyAPIKey))
	}
	return strings.TrimSpace(c.GroqAPIKey)
}

// IsProduction reports whether APP_ENV selects production mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
