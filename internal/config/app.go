package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ExchangeRateAPI locates the upstream provider: requests go to BaseURL + APIKey + "/latest/{base}".
type ExchangeRateAPI struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RateLimit struct {
	// Rate is in ulule/limiter format, e.g. "100-M". Empty disables limiting.
	Rate string `mapstructure:"rate"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Logging         Logging         `mapstructure:"logging"`
	RateLimit       RateLimit       `mapstructure:"rate_limit"`
	CORS            CORS            `mapstructure:"cors"`
}

var ErrAPIKeyRequired = errors.New("exchange rate api key is required")

// Init reads the YAML file at path, then lets environment variables (and a .env file, if present)
// override it. A missing YAML file is not an error.
func Init(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("exchange_rate_api.base_url", "https://v6.exchangerate-api.com/v6/")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("rate_limit.rate", "100-M")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// exchange rate api env vars
	_ = v.BindEnv("exchange_rate_api.base_url", "EXCHANGE_RATE_API_BASE_URL")
	_ = v.BindEnv("exchange_rate_api.api_key", "EXCHANGE_RATE_API_KEY")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("rate_limit.rate", "RATE_LIMIT")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if strings.TrimSpace(cfg.ExchangeRateAPI.APIKey) == "" {
		return nil, ErrAPIKeyRequired
	}
	return &cfg, nil
}
