package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ObservedWebhookURL is the n8n workflow both analysis kinds post to by default.
const ObservedWebhookURL = "https://pinkp.app.n8n.cloud/webhook-test/4fed089a-df7e-4ece-94e2-23992e3ad029"

const envPrefix = "TRUTHLENS"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Session  SessionConfig  `mapstructure:"session"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

const (
	BackendWebhook = "webhook"
	BackendOpenAI  = "openai"
)

type AnalysisConfig struct {
	Backend string `mapstructure:"backend"`
}

// WebhookConfig maps each analysis kind to its workflow endpoint.
type WebhookConfig struct {
	FakeNewsURL string        `mapstructure:"fake_news_url"`
	DeepfakeURL string        `mapstructure:"deepfake_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type OpenAIConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	APIEndpoint string `mapstructure:"endpoint"`
	Model       string `mapstructure:"model"`
	APIVersion  string `mapstructure:"api_version"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SlogLevel maps the configured level name, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	// submissions wait on the workflow for as long as it takes
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("session.ttl", "30m")

	v.SetDefault("analysis.backend", BackendWebhook)

	v.SetDefault("webhook.fake_news_url", ObservedWebhookURL)
	v.SetDefault("webhook.deepfake_url", ObservedWebhookURL)
	v.SetDefault("webhook.timeout", "0s")

	v.SetDefault("openai.provider", "openai")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.api_version", "2023-05-15")

	v.SetDefault("log.level", "info")
}

// LoadConfig reads defaults, then the optional config file at path, then
// TRUTHLENS_* environment variables (TRUTHLENS_WEBHOOK_FAKE_NEWS_URL and so on).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded successfully", "backend", cfg.Analysis.Backend, "file", path)
	return &cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Analysis.Backend {
	case BackendWebhook:
		if c.Webhook.FakeNewsURL == "" || c.Webhook.DeepfakeURL == "" {
			return fmt.Errorf("webhook backend needs both webhook.fake_news_url and webhook.deepfake_url")
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai backend needs openai.api_key")
		}
	default:
		return fmt.Errorf("invalid analysis.backend %q: must be one of webhook, openai", c.Analysis.Backend)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Webhook.Timeout < 0 {
		return fmt.Errorf("webhook.timeout must be non-negative")
	}
	return nil
}
