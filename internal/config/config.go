// Package config provides configuration management for promptpolish.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the full runtime configuration. Values come from defaults,
// then ~/.promptpolish/config.yaml if present, then environment variables.
// The orchestrator itself never reads environment state; everything is
// injected from here.
type Config struct {
	Provider        string `yaml:"provider"` // "anthropic" or "openai"
	Model           string `yaml:"model"`
	MaxOutputTokens int64  `yaml:"max_output_tokens"`

	AnthropicAPIKey string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`

	StorageDir     string `yaml:"storage_dir"`
	UsersDBPath    string `yaml:"users_db"`
	DeliveryTarget string `yaml:"delivery_target"` // "claude", "gemini", "gpt-4", "codex", or "web"
	WebChatURL     string `yaml:"web_chat_url"`

	TelemetryEnabled bool   `yaml:"telemetry_enabled"`
	OTLPEndpoint     string `yaml:"otlp_endpoint"`
}

const configDirName = ".promptpolish"

// Default returns a Config populated with sensible defaults
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, configDirName)
	return Config{
		Provider:        "anthropic",
		MaxOutputTokens: 2048,
		StorageDir:      filepath.Join(base, "prompts"),
		UsersDBPath:     filepath.Join(base, "users.db"),
		DeliveryTarget:  "web",
		WebChatURL:      "https://chatgpt.com/",
	}
}

// Load builds the effective configuration: defaults, overlaid by the optional
// config file, overlaid by environment variables
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, configDirName, "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	overlayEnv(&cfg.Provider, "PROMPTPOLISH_PROVIDER")
	overlayEnv(&cfg.Model, "PROMPTPOLISH_MODEL")
	overlayEnv(&cfg.StorageDir, "PROMPTPOLISH_STORAGE_DIR")
	overlayEnv(&cfg.UsersDBPath, "PROMPTPOLISH_USERS_DB")
	overlayEnv(&cfg.DeliveryTarget, "PROMPTPOLISH_DELIVERY_TARGET")
	overlayEnv(&cfg.WebChatURL, "PROMPTPOLISH_WEB_CHAT_URL")
	overlayEnv(&cfg.OTLPEndpoint, "PROMPTPOLISH_OTLP_ENDPOINT")
	if v := os.Getenv("PROMPTPOLISH_TELEMETRY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.TelemetryEnabled = enabled
		}
	}

	return cfg, nil
}

// Validate checks that the selected provider has credentials
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("missing required environment variable: ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("missing required environment variable: OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown provider %q, expected 'anthropic' or 'openai'", c.Provider)
	}
	return nil
}

func overlayEnv(dest *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dest = v
	}
}
