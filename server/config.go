package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Values come from an optional
// YAML file; environment variables override the file.
type Config struct {
	ListenAddr    string        `yaml:"listen_addr"`
	SarvamAPIKey  string        `yaml:"sarvam_api_key"`
	SarvamBaseURL string        `yaml:"sarvam_base_url"`
	OpenAIAPIKey  string        `yaml:"openai_api_key"`
	LogPath       string        `yaml:"log_path"`
	TermsPath     string        `yaml:"terms_path"`
	RedisURL      string        `yaml:"redis_url"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

// LoadConfig reads the YAML file at path (skipped when path is empty),
// applies environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr: ":8080",
		LogPath:    "translations.csv",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.SarvamAPIKey == "" {
		return nil, fmt.Errorf("sarvam_api_key is required (set SARVAM_API_KEY)")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setIfEnv(&cfg.ListenAddr, "GOBHASHA_LISTEN_ADDR")
	setIfEnv(&cfg.SarvamAPIKey, "SARVAM_API_KEY")
	setIfEnv(&cfg.SarvamBaseURL, "SARVAM_BASE_URL")
	setIfEnv(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	setIfEnv(&cfg.LogPath, "GOBHASHA_LOG_PATH")
	setIfEnv(&cfg.TermsPath, "GOBHASHA_TERMS_PATH")
	setIfEnv(&cfg.RedisURL, "GOBHASHA_REDIS_URL")
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ReviewEnabled reports whether the LLM review pass can run.
func (c *Config) ReviewEnabled() bool {
	return c.OpenAIAPIKey != ""
}
