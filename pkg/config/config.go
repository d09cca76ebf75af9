// Package config loads the zor configuration from .zor/config.json with a
// home-directory fallback, writing defaults on first run.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const configDirName = ".zor"
const configFileName = "config.json"

type Config struct {
	Model            string  `json:"model"`
	APIKey           string  `json:"api_key,omitempty"`
	OpenAIBaseURL    string  `json:"openai_base_url,omitempty"`
	OllamaServerURL  string  `json:"ollama_server_url,omitempty"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	MaxRetries       int     `json:"max_retries"`
	BaseRetryDelayMS int     `json:"base_retry_delay_ms"`
	SkipPrompt       bool    `json:"-"` // internal use, not saved to config
}

func defaultConfig() *Config {
	return &Config{
		Model:            "gpt-4o-mini",
		Temperature:      0.2,
		MaxTokens:        8192,
		MaxRetries:       3,
		BaseRetryDelayMS: 2000,
	}
}

// BaseRetryDelay returns the retry base delay as a duration.
func (c *Config) BaseRetryDelay() time.Duration {
	return time.Duration(c.BaseRetryDelayMS) * time.Millisecond
}

// LoadOrInitConfig loads the project config, falling back to the home
// directory copy, and writes defaults to the project when neither exists.
func LoadOrInitConfig(skipPrompt bool) (*Config, error) {
	paths := []string{
		filepath.Join(configDirName, configFileName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, configDirName, configFileName))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaultConfig()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		cfg.applyDefaults()
		cfg.SkipPrompt = skipPrompt
		return cfg, nil
	}

	cfg := defaultConfig()
	cfg.SkipPrompt = skipPrompt
	if err := cfg.save(paths[0]); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := defaultConfig()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = def.MaxTokens
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = def.MaxRetries
	}
	if c.BaseRetryDelayMS <= 0 {
		c.BaseRetryDelayMS = def.BaseRetryDelayMS
	}
}

func (c *Config) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
