package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	LLM         LLMConfig     `toml:"llm"`
	Auth        AuthConfig    `toml:"auth"`
	Seed        SeedConfig    `toml:"seed"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// LLMConfig configures the advisory text-generation provider. The feature is
// optional: an empty API key leaves the app running with fixed fallback text.
type LLMConfig struct {
	Provider    string  `toml:"provider"`    // "gemini" (default) or "claude"
	Model       string  `toml:"model"`       // provider model name, defaults applied per provider
	APIKey      string  `toml:"api_key"`     // falls back to GEMINI_API_KEY / ANTHROPIC_API_KEY
	Timeout     string  `toml:"timeout"`     // e.g. "15s"
	MaxTokens   int     `toml:"max_tokens"`  // Claude only
	Temperature float32 `toml:"temperature"` // 0 = provider default
}

// AuthConfig configures the shared-secret login gate.
type AuthConfig struct {
	AccessCode string `toml:"access_code"` // static subscriber access code
	MentorName string `toml:"mentor_name"` // display name used for the TEACHER session
}

// SeedConfig controls the mock signal generator used on first run.
type SeedConfig struct {
	RandomSeed    int64 `toml:"random_seed"`    // 0 = derive from clock
	CurrentMonth  int   `toml:"current_month"`  // signal count for the current month
	PreviousMonth int   `toml:"previous_month"` // signal count for the previous month
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/orbit",
				ResetOnStartup: false,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		LLM: LLMConfig{
			Provider:  "gemini",
			Timeout:   "15s",
			MaxTokens: 1024,
		},
		Auth: AuthConfig{
			AccessCode: "123456",
			MentorName: "Alex (Mentor)",
		},
		Seed: SeedConfig{
			CurrentMonth:  18,
			PreviousMonth: 9,
		},
	}
}

// LoadFromFile loads configuration from a TOML file over the defaults, then
// applies environment overrides. A missing file is not an error: defaults and
// environment are used.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies ORBIT_* environment variables over file values.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("ORBIT_STORAGE_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
	if v := os.Getenv("ORBIT_STORAGE_RESET"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Storage.Badger.ResetOnStartup = b
		}
	}
	if v := os.Getenv("ORBIT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("ORBIT_LLM_PROVIDER"); v != "" {
		config.LLM.Provider = v
	}
	if v := os.Getenv("ORBIT_LLM_API_KEY"); v != "" {
		config.LLM.APIKey = v
	}
	if v := os.Getenv("ORBIT_ACCESS_CODE"); v != "" {
		config.Auth.AccessCode = v
	}
}
