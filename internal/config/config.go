// Package config loads gembridge configuration from layered sources:
// defaults, the global config file, an optional local config file, and
// GEMBRIDGE_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the gembridge runtime configuration.
type Configuration struct {
	GeminiCmd     string   `koanf:"gemini_cmd" validate:"required"`
	DefaultModel  string   `koanf:"default_model" validate:"required"`
	FlashModel    string   `koanf:"flash_model" validate:"required"`
	AllowedModels []string `koanf:"allowed_models" validate:"min=1"`
	InitPolicy    string   `koanf:"init_policy" validate:"oneof=auto strict"`
	Timeout       int      `koanf:"timeout" validate:"omitempty,min=1,max=604800"` // seconds, 0 = none
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config, if present
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".gembridge", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config, if present
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables win
	k.Load(env.Provider("GEMBRIDGE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: GEMBRIDGE_DEFAULT_MODEL -> default_model
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "GEMBRIDGE_"))
}
