// Package config loads tenetlint configuration from file and environment
// sources with koanf and validates the result.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the tenetlint tool configuration.
type Configuration struct {
	TenetsDir   string `koanf:"tenets_dir" validate:"required"`   // Directory containing tenet documents
	BindingsDir string `koanf:"bindings_dir" validate:"required"` // Directory containing binding documents
	VersionFile string `koanf:"version_file" validate:"required"` // File holding the expected repository version
	Workers     int    `koanf:"workers" validate:"min=0,max=64"`  // Parallel validation workers (0 = GOMAXPROCS)
	ShowContext bool   `koanf:"show_context"`                     // Render source context snippets under each error
	NoColor     bool   `koanf:"no_color"`                         // Disable colored output
}

// Load loads configuration from an optional local config file and environment
// variables. Priority: environment variables > local config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", localConfigPath, err)
			}
		}
	}

	// Environment variables win over everything.
	k.Load(env.Provider("TENETLINT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// NO_COLOR is honored as an alias for no_color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: TENETLINT_TENETS_DIR -> tenets_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TENETLINT_"))
}
