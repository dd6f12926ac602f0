// Package config loads pluginlint settings from defaults, JSON config files
// and PLUGINLINT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/pluginlint/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "PLUGINLINT_"

// DefaultLocalPath is the project-level config file location.
const DefaultLocalPath = ".pluginlint/config.json"

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Configuration represents the pluginlint configuration
type Configuration struct {
	ManifestPath string `koanf:"manifest_path" validate:"required,excludesall=*?[]{}\\"`
	AgentsDir    string `koanf:"agents_dir" validate:"required,excludesall=*?[]{}\\"`
	SkillsDir    string `koanf:"skills_dir" validate:"required,excludesall=*?[]{}\\"`
	CommandsDir  string `koanf:"commands_dir" validate:"required,excludesall=*?[]{}\\"`
	SkillDoc     string `koanf:"skill_doc" validate:"required,excludesall=/\\"`
	ComponentExt string `koanf:"component_ext" validate:"required,startswith=.,excludesall=*?[]{}/\\"`
	Strict       bool   `koanf:"strict"`
	Format       string `koanf:"format" validate:"oneof=json text"`
	Debug        bool   `koanf:"debug"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".pluginlint", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

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

// Layout converts the configured paths into a validation layout.
func (c *Configuration) Layout() validation.Layout {
	return validation.Layout{
		ManifestPath: filepath.ToSlash(c.ManifestPath),
		AgentsDir:    filepath.ToSlash(c.AgentsDir),
		SkillsDir:    filepath.ToSlash(c.SkillsDir),
		CommandsDir:  filepath.ToSlash(c.CommandsDir),
		SkillDoc:     c.SkillDoc,
		ComponentExt: c.ComponentExt,
	}
}

// envTransform converts environment variable names to config keys
// Example: PLUGINLINT_AGENTS_DIR -> agents_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
