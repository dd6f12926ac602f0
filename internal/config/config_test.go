// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/pluginlint/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at an empty temp dir so a real global config is
// never picked up.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".claude-plugin/plugin.json", cfg.ManifestPath)
	assert.Equal(t, "agents", cfg.AgentsDir)
	assert.Equal(t, "skills", cfg.SkillsDir)
	assert.Equal(t, "commands", cfg.CommandsDir)
	assert.Equal(t, "SKILL.md", cfg.SkillDoc)
	assert.Equal(t, ".md", cfg.ComponentExt)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Debug)
	assert.Equal(t, validation.DefaultLayout(), cfg.Layout())
}

func TestLoad_LocalOverride(t *testing.T) {
	isolateHome(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, configPath, `{
		"agents_dir": "roles",
		"strict": true,
		"format": "text"
	}`)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "roles", cfg.AgentsDir)
	assert.True(t, cfg.Strict)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "skills", cfg.SkillsDir, "unset keys keep defaults")
}

func TestLoad_GlobalThenLocal(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".pluginlint", "config.json"), `{"skills_dir": "global-skills", "commands_dir": "global-commands"}`)

	localPath := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, localPath, `{"commands_dir": "local-commands"}`)

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "global-skills", cfg.SkillsDir)
	assert.Equal(t, "local-commands", cfg.CommandsDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateHome(t)

	localPath := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, localPath, `{"skill_doc": "README.md"}`)

	t.Setenv("PLUGINLINT_SKILL_DOC", "SKILL.markdown")
	t.Setenv("PLUGINLINT_STRICT", "true")
	t.Setenv("PLUGINLINT_DEBUG", "1")

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "SKILL.markdown", cfg.SkillDoc)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingLocalFileIgnored(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "agents", cfg.AgentsDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr string
	}{
		"malformed json": {
			content: `{"agents_dir": `,
			wantErr: "failed to load local config",
		},
		"unknown format": {
			content: `{"format": "xml"}`,
			wantErr: "config validation failed",
		},
		"glob characters in directory": {
			content: `{"agents_dir": "agents/*"}`,
			wantErr: "config validation failed",
		},
		"extension without dot": {
			content: `{"component_ext": "md"}`,
			wantErr: "config validation failed",
		},
		"skill doc with path": {
			content: `{"skill_doc": "docs/SKILL.md"}`,
			wantErr: "config validation failed",
		},
		"empty manifest path": {
			content: `{"manifest_path": ""}`,
			wantErr: "config validation failed",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)

			configPath := filepath.Join(t.TempDir(), "config.json")
			writeConfig(t, configPath, tc.content)

			_, err := Load(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	for _, key := range []string{"manifest_path", "agents_dir", "skills_dir", "commands_dir", "skill_doc", "component_ext", "strict", "format", "debug"} {
		assert.Contains(t, defaults, key)
	}
}
