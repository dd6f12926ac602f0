// Package testutil provides test utilities and helpers for pluginlint tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ValidManifest is a plugin.json carrying every required field.
const ValidManifest = `{
  "name": "%s",
  "version": "1.0.0",
  "description": "Test plugin",
  "author": {
    "name": "Test Author"
  },
  "keywords": ["test"],
  "license": "MIT"
}
`

// AgentDoc returns an agent document with the given preamble fields.
// Fields are written in the order given as "key: value" lines.
func AgentDoc(fields ...string) string {
	return Document(fields...) + "\nYou are a test agent.\n"
}

// ValidAgentDoc returns an agent document with all required fields.
func ValidAgentDoc(name string) string {
	return AgentDoc(
		"name", name,
		"description", "Use this agent for tests",
		"tools", "Read, Grep, Glob",
		"color", "blue",
		"model", "sonnet",
	)
}

// ValidSkillDoc returns a SKILL.md with all required fields.
func ValidSkillDoc(name string) string {
	return Document("name", name, "description", "Test skill") + "\n# Skill\n"
}

// Document renders a "---" delimited preamble from key/value pairs.
func Document(kv ...string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	for i := 0; i+1 < len(kv); i += 2 {
		sb.WriteString(fmt.Sprintf("%s: %s\n", kv[i], kv[i+1]))
	}
	sb.WriteString("---\n")
	return sb.String()
}

// PluginOption customizes a plugin created by CreatePlugin.
type PluginOption func(t *testing.T, root string)

// WithManifest writes raw content to .claude-plugin/plugin.json.
func WithManifest(content string) PluginOption {
	return func(t *testing.T, root string) {
		WriteFile(t, filepath.Join(root, ".claude-plugin", "plugin.json"), content)
	}
}

// WithoutManifest removes .claude-plugin/plugin.json.
func WithoutManifest() PluginOption {
	return func(t *testing.T, root string) {
		t.Helper()
		if err := os.RemoveAll(filepath.Join(root, ".claude-plugin")); err != nil {
			t.Fatalf("failed to remove manifest: %v", err)
		}
	}
}

// WithAgent writes agents/<file> with content.
func WithAgent(file, content string) PluginOption {
	return func(t *testing.T, root string) {
		WriteFile(t, filepath.Join(root, "agents", file), content)
	}
}

// WithSkill writes skills/<dir>/SKILL.md with content. An empty content
// creates the directory without a SKILL.md.
func WithSkill(dir, content string) PluginOption {
	return func(t *testing.T, root string) {
		t.Helper()
		skillDir := filepath.Join(root, "skills", dir)
		if content == "" {
			if err := os.MkdirAll(skillDir, 0755); err != nil {
				t.Fatalf("failed to create skill directory: %v", err)
			}
			return
		}
		WriteFile(t, filepath.Join(skillDir, "SKILL.md"), content)
	}
}

// WithCommand writes commands/<file> with content.
func WithCommand(file, content string) PluginOption {
	return func(t *testing.T, root string) {
		WriteFile(t, filepath.Join(root, "commands", file), content)
	}
}

// WithFile writes an arbitrary file relative to the plugin root.
func WithFile(rel, content string) PluginOption {
	return func(t *testing.T, root string) {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
}

// CreatePlugin creates a plugin directory named name inside a temp dir with a
// valid manifest, then applies opts. Returns the plugin root.
func CreatePlugin(t *testing.T, name string, opts ...PluginOption) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), name)
	WriteFile(t, filepath.Join(root, ".claude-plugin", "plugin.json"), fmt.Sprintf(ValidManifest, name))

	for _, opt := range opts {
		opt(t, root)
	}
	return root
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}
