package config

import "github.com/ariel-frischer/pluginlint/internal/validation"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	layout := validation.DefaultLayout()
	return map[string]interface{}{
		"manifest_path": layout.ManifestPath,
		"agents_dir":    layout.AgentsDir,
		"skills_dir":    layout.SkillsDir,
		"commands_dir":  layout.CommandsDir,
		"skill_doc":     layout.SkillDoc,
		"component_ext": layout.ComponentExt,
		"strict":        false,
		"format":        FormatJSON,
		"debug":         false,
	}
}
