package validation

import (
	"io/fs"

	"github.com/ariel-frischer/pluginlint/internal/logging"
	"github.com/charmbracelet/log"
)

// kindLabels are the capitalized category names used in issue text.
var kindLabels = map[ComponentKind]string{
	ComponentAgent:   "Agent",
	ComponentSkill:   "Skill",
	ComponentCommand: "Command",
}

// NamingValidator checks the package directory name and every component name
// against its category's naming convention.
type NamingValidator struct {
	Layout Layout
	Logger *log.Logger
}

// NewNamingValidator creates a naming validator for the given layout.
func NewNamingValidator(layout Layout, logger *log.Logger) *NamingValidator {
	return &NamingValidator{Layout: layout, Logger: logger}
}

// Name returns the validator name.
func (v *NamingValidator) Name() string {
	return "naming"
}

// Validate checks, in order: the package name, agents, skills, commands.
// Missing category directories contribute no issues.
func (v *NamingValidator) Validate(root string) []string {
	return v.validateFS(PackageName(root), packageFS(root))
}

func (v *NamingValidator) validateFS(pluginName string, fsys fs.FS) []string {
	logger := logging.OrDiscard(v.Logger)
	var issues issueList

	if !IsKebabCase(pluginName) {
		issues.addf("Plugin name '%s' is not kebab-case", pluginName)
	}

	categories := []struct {
		kind ComponentKind
		dir  string
		list func(fs.FS) ([]Component, error)
	}{
		{ComponentAgent, v.Layout.withDefaults().AgentsDir, v.Layout.Agents},
		{ComponentSkill, v.Layout.withDefaults().SkillsDir, v.Layout.Skills},
		{ComponentCommand, v.Layout.withDefaults().CommandsDir, v.Layout.Commands},
	}

	for _, cat := range categories {
		components, err := cat.list(fsys)
		if err != nil {
			logger.Warn("cannot enumerate components", "kind", cat.kind, "err", err)
			issues.addf("%s: Error reading directory - %v", cat.dir, err)
			continue
		}
		convention := ConventionFor(cat.kind)
		for _, c := range components {
			logger.Debug("checking name", "kind", c.Kind, "name", c.Name)
			if !convention.Matches(c.Name) {
				issues.addf("%s '%s' is not %s", kindLabels[c.Kind], c.Name, convention)
			}
		}
	}

	return issues.list()
}
