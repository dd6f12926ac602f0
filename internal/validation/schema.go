package validation

import (
	"io/fs"
	"path"

	"github.com/ariel-frischer/pluginlint/internal/logging"
	"github.com/ariel-frischer/pluginlint/internal/preamble"
	"github.com/charmbracelet/log"
)

// DocumentKind identifies a markdown document with a required preamble.
type DocumentKind string

const (
	// DocumentAgent is an agent definition file.
	DocumentAgent DocumentKind = "agent"
	// DocumentSkill is the description document inside a skill directory.
	DocumentSkill DocumentKind = "skill"
)

// RequiredFields lists the preamble fields each document kind must carry
// with a non-empty value, in reporting order.
var RequiredFields = map[DocumentKind][]string{
	DocumentAgent: {"name", "description", "tools", "color", "model"},
	DocumentSkill: {"name", "description"},
}

const noPreambleMessage = "No frontmatter found"

// SchemaValidator checks plugin.json and the preamble of every agent and
// skill document for required fields.
type SchemaValidator struct {
	Layout Layout
	// Strict adds duplicate-key and YAML well-formedness checks on preambles.
	Strict bool
	Logger *log.Logger
}

// NewSchemaValidator creates a schema validator for the given layout.
func NewSchemaValidator(layout Layout, strict bool, logger *log.Logger) *SchemaValidator {
	return &SchemaValidator{Layout: layout, Strict: strict, Logger: logger}
}

// Name returns the validator name.
func (v *SchemaValidator) Name() string {
	return "schema"
}

// Validate checks the manifest, then agents, then skills. A failure in one
// document never stops the others from being checked.
func (v *SchemaValidator) Validate(root string) []string {
	return v.validateFS(packageFS(root))
}

func (v *SchemaValidator) validateFS(fsys fs.FS) []string {
	logger := logging.OrDiscard(v.Logger)
	layout := v.Layout.withDefaults()
	var issues issueList

	issues.add(v.validateManifest(fsys, layout)...)

	agents, err := layout.Agents(fsys)
	if err != nil {
		logger.Warn("cannot enumerate agents", "err", err)
		issues.addf("%s: Error reading directory - %v", layout.AgentsDir, err)
	}
	for _, agent := range agents {
		issues.add(v.validateDocument(fsys, DocumentAgent, agent.Path, agent.FileName())...)
	}

	skills, err := layout.Skills(fsys)
	if err != nil {
		logger.Warn("cannot enumerate skills", "err", err)
		issues.addf("%s: Error reading directory - %v", layout.SkillsDir, err)
	}
	for _, skill := range skills {
		docPath := layout.SkillDocPath(skill)
		if _, err := fs.Stat(fsys, docPath); err != nil {
			if isAbsent(err) {
				logger.Debug("skill has no description document", "skill", skill.Name)
				continue
			}
		}
		location := path.Join(skill.Name, layout.SkillDoc)
		issues.add(v.validateDocument(fsys, DocumentSkill, docPath, location)...)
	}

	return issues.list()
}

// validateManifest checks plugin.json. A missing file is a single issue and
// no further manifest checks run.
func (v *SchemaValidator) validateManifest(fsys fs.FS, layout Layout) []string {
	logger := logging.OrDiscard(v.Logger)
	name := layout.ManifestName()

	data, err := fs.ReadFile(fsys, layout.ManifestPath)
	if err != nil {
		if isAbsent(err) {
			return []string{name + " not found"}
		}
		logger.Warn("cannot read manifest", "path", layout.ManifestPath, "err", err)
		return []string{name + ": Error reading file - " + err.Error()}
	}

	raw, err := DecodeManifest(data)
	if err != nil {
		logger.Debug("manifest decode failed", "err", err)
		return []string{name + ": Invalid JSON - " + err.Error()}
	}

	issues := checkManifestFields(raw, name)
	m := ManifestFromMap(raw)
	logger.Debug("manifest decoded",
		"name", m.Name,
		"version", m.Version,
		"author", m.AuthorName,
		"keywords", len(m.Keywords),
		"issues", len(issues),
	)
	return issues
}

// validateDocument reads one document and checks its preamble. location
// prefixes every issue for this document.
func (v *SchemaValidator) validateDocument(fsys fs.FS, kind DocumentKind, docPath, location string) []string {
	logger := logging.OrDiscard(v.Logger)
	logger.Debug("checking document", "kind", kind, "path", docPath)

	var issues issueList

	data, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		logger.Warn("cannot read document", "path", docPath, "err", err)
		issues.addf("%s: Error reading file - %v", location, err)
		return issues.list()
	}

	p, err := preamble.Parse(string(data))
	if err != nil {
		issues.addf("%s: %s", location, noPreambleMessage)
		return issues.list()
	}

	for _, field := range RequiredFields[kind] {
		if !p.Has(field) {
			issues.addf("%s: Missing required field '%s'", location, field)
		}
	}

	if v.Strict {
		for _, key := range p.Duplicates {
			issues.addf("%s: Duplicate field '%s'", location, key)
		}
		if err := p.CheckYAML(); err != nil {
			issues.addf("%s: Frontmatter is not valid YAML - %v", location, err)
		}
	}

	return issues.list()
}
