package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
)

// ComponentKind is the category of a plugin component.
type ComponentKind string

const (
	// ComponentAgent is a markdown file directly under the agents directory.
	ComponentAgent ComponentKind = "agent"
	// ComponentSkill is a directory directly under the skills directory.
	ComponentSkill ComponentKind = "skill"
	// ComponentCommand is a markdown file directly under the commands directory.
	ComponentCommand ComponentKind = "command"
)

// Layout describes where a plugin keeps its manifest and components,
// relative to the package root. Paths use forward slashes.
type Layout struct {
	ManifestPath string
	AgentsDir    string
	SkillsDir    string
	CommandsDir  string
	SkillDoc     string
	ComponentExt string
}

// DefaultLayout returns the standard plugin layout.
func DefaultLayout() Layout {
	return Layout{
		ManifestPath: ".claude-plugin/plugin.json",
		AgentsDir:    "agents",
		SkillsDir:    "skills",
		CommandsDir:  "commands",
		SkillDoc:     "SKILL.md",
		ComponentExt: ".md",
	}
}

// withDefaults fills empty fields from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.ManifestPath == "" {
		l.ManifestPath = d.ManifestPath
	}
	if l.AgentsDir == "" {
		l.AgentsDir = d.AgentsDir
	}
	if l.SkillsDir == "" {
		l.SkillsDir = d.SkillsDir
	}
	if l.CommandsDir == "" {
		l.CommandsDir = d.CommandsDir
	}
	if l.SkillDoc == "" {
		l.SkillDoc = d.SkillDoc
	}
	if l.ComponentExt == "" {
		l.ComponentExt = d.ComponentExt
	}
	return l
}

// ManifestName returns the manifest file name used to prefix manifest issues.
func (l Layout) ManifestName() string {
	return path.Base(l.withDefaults().ManifestPath)
}

// Component is one named agent, skill or command discovered in a package.
type Component struct {
	Kind ComponentKind
	Name string
	// Path is relative to the package root, slash-separated.
	Path string
}

// FileName returns the last element of Path.
func (c Component) FileName() string {
	return path.Base(c.Path)
}

// PackageName returns the name of the package directory. Relative paths such
// as "." are resolved first so the real directory name is checked.
func PackageName(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Base(filepath.Clean(root))
}

// Agents returns the agent components of the package, sorted by name.
func (l Layout) Agents(fsys fs.FS) ([]Component, error) {
	l = l.withDefaults()
	return l.fileComponents(fsys, ComponentAgent, l.AgentsDir)
}

// Commands returns the command components of the package, sorted by name.
func (l Layout) Commands(fsys fs.FS) ([]Component, error) {
	l = l.withDefaults()
	return l.fileComponents(fsys, ComponentCommand, l.CommandsDir)
}

// Skills returns the skill components of the package, sorted by name.
// Each skill's Path is its directory.
func (l Layout) Skills(fsys fs.FS) ([]Component, error) {
	l = l.withDefaults()
	info, err := fs.Stat(fsys, l.SkillsDir)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := fs.ReadDir(fsys, l.SkillsDir)
	if err != nil {
		return nil, err
	}

	// fs.ReadDir returns entries sorted by filename.
	var skills []Component
	for _, entry := range entries {
		p := path.Join(l.SkillsDir, entry.Name())
		if !isDir(fsys, p, entry) {
			continue
		}
		skills = append(skills, Component{Kind: ComponentSkill, Name: entry.Name(), Path: p})
	}
	return skills, nil
}

// SkillDocPath returns the description document path inside a skill.
func (l Layout) SkillDocPath(skill Component) string {
	return path.Join(skill.Path, l.withDefaults().SkillDoc)
}

// fileComponents globs dir/*<ext> for regular files, non-recursively.
func (l Layout) fileComponents(fsys fs.FS, kind ComponentKind, dir string) ([]Component, error) {
	info, err := fs.Stat(fsys, dir)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	pattern := path.Join(dir, "*"+l.ComponentExt)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	components := make([]Component, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), l.ComponentExt)
		if name == "" {
			// A file named only by the extension keeps its full name.
			name = path.Base(m)
		}
		components = append(components, Component{Kind: kind, Name: name, Path: m})
	}
	sortComponents(components)
	return components, nil
}

// isAbsent reports whether err means the path is not there. A path below a
// regular file fails with ENOTDIR, which counts as absent.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func isDir(fsys fs.FS, p string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && info.IsDir()
}

// packageFS opens the package root as a filesystem.
func packageFS(root string) fs.FS {
	return os.DirFS(root)
}

func sortComponents(components []Component) {
	sort.Slice(components, func(i, j int) bool {
		return components[i].Name < components[j].Name
	})
}
