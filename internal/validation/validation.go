// pluginlint - Plugin Package Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pluginlint

// Package validation checks a plugin package directory for naming-convention
// and required-field problems. Validators only read the filesystem; every
// problem found is reported as a self-locating issue string.
package validation

import "fmt"

// PackageValidator defines the interface for a whole-package check.
type PackageValidator interface {
	// Name identifies the validator in logs.
	Name() string
	// Validate checks the package rooted at root and returns every issue found.
	// An empty result means the package is compliant.
	Validate(root string) []string
}

// issueList accumulates issue strings in discovery order.
type issueList struct {
	items []string
}

func (l *issueList) addf(format string, args ...interface{}) {
	l.items = append(l.items, fmt.Sprintf(format, args...))
}

func (l *issueList) add(issues ...string) {
	l.items = append(l.items, issues...)
}

// list returns the collected issues, never nil.
func (l *issueList) list() []string {
	if l.items == nil {
		return []string{}
	}
	return l.items
}
