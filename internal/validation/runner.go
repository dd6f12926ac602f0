package validation

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/pluginlint/internal/logging"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Selection chooses which validators a run executes.
type Selection int

const (
	// SelectAll runs the schema and naming validators.
	SelectAll Selection = iota
	// SelectNaming runs only the naming validator.
	SelectNaming
	// SelectSchema runs only the schema validator.
	SelectSchema
)

// String returns the selection name.
func (s Selection) String() string {
	switch s {
	case SelectNaming:
		return "naming"
	case SelectSchema:
		return "schema"
	default:
		return "all"
	}
}

// RunOptions configures a validation run.
type RunOptions struct {
	Layout Layout
	Strict bool
	Logger *log.Logger
}

// Run validates the package at root with the selected validators.
//
// A missing root is reported immediately without running any validator.
// When both validators are selected they run concurrently; issues are always
// merged schema first, then naming.
func Run(root string, sel Selection, opts RunOptions) *Report {
	logger := logging.OrDiscard(opts.Logger)

	if root == "" {
		return StructuralReport(MsgNoPath)
	}
	if _, err := os.Stat(root); err != nil {
		logger.Debug("package root not accessible", "path", root, "err", err)
		return StructuralReport(fmt.Sprintf(MsgRootMissing, root))
	}

	var validators []PackageValidator
	if sel == SelectAll || sel == SelectSchema {
		validators = append(validators, NewSchemaValidator(opts.Layout, opts.Strict, opts.Logger))
	}
	if sel == SelectAll || sel == SelectNaming {
		validators = append(validators, NewNamingValidator(opts.Layout, opts.Logger))
	}

	results := make([][]string, len(validators))
	var g errgroup.Group
	for i, v := range validators {
		g.Go(func() error {
			logger.Debug("running validator", "validator", v.Name(), "root", root)
			results[i] = v.Validate(root)
			return nil
		})
	}
	_ = g.Wait()

	report := NewReport(results...)
	logger.Debug("validation finished", "selection", sel, "issues", len(report.Issues))
	return report
}
