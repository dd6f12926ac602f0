package validation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Exit statuses for a validation run.
const (
	ExitValid   = 0
	ExitInvalid = 1
)

// Messages for problems found before any validator runs.
const (
	MsgNoPath      = "No plugin path provided"
	MsgRootMissing = "Plugin directory does not exist: %s"
)

// Report is the merged outcome of a validation run.
// Valid mirrors Issues for callers reading the struct; every writer derives
// validity from Issues, so a hand-built Report cannot print an inconsistent result.
type Report struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// NewReport builds a report from issue groups, concatenated in the order given.
func NewReport(groups ...[]string) *Report {
	issues := []string{}
	for _, g := range groups {
		issues = append(issues, g...)
	}
	return &Report{Valid: len(issues) == 0, Issues: issues}
}

// StructuralReport is the report for a run that could not start.
func StructuralReport(issue string) *Report {
	return NewReport([]string{issue})
}

// MarshalJSON encodes the report with "valid" derived from Issues and a nil
// Issues written as an empty list.
func (r Report) MarshalJSON() ([]byte, error) {
	type wire Report
	w := wire{Valid: len(r.Issues) == 0, Issues: r.Issues}
	if w.Issues == nil {
		w.Issues = []string{}
	}
	return json.Marshal(w)
}

// ExitCode maps the report to a process exit status.
func (r *Report) ExitCode() int {
	if len(r.Issues) == 0 {
		return ExitValid
	}
	return ExitInvalid
}

// WriteJSON writes the report as 2-space indented JSON followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteText writes a human-readable summary. Color codes are emitted only
// when useColor is true.
func (r *Report) WriteText(w io.Writer, root string, useColor bool) error {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	if !useColor {
		green.DisableColor()
		red.DisableColor()
		yellow.DisableColor()
	}

	if len(r.Issues) == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n", green.Sprint("PASS"), root)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s (%d issue(s))\n", red.Sprint("FAIL"), root, len(r.Issues)); err != nil {
		return err
	}
	for _, issue := range r.Issues {
		if _, err := fmt.Fprintf(w, "  %s %s\n", yellow.Sprint("-"), issue); err != nil {
			return err
		}
	}
	return nil
}
