// Package validation_test tests report construction, JSON output, and exit codes.
// Related: internal/validation/report.go
// Tags: validation, report, json, exit-code
package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		groups    [][]string
		wantValid bool
		want      []string
		wantCode  int
	}{
		"no groups": {
			wantValid: true,
			want:      []string{},
			wantCode:  ExitValid,
		},
		"empty groups": {
			groups:    [][]string{{}, nil},
			wantValid: true,
			want:      []string{},
			wantCode:  ExitValid,
		},
		"groups concatenated in order": {
			groups:    [][]string{{"schema a", "schema b"}, {"naming a"}},
			wantValid: false,
			want:      []string{"schema a", "schema b", "naming a"},
			wantCode:  ExitInvalid,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := NewReport(tc.groups...)
			assert.Equal(t, tc.wantValid, r.Valid)
			assert.Equal(t, tc.want, r.Issues)
			assert.Equal(t, len(r.Issues) == 0, r.Valid)
			assert.Equal(t, tc.wantCode, r.ExitCode())
		})
	}
}

func TestReport_WriteJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		report *Report
		want   string
	}{
		"valid": {
			report: NewReport(),
			want:   "{\n  \"valid\": true,\n  \"issues\": []\n}\n",
		},
		"missing root": {
			report: StructuralReport("Plugin directory does not exist: /nope"),
			want:   "{\n  \"valid\": false,\n  \"issues\": [\n    \"Plugin directory does not exist: /nope\"\n  ]\n}\n",
		},
		"valid flag contradicts issues": {
			report: &Report{Valid: true, Issues: []string{"plugin.json not found"}},
			want:   "{\n  \"valid\": false,\n  \"issues\": [\n    \"plugin.json not found\"\n  ]\n}\n",
		},
		"zero value": {
			report: &Report{},
			want:   "{\n  \"valid\": true,\n  \"issues\": []\n}\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, tc.report.WriteJSON(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestReport_WriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewReport().WriteText(&buf, "my-plugin", false))
	assert.Equal(t, "PASS my-plugin\n", buf.String())

	buf.Reset()
	r := NewReport([]string{"plugin.json not found", "Agent 'X' is not kebab-case"})
	require.NoError(t, r.WriteText(&buf, "my-plugin", false))
	assert.Equal(t, "FAIL my-plugin (2 issue(s))\n  - plugin.json not found\n  - Agent 'X' is not kebab-case\n", buf.String())
}

func TestReport_WriteTextIgnoresStaleValidFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := &Report{Valid: true, Issues: []string{"plugin.json not found"}}
	require.NoError(t, r.WriteText(&buf, "my-plugin", false))
	assert.Equal(t, "FAIL my-plugin (1 issue(s))\n  - plugin.json not found\n", buf.String())
	assert.Equal(t, ExitInvalid, r.ExitCode())
}
