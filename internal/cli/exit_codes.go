package cli

import (
	"github.com/ariel-frischer/pluginlint/internal/cli/shared"
)

// Exit codes for the pluginlint CLI (re-exported from shared)
const (
	// ExitSuccess indicates the package is valid
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates at least one issue was reported
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitInvalidArguments indicates unusable flags or configuration
	ExitInvalidArguments = shared.ExitInvalidArguments
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
