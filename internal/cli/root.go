// pluginlint - Plugin Package Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pluginlint

// Package cli provides Cobra-based CLI commands for pluginlint.
// It defines the validation commands (check, naming, schema) and the
// version command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/pluginlint/internal/cli/shared"
	"github.com/ariel-frischer/pluginlint/internal/config"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupValidation = shared.GroupValidation
	GroupInfo       = shared.GroupInfo
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pluginlint",
		Short: "Validate plugin package naming and metadata",
		Long: `Validate plugin package naming and metadata

Checks a plugin directory without modifying it: component names must follow
kebab-case (commands may also use snake_case), and plugin.json plus every agent
and skill frontmatter must carry the fields the plugin loader requires.`,
		Example: `  # Run every check
  pluginlint check ./plugins/my-plugin

  # Naming conventions only
  pluginlint naming ./plugins/my-plugin

  # Manifest and frontmatter fields only, human-readable
  pluginlint schema ./plugins/my-plugin --format text`,
		SilenceErrors: true,
	}

	cmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	cmd.AddGroup(&cobra.Group{ID: GroupInfo, Title: "Info:"})
	cmd.SetHelpCommandGroupID(GroupInfo)
	cmd.SetCompletionCommandGroupID(GroupInfo)

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", config.DefaultLocalPath, "Path to config file")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringP("format", "f", config.FormatJSON, "Output format: json or text")
	cmd.PersistentFlags().Bool("strict", false, "Also report duplicate frontmatter keys and frontmatter that is not valid YAML")

	for _, sel := range validateSelections {
		cmd.AddCommand(newValidateCmd(sel))
	}
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return executeCommand(rootCmd, os.Stderr)
}

// executeCommand runs cmd and turns usage errors (bad flags, extra arguments) into
// ExitInvalidArguments after printing them to errOut.
func executeCommand(cmd *cobra.Command, errOut io.Writer) error {
	err := cmd.Execute()
	if err == nil || shared.IsExitError(err) {
		return err
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return NewExitError(ExitInvalidArguments)
}
