package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/pluginlint/internal/config"
	"github.com/ariel-frischer/pluginlint/internal/logging"
	"github.com/ariel-frischer/pluginlint/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// validateCommand describes one validation subcommand.
type validateCommand struct {
	use       string
	short     string
	selection validation.Selection
}

var validateSelections = []validateCommand{
	{use: "check", short: "Run naming and schema validation", selection: validation.SelectAll},
	{use: "naming", short: "Check plugin, agent, skill and command names", selection: validation.SelectNaming},
	{use: "schema", short: "Check plugin.json and frontmatter required fields", selection: validation.SelectSchema},
}

// validateFlags are the per-invocation settings read from persistent flags.
type validateFlags struct {
	configPath string
	debug      bool
	format     string
	formatSet  bool
	strict     bool
	strictSet  bool
}

func newValidateCmd(vc validateCommand) *cobra.Command {
	return &cobra.Command{
		Use:   vc.use + " <plugin-path>",
		Short: vc.short,
		Long: vc.short + `.

Prints {"valid": bool, "issues": [...]} to stdout.

Exit Codes:
  0 - Package is valid
  1 - Issues found, path missing, or no path given
  3 - Invalid flags or configuration`,
		GroupID:       GroupValidation,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := readValidateFlags(cmd)
			return runValidate(vc.selection, args, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func readValidateFlags(cmd *cobra.Command) validateFlags {
	f := cmd.Flags()
	var flags validateFlags
	flags.configPath, _ = f.GetString("config")
	flags.debug, _ = f.GetBool("debug")
	flags.format, _ = f.GetString("format")
	flags.formatSet = f.Changed("format")
	flags.strict, _ = f.GetBool("strict")
	flags.strictSet = f.Changed("strict")
	return flags
}

// runValidate loads configuration, runs the selected validators against the
// path in args and writes the report. The returned error carries the exit code.
func runValidate(sel validation.Selection, args []string, flags validateFlags, out, errOut io.Writer) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if flags.formatSet {
		cfg.Format = flags.format
	}
	if flags.strictSet {
		cfg.Strict = flags.strict
	}
	if cfg.Format != config.FormatJSON && cfg.Format != config.FormatText {
		fmt.Fprintf(errOut, "Error: unknown format %q (valid: %s, %s)\n", cfg.Format, config.FormatJSON, config.FormatText)
		return NewExitError(ExitInvalidArguments)
	}

	logger := logging.New(errOut, cfg.Debug || flags.debug)

	// An explicit "" counts as no path, not as the working directory.
	var root string
	if len(args) > 0 {
		root = args[0]
	}

	report := validation.Run(root, sel, validation.RunOptions{
		Layout: cfg.Layout(),
		Strict: cfg.Strict,
		Logger: logger,
	})

	if err := writeReport(report, cfg.Format, root, out); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}

	if report.ExitCode() != validation.ExitValid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func writeReport(report *validation.Report, format, root string, out io.Writer) error {
	if format == config.FormatText {
		return report.WriteText(out, root, colorEnabled(out))
	}
	return report.WriteJSON(out)
}

// colorEnabled reports whether w is a terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
