package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typeline/typeline/internal/script"
)

// ValidationResult holds validation results for JSON output.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Script string `json:"script,omitempty"`
	Nodes  int    `json:"nodes,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <script.yaml>",
		Short: "Validate a typing script without running it",
		Long: `Validate a typing script without running it.

Checks the YAML against the embedded CUE schema, rejects unknown fields,
and compiles the step list to verify kinds, directions, and delays.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		msg := fmt.Sprintf("script file not found: %s", path)
		_ = formatter.Error(msg)
		return NewExitError(ExitCommandError, msg)
	}

	sc, err := script.Load(path)
	if err != nil {
		if formatter.Format == "json" {
			_ = formatter.Success(ValidationResult{Valid: false, Error: err.Error()})
		} else {
			_ = formatter.Error(err.Error())
		}
		return WrapExitError(ExitFailure, "script is invalid", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Script: sc.Name, Nodes: len(sc.Nodes)})
	}
	return formatter.Success(fmt.Sprintf("%s: valid (%d nodes, selector %q)", sc.Name, len(sc.Nodes), sc.Selector))
}
