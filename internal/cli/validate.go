package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/program"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                      `json:"valid"`
	Steps  int                       `json:"steps"`
	Errors []program.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <program-file>",
		Short: "Validate a program without running it",
		Long: `Parse a YAML or CUE program and check every step.

All problems are reported, not only the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			p, err := program.LoadFile(args[0])
			if err != nil {
				return fail(f, ExitCommandError, ErrCodeLoadFailed, "failed to load program", err)
			}

			if errs := program.Validate(p); len(errs) > 0 {
				return outputValidationErrors(f, errs)
			}

			return f.Success(
				ValidationResult{Valid: true, Steps: len(p.Steps)},
				fmt.Sprintf("✓ Program valid (%d steps)\n", len(p.Steps)),
			)
		},
	}

	return cmd
}

// outputValidationErrors reports every validation error and returns an
// ExitFailure error.
func outputValidationErrors(f *OutputFormatter, errs []program.ValidationError) error {
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if f.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}
		encoder := json.NewEncoder(f.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return exitErr
	}

	var b strings.Builder
	b.WriteString("✗ Validation failed\n\n")
	for _, err := range errs {
		fmt.Fprintf(&b, "  %s: %s: %s\n", err.Code, err.Field, err.Message)
	}
	if _, err := fmt.Fprint(f.ErrOut(), b.String()); err != nil {
		return err
	}
	return exitErr
}
