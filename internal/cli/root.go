package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/program"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the primer CLI.
// Invoked without a subcommand it runs the built-in program.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "primer",
		Short: "primer - sums and speakers",
		Long: `Sum integers over a vector and a scoped fixed buffer, and let a dog
and a cat speak.

Without a subcommand, runs the built-in program and prints:

  The sum of the elements in the vector is: 15
  The sum of the elements in the array is: 15
  Buddy says: Woof!
  Whiskers says: Meow!`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return fail(f, ExitCommandError, ErrCodeBadArgument,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := &RunOptions{RootOptions: opts}
			return runProgram(runOpts, program.Default(), cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewSpeakCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewAuditCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// Execute runs the CLI with args and returns the process exit code.
// Errors already reported by a command are not printed again.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	// Usage errors from cobra: unknown command, bad flags, wrong arg count.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitCommandError
}
