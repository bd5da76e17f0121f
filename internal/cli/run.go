package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/aggregate"
	"github.com/roach88/primer/internal/ledger"
	"github.com/roach88/primer/internal/program"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Ledger string

	// IDGenerator and Clock override ledger defaults (for testing).
	IDGenerator ledger.IDGenerator
	Clock       ledger.Clock
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [program-file]",
		Short: "Run a program (the built-in one by default)",
		Long: `Run a YAML or CUE program and print one line per step.

With --ledger, every fixed-buffer acquisition and release is recorded in a
SQLite ledger that "primer audit" can check.

Example:
  primer run
  primer run ./pets.yaml
  primer run --ledger ./primer.db ./pets.cue`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := program.Default()
			if len(args) == 1 {
				loaded, err := program.LoadFile(args[0])
				if err != nil {
					f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
					return fail(f, ExitCommandError, ErrCodeLoadFailed, "failed to load program", err)
				}
				p = loaded
			}
			return runProgram(opts, p, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "path to SQLite ledger for buffer events")

	return cmd
}

func runProgram(opts *RunOptions, p *program.Program, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := f.Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if errs := program.Validate(p); len(errs) > 0 {
		return outputValidationErrors(f, errs)
	}

	var alloc aggregate.Allocator = &aggregate.HeapAllocator{}
	if opts.Ledger != "" {
		l, err := ledger.Open(opts.Ledger)
		if err != nil {
			return fail(f, ExitCommandError, ErrCodeLedgerFailed, "failed to open ledger", err)
		}
		defer func() {
			if closeErr := l.Close(); closeErr != nil {
				logger.Error("error closing ledger", "error", closeErr)
			}
		}()

		ledgerOpts := []ledger.AllocatorOption{ledger.WithLogger(logger)}
		if opts.IDGenerator != nil {
			ledgerOpts = append(ledgerOpts, ledger.WithIDGenerator(opts.IDGenerator))
		}
		if opts.Clock != nil {
			ledgerOpts = append(ledgerOpts, ledger.WithClock(opts.Clock))
		}
		la, err := ledger.NewAllocator(ctx, l, ledgerOpts...)
		if err != nil {
			return fail(f, ExitCommandError, ErrCodeLedgerFailed, "failed to prepare ledger", err)
		}
		alloc = la
		logger.Debug("ledger ready", "path", opts.Ledger)
	}

	result, err := program.NewRunner(alloc, logger).Run(ctx, p)
	if err != nil {
		return fail(f, ExitFailure, ErrCodeRunFailed, "program failed", err)
	}

	return f.Success(result, result.String()+"\n")
}
