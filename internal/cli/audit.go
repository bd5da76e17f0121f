package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/ledger"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check a ledger for leaked or double-released buffers",
		Long: `Replay the buffer events in a ledger written by "primer run --ledger".

Exits 1 when any buffer was leaked, released twice, or released without
being acquired.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			l, err := ledger.OpenExisting(ledgerPath)
			if errors.Is(err, os.ErrNotExist) {
				return fail(f, ExitCommandError, ErrCodeLedgerFailed, "ledger not found", err)
			}
			if err != nil {
				return fail(f, ExitCommandError, ErrCodeLedgerFailed, "failed to open ledger", err)
			}
			defer l.Close()

			report, err := l.Audit(ctx)
			if err != nil {
				return fail(f, ExitCommandError, ErrCodeLedgerFailed, "audit failed", err)
			}

			if err := f.Success(report, formatReport(report)); err != nil {
				return err
			}
			if !report.Clean() {
				return NewExitError(ExitFailure,
					fmt.Sprintf("%s: %d finding(s)", ErrCodeAuditFinding, len(report.Findings)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "path to SQLite ledger (required)")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func formatReport(r ledger.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d buffer(s), %d event(s)\n", r.Buffers, r.Events)
	if r.Clean() {
		b.WriteString("✓ No memory issues detected.\n")
		return b.String()
	}
	for _, finding := range r.Findings {
		fmt.Fprintf(&b, "✗ %s\n", finding)
	}
	return b.String()
}
