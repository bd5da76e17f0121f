package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/aggregate"
)

// SumResult is the JSON payload of the sum command.
type SumResult struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
	Total  int    `json:"total"`
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "sum [ints...]",
		Short: "Sum integers",
		Long: `Sum the given integers. With no arguments the sum is 0.

Example:
  primer sum 1 2 3 4 5
  primer sum --label list -- -4 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fail(f, ExitCommandError, ErrCodeBadArgument,
						fmt.Sprintf("not an integer: %q", arg), nil)
				}
				values = append(values, v)
			}

			total := aggregate.Sum(values)
			return f.Success(
				SumResult{Label: label, Values: values, Total: total},
				fmt.Sprintf("The sum of the elements in the %s is: %d\n", label, total),
			)
		},
	}

	cmd.Flags().StringVar(&label, "label", "vector", "collection name used in the output line")

	return cmd
}
