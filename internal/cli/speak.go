package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/speaker"
)

// SpeakResult is the JSON payload of the speak command.
type SpeakResult struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Line string `json:"line"`
}

// NewSpeakCommand creates the speak command.
func NewSpeakCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak <dog|cat> <name>",
		Short: "Let a speaker say its line",
		Long: `Create a speaker of the given kind and print its line.

Example:
  primer speak dog Buddy
  primer speak cat Whiskers`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			kind, err := speaker.ParseKind(args[0])
			if err != nil {
				return fail(f, ExitCommandError, ErrCodeBadArgument, "invalid kind", err)
			}
			s, err := speaker.New(kind, args[1])
			if err != nil {
				return fail(f, ExitCommandError, ErrCodeBadArgument, "invalid speaker", err)
			}

			return f.Success(
				SpeakResult{Kind: kind.String(), Name: s.Name(), Line: s.Line()},
				s.Line()+"\n",
			)
		},
	}

	return cmd
}
