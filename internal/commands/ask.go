package commands

import (
	"fmt"
	"time"

	"github.com/simonhull/firebird-suite/wren/form"
	"github.com/spf13/cobra"
)

// AskCmd creates the 'ask' command for a single question
func AskCmd() *cobra.Command {
	var (
		q       form.Question
		timeout time.Duration
		tui     bool
	)

	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Ask one question and print the answer",
		Long: `Asks one question and prints the accepted answer on stdout.
The prompt and error lines are written to stderr.

Example:
  name=$(wren ask "Project name" --required --transform trim,lower)
  port=$(wren ask "Port" --default 8080 --validate integer)
  wren ask "Continue?" --boolean --default n`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.v.BindPFlag("timeout", cmd.Flags().Lookup("timeout")); err != nil {
				return err
			}
			q.Question = args[0]
			if d := cli.v.GetDuration("timeout"); d > 0 {
				q.Timeout = d.String()
			}

			// A one-question form gets the same checks as a questionnaire file
			qs, err := (&form.Form{Questions: []form.Question{q}}).Compile()
			if err != nil {
				return usage(err)
			}

			v, err := newPrompter(cmd, tui).AskQuestion(cmd.Context(), qs[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answerText(v))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&q.Default, "default", "d", "", "Answer used when the input is empty")
	f.BoolVarP(&q.Required, "required", "r", false, "Reject empty answers")
	f.BoolVarP(&q.Boolean, "boolean", "b", false, "Accept y/yes/n/no and print true or false")
	f.StringVarP(&q.Pattern, "pattern", "p", "", "Regular expression the answer must match")
	f.StringVar(&q.Validate, "validate", "", "Built-in validator (email, url, ip, hostname, domain, integer, semver, ...)")
	f.StringSliceVar(&q.Transform, "transform", nil, "Transforms to apply: trim, lower, upper, int")
	f.IntVarP(&q.Attempts, "attempts", "a", 0, "Maximum attempts, 0 for unlimited")
	f.DurationVarP(&timeout, "timeout", "t", 0, "Give up waiting for input after this long")
	f.BoolVarP(&q.Silent, "silent", "s", false, "Do not echo typed characters")
	f.BoolVar(&tui, "tui", false, "Use the interactive terminal UI")

	return cmd
}

// answerText formats an accepted value for stdout
func answerText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
