package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/form"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/spf13/cobra"
)

// errUsage marks errors caused by bad arguments, flags or input files
var errUsage = errors.New("usage error")

// Exit codes
const (
	ExitOK       = 0
	ExitError    = 1
	ExitUsage    = 2
	ExitCanceled = 130 // Same as a shell reports for Ctrl-C
)

func usage(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, errUsage)
}

// exactArgs is cobra.ExactArgs with usage errors
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usage(cobra.ExactArgs(n)(cmd, args))
	}
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	var verrs form.ValidationErrors
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, prompt.ErrCanceled):
		return ExitCanceled
	case errors.Is(err, errUsage),
		errors.Is(err, prompt.ErrInvalidQuestion),
		errors.As(err, &verrs):
		return ExitUsage
	default:
		return ExitError
	}
}
