package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/internal/commands"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/prompt"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.FormCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, prompt.ErrCanceled) {
		output.Error(err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			output.Info(hint)
		}
	}
	os.Exit(commands.ExitCode(err))
}
