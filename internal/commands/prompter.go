package commands

import (
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/simonhull/firebird-suite/wren/reader"
	"github.com/spf13/cobra"
)

// newPrompter builds a Prompter on the command's streams. Prompts and error
// lines go to stderr so stdout carries only the answers.
func newPrompter(cmd *cobra.Command, tui bool) *prompt.Prompter {
	opts := []prompt.Option{
		prompt.WithStdin(cmd.InOrStdin()),
		prompt.WithStdout(cmd.ErrOrStderr()),
		prompt.WithStderr(cmd.ErrOrStderr()),
		prompt.WithLogger(cli.log),
	}
	if tui {
		opts = append(opts, prompt.WithReader(reader.NewTUI()))
	}
	return prompt.New(append(opts, cli.opts...)...)
}
