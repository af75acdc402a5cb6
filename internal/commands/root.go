package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// cli is the state shared by the commands of one root command
var cli struct {
	v    *viper.Viper
	log  *zap.Logger
	opts []prompt.Option
}

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	cli.v = viper.New()
	cli.log = zap.NewNop()
	cli.opts = nil

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Ask questions on the terminal and print the answers",
		Long: `Wren asks questions on the terminal, validates the answers and
prints them for scripts to use.

• Ask a single question with defaults, validation and retries
• Run a YAML questionnaire with dependent questions and a confirmation step
• Render the answers as YAML, JSON or through a template

Prompt styling is read from wren.yaml in the current directory or
$HOME/.config/wren, and from WREN_* environment variables.`,
		Version:       wren.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(verbose)

			if verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				cli.log = log
			}

			opts, err := loadConfig(cli.v, configFile)
			if err != nil {
				return usage(err)
			}
			cli.opts = opts
			if used := cli.v.ConfigFileUsed(); used != "" {
				output.Verbose("Using config " + used)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cli.log.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default wren.yaml)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	return cmd
}

// VersionCmd prints the wren version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wren version",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wren version "+wren.Version)
		},
	}
}
