package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/form"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/simonhull/firebird-suite/wren/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FormCmd creates the 'form' command for questionnaire files
func FormCmd() *cobra.Command {
	var (
		format   string
		template string
		out      string
		force    bool
		tui      bool
	)

	cmd := &cobra.Command{
		Use:   "form FILE",
		Short: "Run a questionnaire and print or render the answers",
		Long: `Runs the questions of a YAML questionnaire in order, then prints
the answers as YAML or JSON, or renders them through a Go template.

Example:
  wren form project.yml
  wren form project.yml --format json
  wren form project.yml --template config.tmpl --out config.yml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			fmtv, err := form.ParseFormat(format)
			if err != nil {
				return usage(err)
			}

			f, err := form.Load(args[0])
			if err != nil {
				return usage(err)
			}
			qs, err := f.Compile()
			if err != nil {
				return usage(err)
			}
			output.Verbose(fmt.Sprintf("Loaded %d questions from %s", len(qs), args[0]))

			p := newPrompter(cmd, tui)

			if out != "" && !force {
				if _, err := os.Stat(out); err == nil {
					ok, err := p.AskBool(ctx, fmt.Sprintf("%s already exists. Overwrite?", out), prompt.Default("n"))
					if err != nil {
						return err
					}
					if !ok {
						output.Info("Nothing written")
						return nil
					}
				}
			}

			answers, err := p.AskAll(ctx, qs, f.Options()...)
			if err != nil {
				return err
			}
			cli.log.Debug("Form answered", zap.Strings("keys", answers.Keys()))

			content, err := renderAnswers(answers, fmtv, template)
			if err != nil {
				return err
			}

			if out == "" {
				_, err := cmd.OutOrStdout().Write(content)
				return errors.Wrap(err, "failed to write answers")
			}

			tx := render.NewTransaction()
			tx.AddFile(out, content, 0644)
			if err := tx.Commit(); err != nil {
				return err
			}
			output.Success("Wrote " + out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	f.StringVar(&template, "template", "", "Go template rendered with the answers")
	f.StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	f.BoolVar(&force, "force", false, "Overwrite --out without asking")
	f.BoolVar(&tui, "tui", false, "Use the interactive terminal UI")

	return cmd
}

// renderAnswers encodes answers, through tmpl when one is given
func renderAnswers(answers *prompt.Answers, format form.Format, tmpl string) ([]byte, error) {
	if tmpl != "" {
		return render.NewRenderer().RenderFile(tmpl, answers.Map())
	}

	var buf bytes.Buffer
	if err := form.Encode(&buf, answers, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
