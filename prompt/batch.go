package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/output"
	"go.uber.org/zap"
)

// Question is one entry of a batch.
type Question struct {
	Text    string   // Question shown to the user
	Key     string   // Answers key; defaults to Text
	Options []Option // Question layer, applied over the instance and call layers
}

// ResolvedKey returns the Answers key of q: Key, else a Key option among
// q.Options, else Text. Key options at the instance and call layers are
// ignored so that questions of one batch never share a key.
func (q Question) ResolvedKey() string {
	if q.Key != "" {
		return q.Key
	}
	if k := resolve(q.Options).Key; k != "" {
		return k
	}
	return q.Text
}

// AskAll asks questions in order and collects their answers.
//
// Each question's configuration is defaults < New options < opts <
// question options. A question's Depends condition sees the answers
// collected before it. A question that fails terminally is recorded in the
// returned *BatchError and the batch moves on; its answer is "".
//
// When a confirmation round is configured the answers are summarized and
// confirmed; declining starts the batch over with fresh answers.
//
// Cancellation stops the batch at once and returns the partial answers
// together with ErrCanceled.
func (p *Prompter) AskAll(ctx context.Context, questions []Question, opts ...Option) (*Answers, error) {
	if len(questions) == 0 {
		return nil, invalidQuestion("no questions to ask")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, invalidQuestion(fmt.Sprintf("question %d has empty text", i+1))
		}
	}

	base := resolve(p.opts, opts)
	log := base.Logger
	if log == nil {
		log = p.log
	}

	for round := 1; ; round++ {
		answers, failed, err := p.runSequence(ctx, questions, opts)
		if err != nil {
			return answers, err
		}

		if base.Confirm == nil {
			return answers, failed.orNil()
		}

		ok, err := p.confirm(ctx, base, answers)
		if err != nil {
			return answers, err
		}
		if ok {
			return answers, failed.orNil()
		}
		log.Debug("Answers declined, starting over", zap.Int("round", round))
	}
}

// runSequence asks every question once, strictly one after another
func (p *Prompter) runSequence(ctx context.Context, questions []Question, opts []Option) (*Answers, *BatchError, error) {
	answers := NewAnswers()
	failed := &BatchError{}

	for _, q := range questions {
		cfg := resolve(p.opts, opts, q.Options)
		key := q.ResolvedKey()

		v, err := p.askSingle(ctx, q.Text, cfg, answers)
		if errors.Is(err, ErrCanceled) {
			return answers, failed, err
		}
		if err != nil {
			failed.add(key, err)
		}
		answers.Set(key, v)
	}

	return answers, failed, nil
}

// confirm prints the answer summary and asks the confirmation question
func (p *Prompter) confirm(ctx context.Context, base Config, answers *Answers) (bool, error) {
	cc := base.Confirm.withDefaults()
	printer := output.NewPrinter(base.Stdout, base.Stderr)

	if cc.Before != "" {
		printer.Line(cc.Before)
	}
	for _, k := range answers.Keys() {
		printer.Confirmation(k, answers.String(k), cc.KeyTheme, cc.ValTheme, cc.Suffix)
	}
	if cc.After != "" {
		printer.Line(cc.After)
	}

	cfg := base
	cfg.Default = cc.Default
	cfg.Boolean = true
	cfg.Required = false
	cfg.Validate = NoValidation()
	cfg.Before, cfg.After = nil, nil
	cfg.Depends = Always()
	cfg.Key = ""
	cfg.Silent = false

	v, err := p.askSingle(ctx, cc.Message, cfg, nil)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false, err
		}
		return false, errors.Mark(errors.Wrap(err, "confirmation failed"), ErrConfirmation)
	}

	yes, _ := v.(bool)
	return yes, nil
}
