package prompt

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/reader"
	"go.uber.org/zap"
)

// Prompter asks questions with a shared instance configuration.
//
// A Prompter is meant to be used from one goroutine: it never has more
// than one read in flight.
type Prompter struct {
	opts   []Option
	reader reader.LineReader
	log    *zap.Logger
}

// New creates a Prompter. opts form the instance layer of every question's
// configuration, above the library defaults.
func New(opts ...Option) *Prompter {
	p := &Prompter{
		opts: append([]Option(nil), opts...),
	}

	base := resolve(p.opts)
	p.reader = base.Reader
	if p.reader == nil {
		p.reader = reader.NewStream()
	}
	p.log = base.Logger
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Config returns the instance configuration: defaults plus the New options.
func (p *Prompter) Config() Config {
	return resolve(p.opts)
}

// Ask asks a single question and returns the accepted value.
//
// The value is a string unless a Before/After transform changes its type
// or the question is Boolean, in which case it is a bool. A question whose
// Depends condition does not hold returns (nil, nil) without any I/O.
func (p *Prompter) Ask(ctx context.Context, text string, opts ...Option) (any, error) {
	return p.askSingle(ctx, text, resolve(p.opts, opts), nil)
}

// AskQuestion asks q on its own.
func (p *Prompter) AskQuestion(ctx context.Context, q Question) (any, error) {
	return p.askSingle(ctx, q.Text, resolve(p.opts, q.Options), nil)
}

// AskString asks a question and returns the answer as text.
func (p *Prompter) AskString(ctx context.Context, text string, opts ...Option) (string, error) {
	v, err := p.Ask(ctx, text, opts...)
	return display(v), err
}

// AskBool asks a yes/no question.
func (p *Prompter) AskBool(ctx context.Context, text string, opts ...Option) (bool, error) {
	v, err := p.Ask(ctx, text, append(opts, Boolean())...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok && v != nil {
		return false, errors.Newf("answer %v is not a yes/no value", v)
	}
	return b, nil
}

var std = New()

// Ask asks a single question with the package default Prompter.
func Ask(ctx context.Context, text string, opts ...Option) (any, error) {
	return std.Ask(ctx, text, opts...)
}

// AskAll asks a batch of questions with the package default Prompter.
func AskAll(ctx context.Context, questions []Question, opts ...Option) (*Answers, error) {
	return std.AskAll(ctx, questions, opts...)
}
