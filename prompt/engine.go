package prompt

import (
	"context"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/reader"
	"go.uber.org/zap"
)

// maxReadFailures is the number of attempts after which a failing reader
// is reported to the caller instead of retried.
const maxReadFailures = 2

// state is a step of the single question state machine
type state int

const (
	stateRender state = iota
	stateRead
	stateReject
	stateAccept
)

// session runs one question to completion
type session struct {
	text    string
	cfg     Config
	reader  reader.LineReader
	printer *output.Printer
	log     *zap.Logger
}

// askSingle asks one question with a resolved config. prior holds the
// answers collected so far by a batch and may be nil.
func (p *Prompter) askSingle(ctx context.Context, text string, cfg Config, prior *Answers) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidQuestion("question text is empty")
	}

	s := &session{
		text:    text,
		cfg:     cfg,
		reader:  cfg.Reader,
		printer: output.NewPrinter(cfg.Stdout, cfg.Stderr),
		log:     cfg.Logger,
	}
	if s.reader == nil {
		s.reader = p.reader
	}
	if s.log == nil {
		s.log = p.log
	}
	s.log = s.log.With(zap.String("question", text))

	if !cfg.Depends.Holds(prior) {
		s.log.Debug("Question skipped by dependency")
		return nil, nil
	}

	return s.run(ctx)
}

// run drives render → read → (reject → render | accept) until the answer is
// accepted or the session terminates.
func (s *session) run(ctx context.Context) (any, error) {
	var (
		attempt int
		prompt  string
		value   any
		reason  string
	)

	st := stateRender
	for {
		switch st {
		case stateRender:
			attempt++
			if s.cfg.Attempts > 0 && attempt > s.cfg.Attempts {
				s.printer.Error(s.cfg.AttemptsError)
				s.log.Debug("Attempts exhausted", zap.Int("attempts", s.cfg.Attempts))
				return "", &AttemptsError{Message: s.cfg.AttemptsError, Attempts: s.cfg.Attempts}
			}
			prompt = Render(s.text, s.cfg)
			st = stateRead

		case stateRead:
			line, err := s.reader.ReadLine(ctx, reader.Request{
				Prompt:  prompt,
				Input:   s.cfg.Stdin,
				Output:  s.cfg.Stdout,
				Timeout: s.cfg.Timeout,
				Silent:  s.cfg.Silent,
			})
			if err != nil {
				if errors.Is(err, reader.ErrCanceled) {
					s.log.Debug("Input canceled", zap.Int("attempt", attempt))
					return nil, ErrCanceled
				}
				s.log.Debug("Read failed", zap.Int("attempt", attempt), zap.Error(err))
				if attempt > maxReadFailures {
					return "", &InputError{Err: err}
				}
				reason = s.cfg.InputError
				st = stateReject
				continue
			}

			value, reason = s.evaluate(line)
			if reason != "" {
				st = stateReject
			} else {
				st = stateAccept
			}

		case stateReject:
			s.printer.Error(reason)
			s.log.Debug("Answer rejected", zap.Int("attempt", attempt), zap.String("reason", reason))
			st = stateRender

		case stateAccept:
			s.log.Debug("Answer accepted", zap.Int("attempt", attempt))
			return value, nil
		}
	}
}

// evaluate runs the answer pipeline on a raw line. A non-empty reason
// rejects the attempt.
func (s *session) evaluate(line string) (value any, reason string) {
	cfg := s.cfg
	var v any = line

	if cfg.Before != nil {
		v = cfg.Before(v)
	}

	if cfg.Default != "" && isEmpty(v) {
		v = cfg.Default
	}

	if cfg.Required && isFalsy(v) {
		return nil, cfg.RequiredError
	}

	if cfg.Boolean && !IsBool(display(v)) {
		return nil, cfg.InvalidError + display(v)
	}

	if !cfg.Validate.Check(v) {
		return nil, cfg.InvalidError + display(v)
	}

	if cfg.After != nil {
		v = cfg.After(v)
	}

	if cfg.Boolean {
		v = ParseBool(display(v))
	}

	return v, ""
}

// isEmpty reports whether v is nil or the empty string
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// isFalsy reports whether v is nil, empty, false or a numeric zero
func isFalsy(v any) bool {
	if isEmpty(v) {
		return true
	}
	if b, ok := v.(bool); ok {
		return !b
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
