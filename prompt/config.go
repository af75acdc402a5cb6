package prompt

import (
	"io"
	"time"

	"github.com/simonhull/firebird-suite/wren/reader"
	"github.com/simonhull/firebird-suite/wren/style"
	"go.uber.org/zap"
)

// Config is the resolved configuration for one question.
//
// A Config is never shared: it is rebuilt for every question by applying
// option layers to a fresh Defaults() value, so later layers win field by
// field.
type Config struct {
	// Prompt framing
	Prefix        string
	Suffix        string
	DefaultPrefix string
	DefaultSuffix string

	// Themes
	TextTheme    style.Func
	PrefixTheme  style.Func
	SuffixTheme  style.Func
	DefaultTheme style.Func

	// Messages printed on rejected attempts
	InputError    string
	RequiredError string
	InvalidError  string
	AttemptsError string

	// Streams; nil means the process streams
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Timeout time.Duration     // Per-read timeout, zero waits forever
	Confirm *ConfirmConfig    // Confirmation round for AskAll, nil disables it
	Reader  reader.LineReader // Nil uses the Prompter's reader
	Logger  *zap.Logger       // Nil uses the Prompter's logger

	// Question behavior
	Default  string    // Used when the answer is empty; "" means none
	Required bool      // Reject empty or falsy answers
	Boolean  bool      // Accept y/yes/n/no and return a bool
	Silent   bool      // Do not echo input
	Validate Validator // Reject answers that fail the check
	Before   Transform // Applied to the raw line before validation
	After    Transform // Applied to the accepted value
	Depends  Condition // Skip the question when it does not hold
	Attempts int       // Maximum attempts, zero means unlimited
	Key      string    // Answers key, defaults to the question text
}

// ConfirmConfig configures the confirmation round of AskAll.
// Empty fields take the defaults noted on each field.
type ConfirmConfig struct {
	Message  string     // "Confirm your input (Y/n)"
	Default  string     // "Y"
	Before   string     // Banner printed before the summary
	After    string     // Banner printed after the summary
	Suffix   string     // ": "
	KeyTheme style.Func // bold.grey
	ValTheme style.Func // cyan
}

// withDefaults fills empty fields
func (c ConfirmConfig) withDefaults() ConfirmConfig {
	if c.Message == "" {
		c.Message = "Confirm your input (Y/n)"
	}
	if c.Default == "" {
		c.Default = "Y"
	}
	if c.Suffix == "" {
		c.Suffix = ": "
	}
	if c.KeyTheme == nil {
		c.KeyTheme = style.BoldGrey
	}
	if c.ValTheme == nil {
		c.ValTheme = style.Cyan
	}
	return c
}

// Defaults returns the library defaults. Each call returns a new value.
func Defaults() Config {
	return Config{
		Prefix:        "",
		Suffix:        ": ",
		DefaultPrefix: " (",
		DefaultSuffix: ")",
		TextTheme:     style.Bold,
		PrefixTheme:   style.White,
		SuffixTheme:   style.White,
		DefaultTheme:  style.White,
		InputError:    "Error encountered, try again.",
		RequiredError: "Required! Try again.",
		InvalidError:  "Invalid input: ",
		AttemptsError: "Maximum attempts reached!",
	}
}

// Option sets one field of a Config.
type Option func(*Config)

// resolve applies option layers, in order, to a fresh Defaults value
func resolve(layers ...[]Option) Config {
	cfg := Defaults()
	for _, layer := range layers {
		for _, opt := range layer {
			if opt != nil {
				opt(&cfg)
			}
		}
	}
	return cfg
}

// WithPrefix sets the text shown before the question.
func WithPrefix(s string) Option { return func(c *Config) { c.Prefix = s } }

// WithSuffix sets the text shown after the question.
func WithSuffix(s string) Option { return func(c *Config) { c.Suffix = s } }

// WithDefaultPrefix sets the text shown before the default hint.
func WithDefaultPrefix(s string) Option { return func(c *Config) { c.DefaultPrefix = s } }

// WithDefaultSuffix sets the text shown after the default hint.
func WithDefaultSuffix(s string) Option { return func(c *Config) { c.DefaultSuffix = s } }

// WithTextTheme styles the question text.
func WithTextTheme(fn style.Func) Option { return func(c *Config) { c.TextTheme = fn } }

// WithPrefixTheme styles the prefix.
func WithPrefixTheme(fn style.Func) Option { return func(c *Config) { c.PrefixTheme = fn } }

// WithSuffixTheme styles the suffix.
func WithSuffixTheme(fn style.Func) Option { return func(c *Config) { c.SuffixTheme = fn } }

// WithDefaultTheme styles the default hint.
func WithDefaultTheme(fn style.Func) Option { return func(c *Config) { c.DefaultTheme = fn } }

// WithPlainThemes disables all prompt styling.
func WithPlainThemes() Option {
	return func(c *Config) {
		c.TextTheme, c.PrefixTheme, c.SuffixTheme, c.DefaultTheme = style.None, style.None, style.None, style.None
	}
}

// WithInputError sets the message printed after a failed read.
func WithInputError(s string) Option { return func(c *Config) { c.InputError = s } }

// WithRequiredError sets the message printed when a required answer is empty.
func WithRequiredError(s string) Option { return func(c *Config) { c.RequiredError = s } }

// WithInvalidError sets the message printed, followed by the answer, on a failed validation.
func WithInvalidError(s string) Option { return func(c *Config) { c.InvalidError = s } }

// WithAttemptsError sets the message used when attempts run out.
func WithAttemptsError(s string) Option { return func(c *Config) { c.AttemptsError = s } }

// WithStdin sets the input stream.
func WithStdin(r io.Reader) Option { return func(c *Config) { c.Stdin = r } }

// WithStdout sets the stream for prompts and confirmation output.
func WithStdout(w io.Writer) Option { return func(c *Config) { c.Stdout = w } }

// WithStderr sets the stream for error lines.
func WithStderr(w io.Writer) Option { return func(c *Config) { c.Stderr = w } }

// WithTimeout sets the per-read timeout.
func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }

// WithConfirm enables the confirmation round of AskAll.
func WithConfirm(cc ConfirmConfig) Option {
	return func(c *Config) { c.Confirm = &cc }
}

// WithoutConfirm disables the confirmation round.
func WithoutConfirm() Option { return func(c *Config) { c.Confirm = nil } }

// WithReader sets the line reader.
func WithReader(r reader.LineReader) Option { return func(c *Config) { c.Reader = r } }

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option { return func(c *Config) { c.Logger = l } }

// Default sets the answer used for an empty line.
func Default(s string) Option { return func(c *Config) { c.Default = s } }

// Required rejects empty answers.
func Required() Option { return func(c *Config) { c.Required = true } }

// Boolean turns the question into a yes/no question returning a bool.
func Boolean() Option { return func(c *Config) { c.Boolean = true } }

// Silent hides typed characters.
func Silent() Option { return func(c *Config) { c.Silent = true } }

// Validate sets the answer check.
func Validate(v Validator) Option { return func(c *Config) { c.Validate = v } }

// Before sets the transform applied to the raw line.
func Before(fn Transform) Option { return func(c *Config) { c.Before = fn } }

// After sets the transform applied to the accepted value.
func After(fn Transform) Option { return func(c *Config) { c.After = fn } }

// Depends sets the condition under which the question is asked.
func Depends(cond Condition) Option { return func(c *Config) { c.Depends = cond } }

// Attempts caps the number of attempts. Zero means unlimited.
func Attempts(n int) Option { return func(c *Config) { c.Attempts = n } }

// Key sets the Answers key. In a batch it is only honored among a
// question's own Options.
func Key(k string) Option { return func(c *Config) { c.Key = k } }
