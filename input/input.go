package input

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/simonhull/firebird-suite/wren/reader"
	"github.com/simonhull/firebird-suite/wren/style"
)

var (
	promptStyle = style.MustNamed("bold.cyan")
	hintStyle   = style.Grey
)

var (
	mu     sync.Mutex
	stdin  io.Reader
	stdout io.Writer

	// One reader for every call so buffered input carries over between prompts
	lines = reader.NewStream()
)

// SetIO redirects prompts and error lines to out and reads answers from in.
// Nil values restore the process streams.
func SetIO(in io.Reader, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdin, stdout = in, out
}

func newPrompter(extra ...prompt.Option) *prompt.Prompter {
	mu.Lock()
	in, out := stdin, stdout
	mu.Unlock()

	opts := []prompt.Option{
		prompt.WithStdin(in),
		prompt.WithStdout(out),
		prompt.WithTextTheme(promptStyle),
		prompt.WithDefaultTheme(hintStyle),
		prompt.WithSuffixTheme(style.None),
		prompt.WithReader(lines),
		prompt.Attempts(3),
	}
	if out != nil {
		opts = append(opts, prompt.WithStderr(out))
	}
	return prompt.New(append(opts, extra...)...)
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	modulePath := input.Prompt("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp): _
func Prompt(message, defaultValue string) string {
	answer, err := newPrompter().AskString(context.Background(), message,
		prompt.Before(trim),
		prompt.Default(defaultValue),
	)
	if err != nil {
		return defaultValue
	}
	return answer
}

// Required asks until the user gives a non-blank answer. It returns "" if
// input cannot be read.
func Required(message string) string {
	answer, err := newPrompter().AskString(context.Background(), message,
		prompt.Before(trim),
		prompt.Required(),
		prompt.Attempts(0),
	)
	if err != nil {
		return ""
	}
	return answer
}

// Secret asks for a value without echoing it. Unlike the other helpers it
// reports read failures, since there is no sensible default for a secret.
func Secret(message string) (string, error) {
	return newPrompter().AskString(context.Background(), message,
		prompt.Silent(),
		prompt.Required(),
		prompt.Attempts(0),
	)
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false for no.
// If defaultYes is true, pressing Enter returns true. Otherwise, returns false.
//
// Example:
//
//	if input.Confirm("Run go mod tidy?", true) {
//	    // User said yes (or pressed Enter with defaultYes=true)
//	}
//	// Displays: Run go mod tidy? [Y/n]: _
func Confirm(message string, defaultYes bool) bool {
	hint, fallback := "[y/N]", "n"
	if defaultYes {
		hint, fallback = "[Y/n]", "y"
	}

	// The hint is part of the text so the default is not shown twice
	text := promptStyle(message) + " " + hintStyle(hint)
	yes, err := newPrompter(prompt.WithTextTheme(style.None)).AskBool(context.Background(), text,
		prompt.Before(func(v any) any {
			s := trim(v).(string)
			if s == "" {
				return fallback
			}
			return s
		}),
	)
	if err != nil {
		return defaultYes
	}
	return yes
}

func trim(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
