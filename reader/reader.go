package reader

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

var (
	// ErrCanceled reports a user abort. It is never retried.
	ErrCanceled = errors.New("canceled")

	// ErrTimeout reports that no line arrived within Request.Timeout.
	ErrTimeout = errors.New("timed out waiting for input")
)

// Request describes a single line read.
type Request struct {
	Prompt  string        // Literal text written before reading
	Input   io.Reader     // Defaults to os.Stdin
	Output  io.Writer     // Defaults to os.Stdout
	Timeout time.Duration // Zero means wait forever
	Silent  bool          // Do not echo typed characters
}

// LineReader reads one line of input for a prompt.
type LineReader interface {
	ReadLine(ctx context.Context, req Request) (string, error)
}

// Func adapts a plain function to LineReader.
type Func func(ctx context.Context, req Request) (string, error)

// ReadLine calls f(ctx, req).
func (f Func) ReadLine(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

func (r Request) input() io.Reader {
	if r.Input == nil {
		return os.Stdin
	}
	return r.Input
}

func (r Request) output() io.Writer {
	if r.Output == nil {
		return os.Stdout
	}
	return r.Output
}

// withTimeout derives a context whose cause is ErrTimeout when d elapses.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeoutCause(ctx, d, ErrTimeout)
}

// doneErr translates a finished context into ErrTimeout or ErrCanceled.
func doneErr(ctx context.Context) error {
	if errors.Is(context.Cause(ctx), ErrTimeout) {
		return ErrTimeout
	}
	return ErrCanceled
}

// terminalFD returns the file descriptor of r when it is an interactive terminal.
func terminalFD(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
