package reader

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// Stream reads lines from plain io.Readers.
//
// A Stream keeps one buffered reader per input so that consecutive prompts on
// the same input never lose buffered bytes. A read abandoned by a timeout
// stays pending and its line is handed to the next ReadLine on that input.
// An input is forgotten once a read on it fails, io.EOF included.
type Stream struct {
	mu      sync.Mutex
	sources map[io.Reader]*source
}

// NewStream creates a Stream reader.
func NewStream() *Stream {
	return &Stream{
		sources: make(map[io.Reader]*source),
	}
}

type result struct {
	line string
	err  error
}

// source owns the buffered reader for one input and at most one pending read
type source struct {
	br      *bufio.Reader
	pending chan result
}

// next returns the channel of the in-flight read, starting one if needed
func (s *source) next() chan result {
	if s.pending != nil {
		return s.pending
	}

	ch := make(chan result, 1)
	go func() {
		line, err := s.br.ReadString('\n')
		// An unterminated last line is still a line
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- result{line: strings.TrimRight(line, "\r\n"), err: err}
	}()
	s.pending = ch
	return ch
}

// ReadLine writes req.Prompt and returns the next line from req.Input.
func (s *Stream) ReadLine(ctx context.Context, req Request) (string, error) {
	in, out := req.input(), req.output()

	if _, err := io.WriteString(out, req.Prompt); err != nil {
		return "", errors.Wrap(err, "failed to write prompt")
	}

	ctx, cancel := withTimeout(ctx, req.Timeout)
	defer cancel()

	fd, isTerm := terminalFD(in)
	if isTerm {
		// Ctrl-C while waiting on the terminal is a cancellation, not a crash
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		if req.Silent {
			return readPassword(ctx, fd, out)
		}
	}

	s.mu.Lock()
	src, kept := s.source(in)
	ch := src.next()
	s.mu.Unlock()

	select {
	case res := <-ch:
		s.mu.Lock()
		src.pending = nil
		if res.err != nil && kept && s.sources[in] == src {
			delete(s.sources, in)
		}
		s.mu.Unlock()
		return res.line, res.err
	case <-ctx.Done():
		return "", doneErr(ctx)
	}
}

// source returns the source for in, creating it on first use, and whether
// it is kept for later calls. Inputs whose type cannot be a map key get a
// fresh buffer every call. Caller holds s.mu.
func (s *Stream) source(in io.Reader) (*source, bool) {
	if !reflect.TypeOf(in).Comparable() {
		return &source{br: bufio.NewReader(in)}, false
	}

	src, ok := s.sources[in]
	if !ok {
		src = &source{br: bufio.NewReader(in)}
		s.sources[in] = src
	}
	return src, true
}

// readPassword reads a line without echo, restoring the terminal if the
// read is abandoned.
func readPassword(ctx context.Context, fd int, out io.Writer) (string, error) {
	state, err := term.GetState(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read terminal state")
	}

	ch := make(chan result, 1)
	go func() {
		b, err := term.ReadPassword(fd)
		ch <- result{line: string(b), err: err}
	}()

	select {
	case res := <-ch:
		_, _ = io.WriteString(out, "\n")
		return strings.TrimRight(res.line, "\r\n"), res.err
	case <-ctx.Done():
		_ = term.Restore(fd, state)
		_, _ = io.WriteString(out, "\n")
		return "", doneErr(ctx)
	}
}
