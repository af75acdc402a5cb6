package reader

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_ReadLine(t *testing.T) {
	in := strings.NewReader("first\nsecond\r\nthird")
	var out bytes.Buffer
	s := NewStream()

	tests := []struct {
		prompt string
		want   string
	}{
		{"A: ", "first"},
		{"B: ", "second"},
		{"C: ", "third"}, // unterminated last line
	}

	for _, tt := range tests {
		got, err := s.ReadLine(context.Background(), Request{Prompt: tt.prompt, Input: in, Output: &out})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "A: B: C: ", out.String())

	_, err := s.ReadLine(context.Background(), Request{Input: in, Output: &out})
	assert.ErrorIs(t, err, io.EOF)
}

func TestStream_EmptyLine(t *testing.T) {
	s := NewStream()
	in := strings.NewReader("\nvalue\n")

	got, err := s.ReadLine(context.Background(), Request{Input: in, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = s.ReadLine(context.Background(), Request{Input: in, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestStream_SeparateInputs(t *testing.T) {
	s := NewStream()
	a := strings.NewReader("a1\na2\n")
	b := strings.NewReader("b1\n")

	got, err := s.ReadLine(context.Background(), Request{Input: a, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "a1", got)

	got, err = s.ReadLine(context.Background(), Request{Input: b, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "b1", got)

	got, err = s.ReadLine(context.Background(), Request{Input: a, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "a2", got)
}

func TestStream_ForgetsExhaustedInput(t *testing.T) {
	s := NewStream()
	in := strings.NewReader("only\n")

	got, err := s.ReadLine(context.Background(), Request{Input: in, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "only", got)
	assert.Len(t, s.sources, 1)

	_, err = s.ReadLine(context.Background(), Request{Input: in, Output: io.Discard})
	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, s.sources)
}

// valueReader is not comparable, so it cannot key the source map
type valueReader struct {
	lines []string
}

func (r valueReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	return copy(p, r.lines[0]), nil
}

func TestStream_UnhashableInput(t *testing.T) {
	s := NewStream()
	in := valueReader{lines: []string{"value\n"}}

	for i := 0; i < 2; i++ {
		got, err := s.ReadLine(context.Background(), Request{Input: in, Output: io.Discard})
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	}
	assert.Empty(t, s.sources)

	_, err := s.ReadLine(context.Background(), Request{Input: valueReader{}, Output: io.Discard})
	assert.ErrorIs(t, err, io.EOF)
}

func TestStream_TimeoutKeepsPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	s := NewStream()

	_, err := s.ReadLine(context.Background(), Request{
		Input:   pr,
		Output:  io.Discard,
		Timeout: 20 * time.Millisecond,
	})
	require.ErrorIs(t, err, ErrTimeout)

	go func() {
		_, _ = pw.Write([]byte("late\n"))
	}()

	got, err := s.ReadLine(context.Background(), Request{Input: pr, Output: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}

func TestStream_ContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	defer pr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStream().ReadLine(ctx, Request{Input: pr, Output: io.Discard})
	assert.ErrorIs(t, err, ErrCanceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestStream_PromptWriteFailure(t *testing.T) {
	_, err := NewStream().ReadLine(context.Background(), Request{
		Prompt: "Name: ",
		Input:  strings.NewReader("x\n"),
		Output: failingWriter{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write prompt")
}

func TestFunc(t *testing.T) {
	var seen Request
	r := Func(func(ctx context.Context, req Request) (string, error) {
		seen = req
		return "stub", nil
	})

	got, err := r.ReadLine(context.Background(), Request{Prompt: "Q: ", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "stub", got)
	assert.Equal(t, "Q: ", seen.Prompt)
	assert.Equal(t, time.Second, seen.Timeout)
}
