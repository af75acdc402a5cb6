// Package reader reads one line of user input for a rendered prompt.
//
// # Overview
//
// A LineReader writes a prompt, waits for one line and returns it without
// the trailing newline. It is the only place wren blocks on the terminal.
//
// Two implementations ship with the package:
//
//   - Stream reads from any io.Reader. It is the default and what tests use
//     with strings.Reader or bytes.Buffer inputs.
//   - TUI hosts a bubbles textinput inside a bubbletea program, giving line
//     editing on interactive terminals.
//
// # Errors
//
// ErrCanceled means the user aborted (Ctrl-C, SIGINT, or the caller's
// context was cancelled). Callers must stop asking questions when they see
// it. ErrTimeout means a per-read timeout expired; it is an ordinary read
// failure that can be retried.
//
//	line, err := reader.NewStream().ReadLine(ctx, reader.Request{
//	    Prompt:  "Module path: ",
//	    Timeout: 30 * time.Second,
//	})
//	if errors.Is(err, reader.ErrCanceled) {
//	    os.Exit(130)
//	}
package reader
