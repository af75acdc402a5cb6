// Package output prints styled lines for prompts and the wren CLI.
//
// # Overview
//
// Two kinds of output live here:
//
//   - A Printer writes the lines a prompt session produces: one red line per
//     rejected answer on the error stream, and plain or key/value lines on the
//     output stream for confirmation summaries.
//   - Package-level status helpers (Success, Error, Info, Step, Verbose) used
//     by the CLI commands around a prompt session.
//
// # Usage
//
//	p := output.NewPrinter(nil, nil) // os.Stdout, os.Stderr
//	p.Error("Required! Try again.")
//	p.Confirmation("name", "Ada", style.BoldGrey, style.Cyan, ": ")
//
//	output.Success("Answers written to answers.yml")
//	output.Step("wren form questions.yml")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Loaded 4 questions from questions.yml")
//
// # Styling
//
// Status helpers use lipgloss directly; Printer takes style.Func themes so
// callers decide how confirmation lines look:
//
//   - Success: green bold
//   - Error: red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray (when enabled)
package output
