// Package output prints styled lines for prompts and the wren CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetOutput redirects the status helpers. Nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Success prints a success message in green.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Answers written to answers.yml")
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("✔ "+msg))
}

// Error prints an error message in red on stderr.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("✘ "+msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message on stderr only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stderr, stepStyle.Render("› "+msg))
	}
}
