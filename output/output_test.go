package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/wren/style"
	"github.com/stretchr/testify/assert"
)

// captureOutput redirects the status helpers during f
func captureOutput(f func()) (string, string) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)

	f()
	return out.String(), errOut.String()
}

func TestSuccess(t *testing.T) {
	out, _ := captureOutput(func() {
		Success("Test message")
	})

	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Test message")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestError(t *testing.T) {
	out, errOut := captureOutput(func() {
		Error("Error message")
	})

	assert.Empty(t, out, "errors go to stderr")
	assert.Contains(t, errOut, "✘")
	assert.Contains(t, errOut, "Error message")
}

func TestInfo(t *testing.T) {
	out, _ := captureOutput(func() {
		Info("Info message")
	})

	assert.Contains(t, out, "Info message")
}

func TestStep(t *testing.T) {
	out, _ := captureOutput(func() {
		Step("Step message")
	})

	assert.Contains(t, out, "   ")
	assert.Contains(t, out, "Step message")
}

func TestVerbose(t *testing.T) {
	// Test with verbose mode off (default)
	_, errOut := captureOutput(func() {
		Verbose("Debug message")
	})
	assert.Empty(t, errOut, "verbose output should be empty when verbose mode is off")

	// Test with verbose mode on
	SetVerbose(true)
	defer SetVerbose(false)

	_, errOut = captureOutput(func() {
		Verbose("Debug message")
	})
	assert.Contains(t, errOut, "Debug message")
}

func TestSetVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, verboseMode)

	SetVerbose(false)
	assert.False(t, verboseMode)
}

func TestPrinter_Error(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Error("Required! Try again.")
	p.Error("Invalid input: maybe")

	assert.Empty(t, out.String())
	lines := strings.Split(strings.TrimSuffix(errOut.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Required! Try again.")
	assert.Contains(t, lines[1], "Invalid input: maybe")
}

func TestPrinter_Line(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, nil)

	p.Line("Please review your answers")
	assert.Equal(t, "Please review your answers\n", out.String())
}

func TestPrinter_Confirmation(t *testing.T) {
	tests := []struct {
		name     string
		keyTheme style.Func
		valTheme style.Func
		suffix   string
		want     string
	}{
		{"plain themes", style.None, style.None, ": ", "name: Ada\n"},
		{"nil themes", nil, nil, " = ", "name = Ada\n"},
		{"custom themes", strings.ToUpper, func(s string) string { return "[" + s + "]" }, ": ", "NAME: [Ada]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewPrinter(&out, nil).Confirmation("name", "Ada", tt.keyTheme, tt.valTheme, tt.suffix)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
