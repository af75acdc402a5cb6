package output

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/firebird-suite/wren/style"
)

// Printer writes prompt session lines to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a Printer. Nil writers fall back to os.Stdout and os.Stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, err: errOut}
}

// Error writes msg as one red line on the error stream.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.err, style.Red(msg))
}

// Line writes msg as one unstyled line on the output stream.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Confirmation writes a "key: value" summary line on the output stream.
// Nil themes leave their part unstyled.
func (p *Printer) Confirmation(key, value string, keyTheme, valTheme style.Func, suffix string) {
	if keyTheme == nil {
		keyTheme = style.None
	}
	if valTheme == nil {
		valTheme = style.None
	}
	fmt.Fprintln(p.out, keyTheme(key+suffix)+valTheme(value))
}
