package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// Func applies a visual style to a string.
type Func func(string) string

// None returns s unchanged.
func None(s string) string {
	return s
}

// Pre-built styles used by the library defaults.
var (
	Bold     = MustNamed("bold")
	White    = MustNamed("white")
	Red      = MustNamed("red")
	Cyan     = MustNamed("cyan")
	Grey     = MustNamed("grey")
	BoldGrey = MustNamed("bold.grey")
)

// ANSI palette indexes. Grey matches the hint color used across the suite.
var colors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"grey":    lipgloss.Color("240"),
	"gray":    lipgloss.Color("240"),
}

var modifiers = map[string]func(lipgloss.Style) lipgloss.Style{
	"bold":          func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"dim":           func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"italic":        func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	"underline":     func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"reverse":       func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
	"strikethrough": func(s lipgloss.Style) lipgloss.Style { return s.Strikethrough(true) },
}

// Named builds a Func from a dotted style name such as "bold.grey".
// An empty name yields None.
func Named(name string) (Func, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return None, nil
	}

	st := lipgloss.NewStyle()
	for _, tok := range strings.Split(name, ".") {
		next, err := apply(st, tok)
		if err != nil {
			return nil, errors.Wrapf(err, "style %q", name)
		}
		st = next
	}

	return func(s string) string {
		return st.Render(s)
	}, nil
}

// MustNamed is like Named but panics on an unknown style name.
func MustNamed(name string) Func {
	fn, err := Named(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// apply adds one style token to st
func apply(st lipgloss.Style, tok string) (lipgloss.Style, error) {
	if mod, ok := modifiers[tok]; ok {
		return mod(st), nil
	}
	if c, ok := colors[tok]; ok {
		return st.Foreground(c), nil
	}
	if bg, ok := strings.CutPrefix(tok, "bg"); ok && bg != "" {
		if c, ok := colors[strings.ToLower(bg)]; ok {
			return st.Background(c), nil
		}
	}
	return st, errors.Newf("unknown style token %q", tok)
}
