// Package style maps style names to string styling functions.
//
// # Overview
//
// Every visual decoration in wren (prompt prefixes, question text, default
// hints, error lines, confirmation summaries) goes through a style.Func.
// Styling is purely cosmetic: a Func never changes the meaning of the text
// it wraps, so tests and non-interactive hosts can swap in None.
//
// # Usage
//
//	bold, err := style.Named("bold")
//	fmt.Println(bold("Module path"))
//
//	// Dotted names compose, like chalk.bold.grey
//	keyTheme := style.MustNamed("bold.grey")
//
// # Names
//
// Modifiers: bold, dim, italic, underline, reverse, strikethrough.
// Colors: black, red, green, yellow, blue, magenta, cyan, white, grey/gray.
// Backgrounds use the bg prefix: bgRed, bgCyan, ...
//
// Rendering is done with lipgloss, which drops escape sequences when the
// output is not a terminal.
package style
