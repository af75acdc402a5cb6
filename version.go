// Package wren is an interactive question and answer prompter for the
// terminal. The library lives in the prompt package; cmd/wren is the CLI.
package wren

// Version is the wren release, overridden at build time with -ldflags.
var Version = "0.1.0"
