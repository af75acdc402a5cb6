// Package input provides one-call terminal prompts for the common cases.
//
// # Overview
//
// The functions here wrap the prompt engine with the suite's look: the
// question in bold cyan and hints such as defaults or [Y/n] in grey. They
// never return an error for a failed read; the default value is used
// instead, which keeps call sites in CLI commands short.
//
// # Usage
//
//	modulePath := input.Prompt("Module path", "github.com/username/myapp")
//
//	if input.Confirm("Continue?", true) {
//	    // User said yes
//	}
//
//	token, err := input.Secret("API token")
//
// # Non-Interactive Mode
//
// In CI/CD or automated environments, bypass the prompt with a flag:
//
//	if moduleFlag != "" {
//	    modulePath = moduleFlag
//	} else {
//	    modulePath = input.Prompt("Module path", "default")
//	}
//
// Tests can redirect the streams with SetIO.
package input
