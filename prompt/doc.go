// Package prompt asks questions on the terminal and returns validated answers.
//
// # Overview
//
// A question goes through a small state machine: the prompt is rendered,
// one line is read, and the line runs through the answer pipeline. A
// rejected answer prints one styled error line and the question is asked
// again until it is accepted, the attempt limit is reached, or the reader
// keeps failing.
//
// The pipeline runs in this order:
//
//  1. Before transform
//  2. Default substitution for an empty answer
//  3. Required check
//  4. Yes/no shape check for Boolean questions
//  5. Validate
//  6. After transform
//  7. Yes/no coercion to bool for Boolean questions
//
// # Usage
//
//	p := prompt.New(prompt.WithPrefix("? "))
//
//	name, err := p.AskString(ctx, "Project name", prompt.Required())
//
//	port, err := p.Ask(ctx, "Port",
//	    prompt.Default("8080"),
//	    prompt.Validate(prompt.MatchPattern(`^\d+$`)),
//	    prompt.After(func(v any) any { n, _ := strconv.Atoi(v.(string)); return n }),
//	)
//
// # Batches
//
// AskAll asks a list of questions in order. Later questions can depend on
// earlier answers, and a confirmation round can send the user back to the
// first question:
//
//	answers, err := p.AskAll(ctx, []prompt.Question{
//	    {Text: "Database", Key: "db", Options: []prompt.Option{prompt.Default("postgres")}},
//	    {Text: "Database host", Key: "host", Options: []prompt.Option{
//	        prompt.Depends(prompt.DependsOn(func(a *prompt.Answers) bool {
//	            return a.String("db") != "none"
//	        })),
//	    }},
//	}, prompt.WithConfirm(prompt.ConfirmConfig{}))
//
// # Configuration
//
// Every question resolves its Config from layers of options: the library
// Defaults, the options given to New, the options of the AskAll call, and
// the question's own options. Each option sets a single field, so a later
// layer overrides an earlier one field by field.
//
// # Errors
//
//   - ErrInvalidQuestion: malformed call, returned before any input is read
//   - *AttemptsError (matches ErrAttemptsExhausted): attempt limit reached
//   - *InputError: the reader failed on the third attempt or later
//   - ErrCanceled: the user aborted; the whole session must stop
//   - *BatchError: AskAll questions that failed, keyed like Answers
//
// Cancellation is never handled inside the package. Hosts decide what to do
// with it; the wren CLI exits with status 130.
package prompt
