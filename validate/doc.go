// Package validate provides answer validators for prompt questions.
//
// Every validator has the signature func(string) error and can be passed to
// prompt.ValidateError. Lookup resolves a validator by the name used in
// questionnaire files and on the command line.
//
// # Usage
//
//	email, err := p.Ask(ctx, "Email", prompt.Validate(prompt.ValidateError(validate.Email)))
//
//	fn, ok := validate.Lookup("semver")
package validate
