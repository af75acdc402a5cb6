package form

import "fmt"

// ValidationError is a problem in a questionnaire file
type ValidationError struct {
	Field      string // Field path (e.g., "questions[0].validate")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

func (e *ValidationErrors) add(field, message, suggestion string) {
	*e = append(*e, ValidationError{Field: field, Message: message, Suggestion: suggestion})
}

func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
