package prompt

import (
	"fmt"
	"regexp"
)

// Transform maps a value to a new value. A nil Transform leaves it unchanged.
type Transform func(any) any

type validatorKind int

const (
	validateNone validatorKind = iota
	validateFunc
	validatePattern
)

// Validator checks an answer. The zero value accepts everything.
type Validator struct {
	kind    validatorKind
	fn      func(any) bool
	pattern *regexp.Regexp
}

// NoValidation accepts every answer.
func NoValidation() Validator {
	return Validator{}
}

// ValidateFunc accepts answers for which fn returns true.
func ValidateFunc(fn func(any) bool) Validator {
	if fn == nil {
		return Validator{}
	}
	return Validator{kind: validateFunc, fn: fn}
}

// ValidateError adapts a string validator that reports problems as errors.
func ValidateError(fn func(string) error) Validator {
	if fn == nil {
		return Validator{}
	}
	return ValidateFunc(func(v any) bool {
		return fn(display(v)) == nil
	})
}

// ValidatePattern accepts answers whose text matches re.
func ValidatePattern(re *regexp.Regexp) Validator {
	if re == nil {
		return Validator{}
	}
	return Validator{kind: validatePattern, pattern: re}
}

// MatchPattern compiles expr and accepts answers matching it.
// It panics if expr is not a valid regular expression.
func MatchPattern(expr string) Validator {
	return ValidatePattern(regexp.MustCompile(expr))
}

// Check reports whether v is acceptable.
func (v Validator) Check(value any) bool {
	switch v.kind {
	case validateNone:
		return true
	case validateFunc:
		return v.fn(value)
	case validatePattern:
		return v.pattern.MatchString(display(value))
	default:
		panic(fmt.Sprintf("prompt: unknown validator kind %d", v.kind))
	}
}

type conditionKind int

const (
	conditionAlways conditionKind = iota
	conditionBool
	conditionFunc
)

// Condition decides whether a question is asked. The zero value always holds.
type Condition struct {
	kind  conditionKind
	value bool
	fn    func(*Answers) bool
}

// Always asks the question.
func Always() Condition {
	return Condition{}
}

// When asks the question only if ask is true.
func When(ask bool) Condition {
	return Condition{kind: conditionBool, value: ask}
}

// DependsOn asks the question only if fn returns true for the answers so far.
func DependsOn(fn func(*Answers) bool) Condition {
	if fn == nil {
		return Condition{}
	}
	return Condition{kind: conditionFunc, fn: fn}
}

// Holds evaluates the condition against the answers collected so far.
// prior may be nil.
func (c Condition) Holds(prior *Answers) bool {
	switch c.kind {
	case conditionAlways:
		return true
	case conditionBool:
		return c.value
	case conditionFunc:
		if prior == nil {
			prior = NewAnswers()
		}
		return c.fn(prior)
	default:
		panic(fmt.Sprintf("prompt: unknown condition kind %d", c.kind))
	}
}

// display renders a value the way it appears in messages
func display(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
