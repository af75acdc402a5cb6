package form

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/simonhull/firebird-suite/wren/validate"
	"gopkg.in/yaml.v3"
)

// Form is a questionnaire file
type Form struct {
	Confirm   *Confirm   `yaml:"confirm,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Confirm configures the confirmation round
type Confirm struct {
	Message string `yaml:"message,omitempty"`
	Default string `yaml:"default,omitempty"`
	Before  string `yaml:"before,omitempty"`
	After   string `yaml:"after,omitempty"`
}

// Question is one questionnaire entry
type Question struct {
	Question  string   `yaml:"question"`
	Key       string   `yaml:"key,omitempty"`
	Default   string   `yaml:"default,omitempty"`
	Required  bool     `yaml:"required,omitempty"`
	Boolean   bool     `yaml:"boolean,omitempty"`
	Validate  string   `yaml:"validate,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Attempts  int      `yaml:"attempts,omitempty"`
	Timeout   string   `yaml:"timeout,omitempty"`
	Silent    bool     `yaml:"silent,omitempty"`
	Depends   *Depends `yaml:"depends,omitempty"`
	Transform []string `yaml:"transform,omitempty"`
}

// Depends asks a question only when an earlier answer matches
type Depends struct {
	Key       string  `yaml:"key"`
	Equals    *string `yaml:"equals,omitempty"`
	NotEquals *string `yaml:"not_equals,omitempty"`
	Truthy    bool    `yaml:"truthy,omitempty"`
}

// key returns the Answers key of q
func (q Question) key() string {
	if q.Key != "" {
		return q.Key
	}
	return q.Question
}

// Load reads and validates a questionnaire file
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read form file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Parse decodes and validates a questionnaire
func Parse(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	if _, err := f.Compile(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Options returns the call-level prompt options of the form
func (f *Form) Options() []prompt.Option {
	if cc := f.ConfirmConfig(); cc != nil {
		return []prompt.Option{prompt.WithConfirm(*cc)}
	}
	return nil
}

// ConfirmConfig returns the confirmation round, or nil when the form has none
func (f *Form) ConfirmConfig() *prompt.ConfirmConfig {
	if f.Confirm == nil {
		return nil
	}
	return &prompt.ConfirmConfig{
		Message: f.Confirm.Message,
		Default: f.Confirm.Default,
		Before:  f.Confirm.Before,
		After:   f.Confirm.After,
	}
}

// Compile converts the form into prompt questions. Every problem found is
// reported in one ValidationErrors.
func (f *Form) Compile() ([]prompt.Question, error) {
	var errs ValidationErrors
	if len(f.Questions) == 0 {
		errs.add("questions", "at least one question is required", "")
	}
	if f.Confirm != nil && f.Confirm.Default != "" && !prompt.IsBool(f.Confirm.Default) {
		errs.add("confirm.default", fmt.Sprintf("%q is not a yes/no answer", f.Confirm.Default), "use y, yes, n or no")
	}

	seen := make(map[string]bool)
	out := make([]prompt.Question, 0, len(f.Questions))
	for i, q := range f.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		opts := compile(field, q, seen, &errs)
		if strings.TrimSpace(q.Question) == "" {
			errs.add(field+".question", "question text is required", "")
		}
		if seen[q.key()] {
			errs.add(field+".key", fmt.Sprintf("duplicate key %q", q.key()), "give each question a unique key")
		}
		seen[q.key()] = true

		out = append(out, prompt.Question{Text: q.Question, Key: q.Key, Options: opts})
	}

	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// compile builds the options of one question. seen holds the keys of the
// questions before it.
func compile(field string, q Question, seen map[string]bool, errs *ValidationErrors) []prompt.Option {
	var opts []prompt.Option

	if q.Default != "" {
		opts = append(opts, prompt.Default(q.Default))
	}
	if q.Required {
		opts = append(opts, prompt.Required())
	}
	if q.Boolean {
		opts = append(opts, prompt.Boolean())
		if q.Default != "" && !prompt.IsBool(q.Default) {
			errs.add(field+".default", fmt.Sprintf("%q is not a yes/no answer", q.Default), "use y, yes, n or no")
		}
	}
	if q.Silent {
		opts = append(opts, prompt.Silent())
	}
	if q.Attempts < 0 {
		errs.add(field+".attempts", "attempts cannot be negative", "use 0 for unlimited attempts")
	} else if q.Attempts > 0 {
		opts = append(opts, prompt.Attempts(q.Attempts))
	}
	if q.Timeout != "" {
		d, err := time.ParseDuration(q.Timeout)
		if err != nil || d < 0 {
			errs.add(field+".timeout", fmt.Sprintf("invalid duration %q", q.Timeout), "use a Go duration such as 30s or 2m")
		} else {
			opts = append(opts, prompt.WithTimeout(d))
		}
	}

	if v, ok := validator(field, q, errs); ok {
		opts = append(opts, prompt.Validate(v))
	}

	before, after := transforms(field, q.Transform, errs)
	if before != nil {
		opts = append(opts, prompt.Before(before))
	}
	if after != nil {
		opts = append(opts, prompt.After(after))
	}

	if q.Depends != nil {
		if cond, ok := condition(field+".depends", *q.Depends, seen, errs); ok {
			opts = append(opts, prompt.Depends(cond))
		}
	}

	return opts
}

// validator combines the named validator and the pattern of q
func validator(field string, q Question, errs *ValidationErrors) (prompt.Validator, bool) {
	var checks []validate.Func

	if q.Validate != "" {
		fn, ok := validate.Lookup(q.Validate)
		if !ok {
			errs.add(field+".validate", fmt.Sprintf("unknown validator %q", q.Validate),
				"known validators: "+strings.Join(validate.Names(), ", "))
		} else {
			checks = append(checks, fn)
		}
	}
	if q.Pattern != "" {
		re, err := regexp.Compile(q.Pattern)
		if err != nil {
			errs.add(field+".pattern", err.Error(), "")
		} else {
			checks = append(checks, func(s string) error {
				if !re.MatchString(s) {
					return errors.Newf("does not match %s", q.Pattern)
				}
				return nil
			})
		}
	}

	if len(checks) == 0 {
		return prompt.NoValidation(), false
	}
	return prompt.ValidateError(func(s string) error {
		for _, check := range checks {
			if err := check(s); err != nil {
				return err
			}
		}
		return nil
	}), true
}

// transforms splits the transform list into the Before chain (text
// normalization) and the After chain (type conversion)
func transforms(field string, names []string, errs *ValidationErrors) (before, after prompt.Transform) {
	var pre, post []prompt.Transform
	for i, name := range names {
		switch strings.ToLower(name) {
		case "trim":
			pre = append(pre, onString(strings.TrimSpace))
		case "lower":
			pre = append(pre, onString(strings.ToLower))
		case "upper":
			pre = append(pre, onString(strings.ToUpper))
		case "int":
			post = append(post, toInt)
		default:
			errs.add(fmt.Sprintf("%s.transform[%d]", field, i), fmt.Sprintf("unknown transform %q", name),
				"use trim, lower, upper or int")
		}
	}
	return chain(pre), chain(post)
}

func chain(fns []prompt.Transform) prompt.Transform {
	if len(fns) == 0 {
		return nil
	}
	return func(v any) any {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

func onString(fn func(string) string) prompt.Transform {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return fn(s)
		}
		return v
	}
}

// toInt converts text to an int and leaves anything else untouched
func toInt(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return v
	}
	return n
}

// condition builds the Depends condition of a question
func condition(field string, d Depends, seen map[string]bool, errs *ValidationErrors) (prompt.Condition, bool) {
	if d.Key == "" {
		errs.add(field+".key", "key is required", "")
		return prompt.Condition{}, false
	}
	if !seen[d.Key] {
		errs.add(field+".key", fmt.Sprintf("%q is not the key of an earlier question", d.Key),
			"questions can only depend on answers given before them")
		return prompt.Condition{}, false
	}

	set := 0
	for _, ok := range []bool{d.Equals != nil, d.NotEquals != nil, d.Truthy} {
		if ok {
			set++
		}
	}
	if set != 1 {
		errs.add(field, "exactly one of equals, not_equals or truthy is required", "")
		return prompt.Condition{}, false
	}

	key := d.Key
	switch {
	case d.Equals != nil:
		want := *d.Equals
		return prompt.DependsOn(func(a *prompt.Answers) bool { return matches(a, key, want) }), true
	case d.NotEquals != nil:
		want := *d.NotEquals
		return prompt.DependsOn(func(a *prompt.Answers) bool { return !matches(a, key, want) }), true
	default:
		return prompt.DependsOn(func(a *prompt.Answers) bool { return truthy(a, key) }), true
	}
}

// matches reports whether the answer for key equals want. A boolean answer
// also matches the yes/no tokens y, yes, n and no.
func matches(a *prompt.Answers, key, want string) bool {
	v, _ := a.Get(key)
	if b, ok := v.(bool); ok && prompt.IsBool(want) {
		return b == prompt.ParseBool(want)
	}
	return a.String(key) == want
}

// truthy reports whether the answer for key is present and not false, blank or zero
func truthy(a *prompt.Answers, key string) bool {
	v, _ := a.Get(key)
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
