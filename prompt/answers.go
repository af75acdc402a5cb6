package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Answers maps question keys to accepted values in the order the questions
// were asked. A skipped question maps to nil.
type Answers struct {
	keys   []string
	values map[string]any
}

// NewAnswers creates an empty Answers.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]any)}
}

// Set stores v under key, keeping the position of an existing key.
func (a *Answers) Set(key string, v any) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = v
}

// Get returns the value for key.
func (a *Answers) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key was answered or skipped.
func (a *Answers) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// String returns the value for key as text; nil and missing keys give "".
func (a *Answers) String(key string) string {
	v, _ := a.Get(key)
	return display(v)
}

// Bool returns the value for key if it is a bool, false otherwise.
func (a *Answers) Bool(key string) bool {
	v, _ := a.Get(key)
	b, _ := v.(bool)
	return b
}

// Keys returns the keys in question order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Len returns the number of keys.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Map returns a copy of the answers as a plain map.
func (a *Answers) Map() map[string]any {
	m := make(map[string]any, a.Len())
	for _, k := range a.Keys() {
		m[k] = a.values[k]
	}
	return m
}

// MarshalYAML encodes the answers as a mapping in question order.
func (a *Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range a.Keys() {
		val := &yaml.Node{}
		if err := val.Encode(a.values[k]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode answer %q", k)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}
	return node, nil
}

// MarshalJSON encodes the answers as an object in question order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode answer %q", k)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BatchError collects the errors of the questions of one AskAll call that
// failed terminally, keyed like Answers.
type BatchError struct {
	keys []string
	errs map[string]error
}

func (e *BatchError) add(key string, err error) {
	if e.errs == nil {
		e.errs = make(map[string]error)
	}
	if _, ok := e.errs[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.errs[key] = err
}

// Get returns the error recorded for key.
func (e *BatchError) Get(key string) error {
	if e == nil {
		return nil
	}
	return e.errs[key]
}

// Keys returns the failed keys in question order.
func (e *BatchError) Keys() []string {
	if e == nil {
		return nil
	}
	return append([]string(nil), e.keys...)
}

// Len returns the number of failed questions.
func (e *BatchError) Len() int {
	if e == nil {
		return 0
	}
	return len(e.keys)
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, e.errs[k]))
	}
	noun := "questions"
	if len(e.keys) == 1 {
		noun = "question"
	}
	return fmt.Sprintf("%d %s failed: %s", len(e.keys), noun, strings.Join(parts, "; "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	out := make([]error, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, e.errs[k])
	}
	return out
}

// orNil returns e as an error, or nil when nothing failed
func (e *BatchError) orNil() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}
