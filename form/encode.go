package form

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"gopkg.in/yaml.v3"
)

// Format is an answers output format
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts yaml, yml or json in any case
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", errors.WithHint(errors.Newf("unknown format %q", s), "use yaml or json")
	}
}

// Encode writes answers to w in question order
func Encode(w io.Writer, answers *prompt.Answers, format Format) error {
	if answers == nil {
		answers = prompt.NewAnswers()
	}

	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(answers); err != nil {
			return errors.Wrap(err, "failed to encode answers as YAML")
		}
		return errors.Wrap(enc.Close(), "failed to encode answers as YAML")
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(answers), "failed to encode answers as JSON")
	default:
		return errors.Newf("unknown format %q", format)
	}
}
