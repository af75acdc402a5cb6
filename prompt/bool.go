package prompt

import (
	"regexp"
	"strings"
)

var boolPattern = regexp.MustCompile(`(?i)^(?:y(?:es)?|n(?:o)?)$`)

// IsBool reports whether s is a yes/no answer: y, yes, n or no in any case.
func IsBool(s string) bool {
	return boolPattern.MatchString(s)
}

// ParseBool returns true for y and yes (any case) and false for anything else.
func ParseBool(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
