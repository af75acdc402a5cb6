package validate

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// Func checks one answer.
type Func func(string) error

var (
	usernamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)
	labelPattern    = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	tldPattern      = regexp.MustCompile(`^[a-zA-Z]{2,63}$`)
)

// NonEmpty ensures the input is not blank.
func NonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// Username ensures the input is a valid UNIX-style username.
func Username(input string) error {
	if !usernamePattern.MatchString(input) {
		return errors.New("invalid username (use lowercase letters, digits, underscore, dash)")
	}
	return nil
}

// Email checks the address format with net/mail.
func Email(input string) error {
	if _, err := mail.ParseAddress(input); err != nil {
		return errors.New("invalid email format")
	}
	return nil
}

// URL ensures an absolute URL.
func URL(input string) error {
	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("invalid URL (must be absolute)")
	}
	return nil
}

// IP ensures the input is an IPv4 or IPv6 address.
func IP(input string) error {
	if net.ParseIP(input) == nil {
		return errors.New("invalid IP address")
	}
	return nil
}

// NoShellMeta blocks shell metacharacters.
func NoShellMeta(input string) error {
	if strings.ContainsAny(input, "`$&|;<>(){}") {
		return errors.New("input contains unsafe shell characters")
	}
	return nil
}

// Hostname checks RFC 1123 host names: dot separated labels of letters,
// digits and inner dashes.
func Hostname(input string) error {
	name := strings.TrimSuffix(input, ".")
	if name == "" || len(name) > 253 {
		return errors.New("invalid hostname length")
	}
	for _, label := range strings.Split(name, ".") {
		if !labelPattern.MatchString(label) {
			return errors.Newf("invalid hostname label %q", label)
		}
	}
	return nil
}

// Domain is a Hostname with at least two labels and an alphabetic top level.
func Domain(input string) error {
	if err := Hostname(input); err != nil {
		return errors.Wrap(err, "invalid domain")
	}
	labels := strings.Split(strings.TrimSuffix(input, "."), ".")
	if len(labels) < 2 || !tldPattern.MatchString(labels[len(labels)-1]) {
		return errors.New("invalid domain (need a name and a top-level domain)")
	}
	return nil
}

// ModulePath checks a Go module path.
func ModulePath(input string) error {
	if err := module.CheckPath(input); err != nil {
		return errors.Wrap(err, "invalid module path")
	}
	return nil
}

// Semver checks a semantic version. The leading "v" is optional.
func Semver(input string) error {
	v := input
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.Newf("invalid semantic version %q", input)
	}
	return nil
}

// Integer ensures the input is a base 10 integer.
func Integer(input string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
		return errors.New("not a whole number")
	}
	return nil
}

// OneOf accepts exactly one of values.
func OneOf(values ...string) Func {
	return func(input string) error {
		for _, v := range values {
			if input == v {
				return nil
			}
		}
		return errors.Newf("must be one of: %s", strings.Join(values, ", "))
	}
}

var registry = map[string]Func{
	"nonempty":   NonEmpty,
	"username":   Username,
	"email":      Email,
	"url":        URL,
	"ip":         IP,
	"noshell":    NoShellMeta,
	"hostname":   Hostname,
	"domain":     Domain,
	"modulepath": ModulePath,
	"semver":     Semver,
	"integer":    Integer,
}

// Lookup returns the validator registered under name. Names are case
// insensitive.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// Names lists the registered validator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
