package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Renderer parses, caches and executes templates
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with the built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: FuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders templateStr. name is the cache key and appears in errors.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	tmpl, err := r.load("string:"+name, func() (*template.Template, error) {
		return r.parse(name, templateStr)
	})
	if err != nil {
		return nil, err
	}
	return execute(tmpl, data)
}

// RenderFile renders the template stored at path
func (r *Renderer) RenderFile(path string, data any) ([]byte, error) {
	tmpl, err := r.load("file:"+path, func() (*template.Template, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template file '%s'", path)
		}
		return r.parse(path, string(b))
	})
	if err != nil {
		return nil, err
	}
	return execute(tmpl, data)
}

// ClearCache drops every cached template
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

// load returns the cached template for key or builds and caches it
func (r *Renderer) load(key string, build func() (*template.Template, error)) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := build()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

func (r *Renderer) parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(r.funcMap).Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template '%s'", name)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render template '%s'", tmpl.Name())
	}
	return buf.Bytes(), nil
}

// FuncMap returns the helper functions available to templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"pascalCase": PascalCase,
		"camelCase":  CamelCase,
		"snakeCase":  SnakeCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"title":      Title,
		"quote":      Quote,
		"join":       join,
		"default":    Default,
	}
}

// acronyms are kept upper case by PascalCase and CamelCase
var acronyms = map[string]string{
	"id": "ID", "url": "URL", "uri": "URI", "http": "HTTP", "https": "HTTPS",
	"api": "API", "uuid": "UUID", "sql": "SQL", "html": "HTML", "json": "JSON",
	"xml": "XML", "ip": "IP", "tcp": "TCP", "tls": "TLS", "db": "DB", "os": "OS",
}

// words splits an identifier at underscores, dashes, spaces and case
// changes. "HTTPServer" splits into "HTTP" and "Server".
func words(s string) []string {
	var out []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

func capitalize(w string) string {
	if a, ok := acronyms[strings.ToLower(w)]; ok {
		return a
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// PascalCase converts an identifier to PascalCase: user_id → UserID
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// CamelCase converts an identifier to camelCase: user_name → userName
func CamelCase(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(ws[0]))
	for _, w := range ws[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// SnakeCase converts an identifier to snake_case: HTTPServer → http_server
func SnakeCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// Title capitalizes the first letter of each word and lowers the rest
func Title(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// join accepts the pipeline value last: {{ .tags | join ", " }}
func join(sep string, items any) string {
	switch v := items.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(v, sep)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep)
	default:
		return fmt.Sprint(v)
	}
}

// Default returns def when val is nil, an empty string or an empty collection.
// Numeric zero and false are real answers and are kept.
func Default(def, val any) any {
	switch v := val.(type) {
	case nil:
		return def
	case string:
		if v == "" {
			return def
		}
	case []any:
		if len(v) == 0 {
			return def
		}
	case map[string]any:
		if len(v) == 0 {
			return def
		}
	}
	return val
}
