// Package route turns route templates and parameters into request targets.
package route

import (
	"regexp"
	"strings"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// Built is a resolved request target.
type Built struct {
	Template string
	Path     string
	RawQuery string
}

// String returns the path with its query string.
func (b *Built) String() string {
	if b.RawQuery == "" {
		return b.Path
	}

	return b.Path + "?" + b.RawQuery
}

// Router resolves templates below a fixed path prefix.
type Router struct {
	prefix string
}

// NewRouter creates a router for templates relative to prefix.
func NewRouter(prefix string) *Router {
	return &Router{prefix: strings.TrimSuffix(prefix, "/")}
}

// Build substitutes every placeholder of template with its percent-encoded
// parameter and puts the remaining parameters, in insertion order, into the
// query. A placeholder without a parameter fails with MissingParameterError.
func (r *Router) Build(template string, params *tiltify.Params) (*Built, error) {
	consumed := make(map[string]bool)

	var missing string

	path := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]

		value, ok := params.Get(name)
		if !ok {
			if missing == "" {
				missing = name
			}

			return match
		}

		consumed[name] = true

		return EscapeComponent(value)
	})

	if missing != "" {
		return nil, &tiltify.MissingParameterError{Parameter: missing, Route: template}
	}

	pairs := make([]string, 0, params.Len())

	for _, key := range params.Keys() {
		if consumed[key] {
			continue
		}

		value, _ := params.Get(key)
		pairs = append(pairs, EscapeComponent(key)+"="+EscapeComponent(value))
	}

	return &Built{
		Template: template,
		Path:     r.prefix + "/" + path,
		RawQuery: strings.Join(pairs, "&"),
	}, nil
}

// EscapeComponent percent-encodes s as a single URI component. Only
// unreserved characters and !'()* are left as is.
func EscapeComponent(s string) string {
	var escaped strings.Builder

	for i := range len(s) {
		c := s[i]
		if shouldKeep(c) {
			escaped.WriteByte(c)

			continue
		}

		escaped.WriteByte('%')
		escaped.WriteByte(upperhex[c>>4])
		escaped.WriteByte(upperhex[c&0x0f])
	}

	return escaped.String()
}

const upperhex = "0123456789ABCDEF"

func shouldKeep(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
