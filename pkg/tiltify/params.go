package tiltify

import (
	"fmt"
	"strconv"
)

// Params is an insertion-ordered set of request parameters. Keys consumed by
// route placeholders go into the path; the rest form the query string in the
// order they were first set.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates params from alternating key/value pairs.
func NewParams(pairs ...interface{}) *Params {
	params := &Params{values: make(map[string]string)}

	for i := 0; i+1 < len(pairs); i += 2 {
		params.Set(fmt.Sprint(pairs[i]), pairs[i+1])
	}

	return params
}

// Set stores a value coerced to a string. Overwriting keeps the original position.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}

	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = stringify(value)

	return p
}

// Get returns the value for key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	value, ok := p.values[key]

	return value, ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	clone := &Params{values: make(map[string]string, p.Len())}

	if p == nil {
		return clone
	}

	clone.keys = append(clone.keys, p.keys...)
	for key, value := range p.values {
		clone.values[key] = value
	}

	return clone
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
