package convert

import (
	"encoding/json"

	"github.com/marcuscabrera/terracognita-fork/config"
)

// A FieldPair declares that the value of Source in the input body is copied
// to Target in the output body, if present. Absent fields are never copied
// and never defaulted: optional-field mapping is an explicit list of pairs,
// not reflection.
type FieldPair struct {
	Source string
	Target string
}

// CopyFields copies every field pair present in src into dst.
func CopyFields(dst, src config.Body, pairs []FieldPair) {
	for _, p := range pairs {
		if v, ok := src[p.Source]; ok {
			dst[p.Target] = v
		}
	}
}

// RequireFields checks that every named field is present in body. If any are
// absent the returned *ValidationError names all of them.
func RequireFields(name string, body config.Body, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if _, ok := body[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Resource: name, Missing: missing}
	}
	return nil
}

// First returns the value of the first listed field that is present in body
// with a truthy value.
func First(body config.Body, fields ...string) (interface{}, bool) {
	for _, f := range fields {
		if v, ok := body[f]; ok && Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

// FirstString is First restricted to non-empty string values.
func FirstString(body config.Body, fields ...string) (string, bool) {
	v, ok := First(body, fields...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// BlockBody unwraps a nested block value to its body map. HCL input wraps
// nested blocks in single-element lists while JSON input nests maps directly;
// converters see the same Body either way. Returns nil if v is neither.
func BlockBody(v interface{}) config.Body {
	for {
		switch t := v.(type) {
		case []interface{}:
			if len(t) == 0 {
				return nil
			}
			v = t[0]
		case map[string]interface{}:
			return t
		default:
			return nil
		}
	}
}

// Truthy reports whether a body value counts as set: non-empty strings,
// slices and maps, true booleans and non-zero numbers. Interpolation strings
// are always truthy.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
