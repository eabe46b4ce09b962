// Package jsonclean strips stray whitespace from upstream JSON payloads. The
// dashboard API pads many of its string values with newlines and indentation.
package jsonclean

import "strings"

// Clean walks a decoded JSON value and trims leading and trailing whitespace
// from every string leaf. Object keys, list order, and non-string scalars are
// preserved.
func Clean(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Clean(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Clean(item)
		}
		return out
	case string:
		return strings.TrimSpace(val)
	default:
		return v
	}
}
