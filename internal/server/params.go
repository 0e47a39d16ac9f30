package server

import (
	"fmt"
	"strings"
)

// StringParam reads a string argument, formatting non-string values.
func StringParam(params map[string]interface{}, key, def string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ListParam reads a list argument given either as a JSON array or as a
// comma-separated string. Blank items are dropped.
func ListParam(params map[string]interface{}, key string) []string {
	var raw []string
	switch v := params[key].(type) {
	case string:
		raw = strings.Split(v, ",")
	case []interface{}:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	case []string:
		raw = v
	}
	var out []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
